/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func Test_NewFromFileReturnsError_NotExistingFile(t *testing.T) {
	_, err := NewFromFile("/path/not/found/polizabot.json")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	wanted := "no such file or directory"
	if !strings.HasSuffix(err.Error(), wanted) {
		t.Fatalf("wanted '%s' error, got '%s'", wanted, err.Error())
	}
}

func Test_NewFromFileReturnsError_RelativeFilePath(t *testing.T) {
	_, err := NewFromFile("relative/path/polizabot.json")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	wanted := "configuration file path must be absolute:"
	if !strings.HasPrefix(err.Error(), wanted) {
		t.Fatalf("wanted '%s' error, got '%s'", wanted, err.Error())
	}
}

func Test_NewFromStringReturnsError_InvalidJSON(t *testing.T) {
	_, err := NewFromString(`- invalid json`, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	wanted := "failed to unmarshal configuration file"
	if !strings.HasPrefix(err.Error(), wanted) {
		t.Fatalf("wanted '%s' error, got '%s'", wanted, err.Error())
	}
}

func Test_NewFromStringReturnsError_MissingField(t *testing.T) {
	_, err := NewFromString(`{"version": "1.0", "hostname": "localhost"}`, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	wanted := "invalid configuration data, missing field: AnthropicAPIKey"
	if !strings.Contains(err.Error(), wanted) {
		t.Fatalf("wanted '%s' error, got '%s'", wanted, err.Error())
	}
}

func Test_NewFromFileReturnsConfig(t *testing.T) {
	f, _ := os.CreateTemp("", "valid_config.json")
	defer func() {
		_ = os.Remove(f.Name())
	}()
	_, _ = fmt.Fprintf(f, `{
		"created_at": "2025-10-01T00:00:00Z",
		"database": "sqlite://:memory:",
		"hostname": "localhost",
		"id": "12345",
		"secret": "secret",
		"version": "1.0",
		"anthropic_api_key": "sk-ant-test",
		"ycloud_api_key": "yc-test"
	}`)

	config, err := NewFromFile(f.Name())
	if err != nil {
		t.Fatalf("expected no error, got '%s'", err)
	}

	if config.Version() != "1.0" {
		t.Errorf("expected version '1.0', got '%s'", config.Version())
	}
	if config.Hostname() != "localhost" {
		t.Errorf("expected hostname 'localhost', got '%s'", config.Hostname())
	}
	if config.Database() != "sqlite://:memory:" {
		t.Errorf("expected database 'sqlite://:memory:', got '%s'", config.Database())
	}
	if config.Id() != "12345" {
		t.Errorf("expected id '12345', got '%s'", config.Id())
	}
	if config.Secret() != "secret" {
		t.Errorf("expected secret 'secret', got '%s'", config.Secret())
	}
	if config.AnthropicAPIKey() != "sk-ant-test" {
		t.Errorf("expected anthropic api key 'sk-ant-test', got '%s'", config.AnthropicAPIKey())
	}
	if config.YCloudAPIKey() != "yc-test" {
		t.Errorf("expected ycloud api key 'yc-test', got '%s'", config.YCloudAPIKey())
	}
}

func Test_NewFromStringAppliesDefaults(t *testing.T) {
	config, err := NewFromString(`{
		"created_at": "2025-10-01T00:00:00Z",
		"database": "sqlite://:memory:",
		"hostname": "localhost",
		"id": "12345",
		"secret": "secret",
		"version": "1.0",
		"anthropic_api_key": "sk-ant-test",
		"ycloud_api_key": "yc-test"
	}`, "")
	if err != nil {
		t.Fatalf("expected no error, got '%s'", err)
	}

	if config.ClaudeModel() != DefaultClaudeModel {
		t.Errorf("expected default model '%s', got '%s'", DefaultClaudeModel, config.ClaudeModel())
	}
	if config.YCloudBaseURL() != DefaultYCloudBaseURL {
		t.Errorf("expected default base url '%s', got '%s'", DefaultYCloudBaseURL, config.YCloudBaseURL())
	}
	if config.Port() != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, config.Port())
	}
}

func Test_PortEnvironmentVariableWins(t *testing.T) {
	t.Setenv("PORT", "8080")

	config := NewFromData(&Data{
		Database: "sqlite://:memory:",
		Port:     9090,
	}, "")

	if config.Port() != 8080 {
		t.Errorf("expected port 8080, got %d", config.Port())
	}
}

func Test_PortInvalidEnvironmentVariableIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	config := NewFromData(&Data{
		Database: "sqlite://:memory:",
	}, "")

	if config.Port() != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, config.Port())
	}
}
