/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package manager

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/proyectorodrigo/polizabot/internal/config"
)

func createConfigFile(t *testing.T, data any) string {
	json, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	tmpDir := t.TempDir()
	cfgFile := tmpDir + "/polizabot.json"
	err = os.WriteFile(cfgFile, json, 0644)
	if err != nil {
		t.Fatal(err)
	}

	return cfgFile
}

func validData() config.Data {
	return config.Data{
		CreatedAt:       "2025-01-01T00:00:00Z",
		Database:        "sqlite://:memory:",
		Hostname:        "polizabot.example.com",
		Id:              "8d134b24c2541730",
		Secret:          "C7LVMO6YY0ZfZvlEayQJR0zOE7JF8g+nrYgrcvetIbU=",
		Version:         "1.0.0",
		AnthropicAPIKey: "sk-ant-test",
		YCloudAPIKey:    "yc-test",
	}
}

func Test_NewReturnsManager(t *testing.T) {
	cfgFile := createConfigFile(t, validData())
	m, err := New(cfgFile)
	assert.NoError(t, err)
	assert.NotNil(t, m)
}

func Test_NewReturnsError_MissingConfigFile(t *testing.T) {
	_, err := New("nonexistent_file.json")
	assert.Error(t, err)
}

func Test_NewReturnsError_InvalidConfigFile(t *testing.T) {
	cfgFile := createConfigFile(t, "invalid json")
	m, err := New(cfgFile)
	assert.Nil(t, m)
	assert.Error(t, err)
}

func Test_NewReturnsError_InvalidDatabaseURL(t *testing.T) {
	data := validData()
	data.Database = "invalid_db_url"

	cfgFile := createConfigFile(t, data)
	m, err := New(cfgFile)
	assert.Nil(t, m)
	assert.Error(t, err)
}

func Test_RunSucceeds(t *testing.T) {
	cfgFile := createConfigFile(t, validData())
	m, err := New(cfgFile)
	assert.NoError(t, err)
	assert.NotNil(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err, "allocate HTTP port")
	addr := listener.Addr().String()
	_ = listener.Close()

	go m.Run(ctx, addr)

	var conn net.Conn
	for range 50 {
		conn, err = net.Dial("tcp", addr)
		if conn != nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	assert.NoError(t, err)
	assert.NotNil(t, conn)
	_ = conn.Close()

	cancel()
	time.Sleep(100 * time.Millisecond)
}
