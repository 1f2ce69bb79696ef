/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/proyectorodrigo/polizabot/internal/config"
)

func newTestClient() *Client {
	cfg := config.NewFromData(&config.Data{
		YCloudAPIKey:  "yc-test",
		YCloudBaseURL: "https://api.ycloud.com/v2",
	}, "")

	return NewClient(cfg)
}

func Test_SendMessagePostsPayload(t *testing.T) {
	client := newTestClient()

	httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.ycloud.com/v2/whatsapp/messages",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "yc-test", req.Header.Get("X-API-Key"))

			var payload OutboundMessage
			if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, "+5215500000000", payload.From)
			assert.Equal(t, "+5215512345678", payload.To)
			assert.Equal(t, "text", payload.Type)
			assert.Equal(t, "Hola", payload.Text.Body)

			return httpmock.NewJsonResponse(200, SendResponse{ID: "msg-1", Status: "accepted"})
		},
	)

	response, err := client.SendMessage(context.Background(), "+5215512345678", "Hola", "+5215500000000")

	assert.NoError(t, err)
	assert.Equal(t, "msg-1", response.ID)
}

func Test_SendMessageReturnsError_UnexpectedStatus(t *testing.T) {
	client := newTestClient()

	httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.ycloud.com/v2/whatsapp/messages",
		httpmock.NewStringResponder(401, `{"error":"unauthorized"}`))

	_, err := client.SendMessage(context.Background(), "+5215512345678", "Hola", "+5215500000000")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ycloud: unexpected status 401")
}

func Test_SendSplitMessagesSendsEachPart(t *testing.T) {
	client := newTestClient()

	httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
	defer httpmock.DeactivateAndReset()

	bodies := []string{}
	httpmock.RegisterResponder("POST", "https://api.ycloud.com/v2/whatsapp/messages",
		func(req *http.Request) (*http.Response, error) {
			var payload OutboundMessage
			if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
				t.Fatal(err)
			}
			bodies = append(bodies, payload.Text.Body)

			return httpmock.NewJsonResponse(200, SendResponse{ID: "msg", Status: "accepted"})
		},
	)

	parts, err := client.SendSplitMessages(context.Background(),
		"+5215512345678", "Primera parte\n---\nSegunda parte", "+5215500000000")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Primera parte", "Segunda parte"}, parts)
	assert.Equal(t, []string{"Primera parte", "Segunda parte"}, bodies)
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func Test_SendWithDelayHonorsCancellation(t *testing.T) {
	client := newTestClient()

	httpmock.ActivateNonDefault(client.HTTPClient().GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "https://api.ycloud.com/v2/whatsapp/messages",
		httpmock.NewJsonResponderOrPanic(200, SendResponse{ID: "msg", Status: "accepted"}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	responses, err := client.SendWithDelay(ctx, "+5215512345678", []string{"uno", "dos"}, "+5215500000000")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, responses, 1, "first part is sent before the pause notices cancellation")
}

func Test_Split(t *testing.T) {
	var tests = []struct {
		name     string
		reply    string
		expected []string
	}{
		{"no delimiter", "Hola", []string{"Hola"}},
		{"two parts", "uno --- dos", []string{"uno", "dos"}},
		{"empty parts dropped", "---\nuno\n---\n---\ndos\n---", []string{"uno", "dos"}},
		{"only delimiters", "------", []string{"------"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.reply))
		})
	}
}
