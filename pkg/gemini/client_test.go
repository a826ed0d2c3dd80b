package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"axle-assist/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Structured Output Config Marshals", func(t *testing.T) {
		// The schema fields must round-trip through the request body.
		captured := gemini.GenerateRequest{}
		schemaTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&captured)
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`))
		}))
		defer schemaTS.Close()

		c2 := gemini.NewClient("test-api-key")
		c2.SetAPIURL(schemaTS.URL)

		req := gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
			GenerationConfig: &gemini.GenerationConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema:   map[string]any{"type": "OBJECT"},
			},
		}
		if _, err := c2.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("responseMimeType not sent: %+v", captured.GenerationConfig)
		}
	})

	t.Run("Empty Candidates Text", func(t *testing.T) {
		var resp gemini.GenerateResponse
		if resp.Text() != "" {
			t.Errorf("expected empty text for empty response")
		}
	})
}
