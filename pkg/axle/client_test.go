package axle_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"axle-assist/pkg/axle"
)

func newListServer(t *testing.T, wantAuth string, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/list/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != wantAuth {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestClient_ListTransactions(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		ts := newListServer(t, "Bearer secret-token", http.StatusOK,
			`{"data":{"result":[{"transaction_id":"tx-1","pickup_location":"Delhi"},{"transaction_id":"tx-2"}]}}`)
		defer ts.Close()

		client := axle.NewClient(ts.URL, "secret-token")
		loads, err := client.ListTransactions(context.Background(), url.Values{"offset": {"0"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loads) != 2 {
			t.Fatalf("expected 2 loads, got %d", len(loads))
		}
		if loads[0].TransactionID != "tx-1" || loads[0].PickupLocation != "Delhi" {
			t.Errorf("unexpected first record: %+v", loads[0])
		}
	})

	t.Run("Bearer Prefix Preserved", func(t *testing.T) {
		ts := newListServer(t, "Bearer already-prefixed", http.StatusOK, `{"data":{"result":[]}}`)
		defer ts.Close()

		client := axle.NewClient(ts.URL, "Bearer already-prefixed")
		if _, err := client.ListTransactions(context.Background(), url.Values{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Upstream 503", func(t *testing.T) {
		ts := newListServer(t, "Bearer tok", http.StatusServiceUnavailable, "service down")
		defer ts.Close()

		client := axle.NewClient(ts.URL, "tok")
		_, err := client.ListTransactions(context.Background(), url.Values{})

		var ue *axle.UpstreamError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if ue.StatusCode != 503 {
			t.Errorf("expected status 503, got %d", ue.StatusCode)
		}
		if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "service down") {
			t.Errorf("error message missing status or body excerpt: %s", err.Error())
		}
	})

	t.Run("Body Excerpt Truncated", func(t *testing.T) {
		long := strings.Repeat("x", 1000)
		ts := newListServer(t, "Bearer tok", http.StatusBadGateway, long)
		defer ts.Close()

		client := axle.NewClient(ts.URL, "tok")
		_, err := client.ListTransactions(context.Background(), url.Values{})

		var ue *axle.UpstreamError
		if !errors.As(err, &ue) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if len(ue.Body) > 250 {
			t.Errorf("body excerpt not truncated: %d chars", len(ue.Body))
		}
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		ts := newListServer(t, "Bearer tok", http.StatusOK, `<html>gateway page</html>`)
		defer ts.Close()

		client := axle.NewClient(ts.URL, "tok")
		_, err := client.ListTransactions(context.Background(), url.Values{})

		var me *axle.MalformedResponseError
		if !errors.As(err, &me) {
			t.Fatalf("expected MalformedResponseError, got %v", err)
		}
	})

	t.Run("Missing Result Array", func(t *testing.T) {
		ts := newListServer(t, "Bearer tok", http.StatusOK, `{"success":true}`)
		defer ts.Close()

		client := axle.NewClient(ts.URL, "tok")
		_, err := client.ListTransactions(context.Background(), url.Values{})

		var me *axle.MalformedResponseError
		if !errors.As(err, &me) {
			t.Fatalf("expected MalformedResponseError, got %v", err)
		}
	})
}

func TestClient_Passthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "limit=5&foo=bar" {
			t.Errorf("query not forwarded verbatim: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"whatever":"upstream says"}`))
	}))
	defer ts.Close()

	client := axle.NewClient(ts.URL, "tok")
	raw, err := client.Passthrough(context.Background(), "limit=5&foo=bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.StatusCode != http.StatusTeapot {
		t.Errorf("status not relayed: %d", raw.StatusCode)
	}
	if string(raw.Body) != `{"whatever":"upstream says"}` {
		t.Errorf("body not relayed: %s", raw.Body)
	}
	if raw.ContentType != "application/json" {
		t.Errorf("content type not relayed: %s", raw.ContentType)
	}
}
