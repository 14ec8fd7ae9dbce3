package http

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type failure struct {
	Reason string `json:"reason"`
}

func TestExecuteDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "São Paulo" {
			t.Errorf("query not escaped correctly, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok","count":3}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/", ClientOptions{})
	resp, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("v1/search").
		WithQueryParams(map[string]string{"name": "São Paulo"}).
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	got := resp.(*payload)
	if got.Name != "ok" || got.Count != 3 {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestExecuteReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"reason":"slow down"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Backoff: NewBackoffConfig(3)})
	_, errResp, status, err := client.Request().
		WithSuccessResp(&payload{}).
		WithErrorResp(&failure{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if status != http.StatusTooManyRequests || statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", status)
	}
	if statusErr.Body != `{"reason":"slow down"}` {
		t.Errorf("unexpected body %q", statusErr.Body)
	}
	if errResp.(*failure).Reason != "slow down" {
		t.Errorf("error response not decoded: %+v", errResp)
	}
}

func TestExecuteDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, _, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().WithSuccessResp(&payload{}).Execute()
	if err == nil {
		t.Fatal("expected decode error")
	}
	if status != http.StatusOK {
		t.Errorf("expected status to be kept, got %d", status)
	}
}

type flakyTransport struct {
	calls int32
	fails int32
	next  http.RoundTripper
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if atomic.AddInt32(&f.calls, 1) <= f.fails {
		return nil, errors.New("connection reset")
	}
	return f.next.RoundTrip(r)
}

func TestBackoffRetriesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"retried"}`))
	}))
	defer server.Close()

	transport := &flakyTransport{fails: 1, next: http.DefaultTransport}
	backoff := &BackoffConfig{MaxRetries: 1, InitialInterval: time.Millisecond}
	client := NewHttpClient(server.URL, ClientOptions{Transport: transport, Backoff: backoff})

	resp, _, _, err := client.Request().WithSuccessResp(&payload{}).Execute()
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if resp.(*payload).Name != "retried" {
		t.Errorf("unexpected payload %+v", resp)
	}
	if got := atomic.LoadInt32(&transport.calls); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestBackoffGivesUpAfterMaxRetries(t *testing.T) {
	transport := &flakyTransport{fails: 10, next: http.DefaultTransport}
	backoff := &BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond}
	client := NewHttpClient("http://127.0.0.1:1", ClientOptions{Transport: transport, Backoff: backoff})

	_, _, status, err := client.Request().WithContext(context.Background()).Execute()
	if err == nil || status != 0 {
		t.Fatalf("expected transport error, got status %d err %v", status, err)
	}
	if got := atomic.LoadInt32(&transport.calls); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestBackoffDoesNotRetryStatusErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	backoff := &BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond}
	_, _, status, err := NewHttpClient(server.URL, ClientOptions{Backoff: backoff}).Request().Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 StatusError, got status %d err %v", status, err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single attempt, got %d", got)
	}
}

func TestBackoffStopsOnCancelledContext(t *testing.T) {
	transport := &flakyTransport{fails: 10, next: http.DefaultTransport}
	backoff := &BackoffConfig{MaxRetries: 5, InitialInterval: time.Second}
	client := NewHttpClient("http://127.0.0.1:1", ClientOptions{Transport: transport, Backoff: backoff})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, status, err := client.Request().WithContext(ctx).Execute()
	if err == nil || status != 0 {
		t.Fatalf("expected transport error, got status %d err %v", status, err)
	}
	if time.Since(start) > 900*time.Millisecond {
		t.Errorf("retry wait should end with the context, took %v", time.Since(start))
	}
}

func TestBackoffPolicy(t *testing.T) {
	b := &BackoffConfig{MaxRetries: 2, InitialInterval: 100 * time.Millisecond, MaxInterval: 300 * time.Millisecond, Multiplier: 2}
	policy := b.exponential()

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}
	for i, expected := range want {
		if got := policy.NextBackOff(); got != expected {
			t.Errorf("interval %d: expected %v, got %v", i+1, expected, got)
		}
	}
	if b.maxTries() != 3 {
		t.Errorf("expected 3 tries, got %d", b.maxTries())
	}
	if (&BackoffConfig{}).maxTries() != 1 {
		t.Error("zero retries should still make one attempt")
	}
}

func TestExecuteSendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "go-weather" || r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected headers %v", r.Header)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{DefaultHeaders: map[string]string{"User-Agent": "go-weather"}})
	if _, _, _, err := client.Request().WithHeaders(map[string]string{"Accept": "application/json"}).Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type xmlFailure struct {
	XMLName xml.Name `xml:"error"`
	Reason  string   `xml:"reason"`
}

func TestExecuteDecodesLatin1XMLErrorBody(t *testing.T) {
	body := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><error><reason>S\xe3o Paulo indispon\xedvel</reason></error>")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=ISO-8859-1")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	_, errResp, status, err := NewHttpClient(server.URL, ClientOptions{}).Request().
		WithErrorResp(&xmlFailure{}).
		Execute()
	if status != http.StatusBadGateway || err == nil {
		t.Fatalf("expected 502 with error, got %d %v", status, err)
	}
	if got := errResp.(*xmlFailure).Reason; got != "São Paulo indisponível" {
		t.Errorf("charset not decoded, got %q", got)
	}
}
