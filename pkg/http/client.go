package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
	backoff            *BackoffConfig
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// Backoff is the default retry policy for transport failures, nil disables retries
	Backoff *BackoffConfig
	// Logger receives request and response events, nil disables HTTP logging
	Logger HTTPLogger
	// Transport replaces the default pooled transport, mainly for tests
	Transport http.RoundTripper
}

// StatusError is returned for non-2xx responses and keeps the raw body for error messages.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 5 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        opts.MaxIdleConns,
			MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
			IdleConnTimeout:     opts.IdleConnTimeout,
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   opts.ReadTimeout,
		},
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		backoff:            opts.Backoff,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

type attemptResult struct {
	success any
	failure any
	status  int
}

// doRequestWithBackoff runs doRequest and retries transport failures according to policy.
// Responses with a status code are never retried.
func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any, policy *BackoffConfig) (any, any, int, error) {
	if policy == nil {
		policy = hc.backoff
	}
	if policy == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, successResp, errorResp)
	}

	operation := func() (attemptResult, error) {
		success, failure, status, err := hc.doRequest(ctx, method, path, queryParams, headers, successResp, errorResp)
		result := attemptResult{success: success, failure: failure, status: status}
		if err != nil && (status != 0 || ctx.Err() != nil) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	retries := 0
	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy.exponential()),
		backoff.WithMaxTries(policy.maxTries()),
		backoff.WithNotify(func(err error, _ time.Duration) {
			retries++
			if hc.logger != nil {
				hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", 0, "", 0, err, retries, policy.MaxRetries)
			}
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Unwrap()
	}
	return result.success, result.failure, result.status, err
}

// doRequest sends one HTTP request and decodes the response into successResp or errorResp.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	fullURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		fullURL += "?" + buildQueryString(queryParams)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, nil, 0, err
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(method, fullURL, headers, "")
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, fullURL, headers, "", 0, "", time.Since(start).Milliseconds(), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, fullURL, headers, "", resp.StatusCode, string(bodyBytes), latency)
		}
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	if hc.logger != nil {
		hc.logger.LogResponseError(method, fullURL, headers, "", resp.StatusCode, statusErr.Body, latency, statusErr)
	}

	if errorResp != nil {
		if unmarshalErr := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); unmarshalErr != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
		return nil, errorResp, resp.StatusCode, statusErr
	}

	return nil, nil, resp.StatusCode, statusErr
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string, keys sorted
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
