package catapi

import (
	"context"
	"testing"

	"github.com/pawmark-hq/catpedia/pkg/httpclient"
)

// mockHTTPClient asserts on the request the client builds and plays back a
// canned response.
type mockHTTPClient struct {
	t             *testing.T
	expectURL     string
	expectHeaders map[string]string
	forbidHeaders []string
	expectQuery   map[string]string
	status        int
	body          string
	err           error
}

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

func (m mockHTTPClient) Get(_ context.Context, url string, headers, query map[string]string) (httpclient.Response, error) {
	m.t.Helper()
	if m.err != nil {
		return nil, m.err
	}
	if m.expectURL != "" && url != m.expectURL {
		m.t.Fatalf("expected url %q, got %q", m.expectURL, url)
	}
	for key, want := range m.expectHeaders {
		if got := headers[key]; got != want {
			m.t.Fatalf("expected header %s=%q, got %q", key, want, got)
		}
	}
	for _, key := range m.forbidHeaders {
		if got, ok := headers[key]; ok {
			m.t.Fatalf("header %s must not be set, got %q", key, got)
		}
	}
	for key, want := range m.expectQuery {
		if got := query[key]; got != want {
			m.t.Fatalf("expected query %s=%q, got %q", key, want, got)
		}
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return mockResponse{body: []byte(m.body), statusCode: status}, nil
}

const testCDN = "https://cdn.example/images/"

func newTestClient(t *testing.T, mock mockHTTPClient) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:     "https://api.example/v1/",
		ImageCDNURL: testCDN,
		APIKey:      "test-key",
	}, WithHTTPClient(mock))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	if _, err := New(Config{ImageCDNURL: testCDN}); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestNewRejectsEmptyCDNURL(t *testing.T) {
	if _, err := New(Config{BaseURL: "https://api.example/v1/"}); err == nil {
		t.Fatalf("expected error for empty cdn url")
	}
}
