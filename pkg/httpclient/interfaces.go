package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP GETs so callers can inject mocks or different
// transports. headers and query may be nil when a request needs neither.
type Client interface {
	Get(ctx context.Context, url string, headers, query map[string]string) (Response, error)
}
