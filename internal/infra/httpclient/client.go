package httpclient

import (
	"net/http"
	"time"
)

type Client struct {
	c *http.Client
}

// New returns a client whose requests, redirects and body reads included,
// give up after timeout.
func New(timeout time.Duration) *Client {
	return &Client{c: &http.Client{Timeout: timeout}}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.c.Do(req)
}

func (c *Client) Timeout() time.Duration { return c.c.Timeout }
