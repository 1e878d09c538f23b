package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const DefaultTimeout = 30 * time.Second

type Executor interface {
	Execute(ctx context.Context, req *Request) (any, error)
}

type Request struct {
	Method string
	Path   string

	Body  any
	Query map[string]string

	Headers map[string]string

	// Discard skips decoding of a successful response body.
	Discard bool
}

var (
	_ Executor = (*Client)(nil)
)

type Client struct {
	URL string

	bearer  string
	headers map[string]string

	timeout time.Duration

	client *http.Client
	logger zerolog.Logger
}

type Option func(*Client)

func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)

	if err != nil {
		return nil, errors.Wrap(err, "parsing base URL")
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Newf("invalid base URL %q", baseURL)
	}

	c := &Client{
		URL: strings.TrimRight(u.String(), "/"),

		timeout: DefaultTimeout,

		client: cleanhttp.DefaultClient(),
		logger: zerolog.Nop(),
	}

	for _, o := range options {
		o(c)
	}

	return c, nil
}

func WithBearer(bearer string) Option {
	return func(c *Client) {
		c.bearer = bearer
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func (c *Client) Execute(ctx context.Context, r *Request) (any, error) {
	method := r.Method

	if method == "" {
		method = http.MethodGet
	}

	target := c.URL + r.Path

	if len(r.Query) > 0 {
		query := url.Values{}

		for k, v := range r.Query {
			query.Set(k, v)
		}

		target += "?" + query.Encode()
	}

	log := c.logger.With().Str("method", method).Str("url", target).Logger()
	log.Debug().Msg("making request")

	var body io.Reader

	if r.Body != nil {
		data, err := json.Marshal(r.Body)

		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}

		log.Debug().RawJSON("body", data).Msg("request body")
		body = bytes.NewReader(data)
	}

	if len(r.Headers) > 0 {
		log.Debug().Interface("headers", r.Headers).Msg("extra headers")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)

	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	req.Header.Set("Content-Type", "application/json")

	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return nil, errors.Wrapf(err, "%s %s", method, r.Path)
	}

	defer resp.Body.Close()

	result, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	log.Debug().Int("status", resp.StatusCode).Str("body", string(result)).Msg("response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{
			StatusCode: resp.StatusCode,
			Body:       string(result),
		}
	}

	if r.Discard || len(result) == 0 {
		return nil, nil
	}

	var value any

	if err := json.Unmarshal(result, &value); err != nil {
		log.Debug().Err(err).Msg("response is not JSON, returning raw text")
		return Text(result), nil
	}

	return value, nil
}

// Text is a successful response body that is not JSON.
type Text string

// RemoteError is a non-2xx answer from the backend. Body is the raw response text.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("API request failed (%d): %s", e.StatusCode, e.Body)
}
