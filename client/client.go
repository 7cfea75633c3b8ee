package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vivastreet/backend-smoke-tests/logging"
)

// DefaultTimeout bounds each request, including reading the response body.
const DefaultTimeout = time.Second * 10

// ErrUnsupportedMethod is returned for an HTTP method other than GET, POST, PUT, PATCH or
// DELETE. It indicates a mistake in the calling code rather than a problem with the backend.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// Client sends JSON requests to the backend under test. All requests share one http.Client,
// so connections are reused between them.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

type requestParams struct {
	body    interface{}
	headers map[string]string
	token   string
	logger  logging.Logger
}

// RequestOption customizes a single request made with Client.Do.
type RequestOption func(*requestParams)

// WithBody sets a value to be encoded as the JSON request body. It is ignored for GET and
// DELETE requests.
func WithBody(body interface{}) RequestOption {
	return func(p *requestParams) { p.body = body }
}

// WithHeaders adds headers to the request, overriding the default JSON headers if they
// have the same name.
func WithHeaders(headers map[string]string) RequestOption {
	return func(p *requestParams) {
		if p.headers == nil {
			p.headers = make(map[string]string)
		}
		for k, v := range headers {
			p.headers[k] = v
		}
	}
}

// WithToken sends an "Authorization: Bearer" header if token is not empty.
func WithToken(token string) RequestOption {
	return func(p *requestParams) { p.token = token }
}

// WithLogger sends the request and response log lines to this logger as well as the
// client's own logger.
func WithLogger(logger logging.Logger) RequestOption {
	return func(p *requestParams) { p.logger = logger }
}

// New creates a Client. Endpoints passed to Do are appended to baseURL verbatim.
func New(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.NullLogger()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one request and reads the whole response.
//
// If the backend could not be reached or did not answer in time, the error is a
// *NetworkError. Any other error means the request itself was invalid.
func (c *Client) Do(method, endpoint string, options ...RequestOption) (*Response, error) {
	method = strings.ToUpper(method)
	if !supportedMethods[method] {
		return nil, errors.Wrapf(ErrUnsupportedMethod, "%q", method)
	}

	var params requestParams
	for _, o := range options {
		o(&params)
	}
	logger := logging.Multi(c.logger, params.logger)
	url := c.baseURL + endpoint

	var body io.Reader
	if params.body != nil && method != http.MethodGet && method != http.MethodDelete {
		data, err := json.Marshal(params.body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		logger.Printf(">> %s %s %s", method, url, string(data))
		body = bytes.NewReader(data)
	} else {
		logger.Printf(">> %s %s", method, url)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request %s %s", method, url)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range params.headers {
		req.Header.Set(k, v)
	}
	if params.token != "" {
		req.Header.Set("Authorization", "Bearer "+params.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		netErr := &NetworkError{Method: method, URL: url, Err: err}
		logger.Printf("Request failed: %s", netErr)
		return nil, netErr
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &NetworkError{Method: method, URL: url, Err: err}
		logger.Printf("Request failed: %s", netErr)
		return nil, netErr
	}
	logger.Printf("<< %d %s", resp.StatusCode, string(data))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
