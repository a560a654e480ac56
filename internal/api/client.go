package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"

	"ministeam-seeder/internal/config"
	"ministeam-seeder/internal/constants"
)

// Service selects which backend a request targets.
type Service int

const (
	Identity Service = iota
	Catalog
	Social
)

func (s Service) String() string {
	switch s {
	case Identity:
		return "identity"
	case Catalog:
		return "catalog"
	case Social:
		return "social"
	}
	return "unknown"
}

// Outcome classifies a completed attempt.
type Outcome int

const (
	// OutcomeOK is any 2xx response.
	OutcomeOK Outcome = iota
	// OutcomeConflict is a 409: the record or relationship already exists.
	OutcomeConflict
	// OutcomeFailure is any other status or a transport-level error.
	OutcomeFailure
)

// Result is the classified outcome of a single request attempt. StatusCode is
// zero when the failure happened below HTTP (connection refused, timeout).
type Result struct {
	Outcome    Outcome
	StatusCode int
	Body       json.RawMessage
	Err        error
}

func (r Result) OK() bool       { return r.Outcome == OutcomeOK }
func (r Result) Conflict() bool { return r.Outcome == OutcomeConflict }
func (r Result) Failed() bool   { return r.Outcome == OutcomeFailure }

// ErrString returns the failure description recorded in the operation log.
func (r Result) ErrString() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Client issues JSON POSTs to the three backend services. Exactly one attempt
// per call; retry policy belongs to callers, and the seeder has none.
type Client struct {
	client   *fasthttp.Client
	baseURLs map[Service]string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.ClientMaxConnsPerHost,
			ReadTimeout:         constants.ClientReadTimeout,
			WriteTimeout:        constants.ClientWriteTimeout,
			MaxIdleConnDuration: constants.ClientMaxIdleConnDuration,
		},
		baseURLs: map[Service]string{
			Identity: cfg.IdentityURL,
			Catalog:  cfg.CatalogURL,
			Social:   cfg.SocialURL,
		},
	}
}

// Post sends payload as JSON to service at path and classifies the response.
func (c *Client) Post(ctx context.Context, service Service, path string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Outcome: OutcomeFailure, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURLs[service] + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return Result{Outcome: OutcomeFailure, Err: err}
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		// Body is reused once resp is released; copy it out.
		return Result{
			Outcome:    OutcomeOK,
			StatusCode: status,
			Body:       json.RawMessage(append([]byte(nil), resp.Body()...)),
		}
	case status == fasthttp.StatusConflict:
		// Whether a duplicate is an expected no-op or a failure is the
		// caller's decision; the error is kept for callers that record it.
		return Result{
			Outcome:    OutcomeConflict,
			StatusCode: status,
			Err:        fmt.Errorf("%s API error: %d", service, status),
		}
	default:
		return Result{
			Outcome:    OutcomeFailure,
			StatusCode: status,
			Err:        fmt.Errorf("%s API error: %d", service, status),
		}
	}
}
