package auditapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"audit-activity-service/internal/config"

	"go.uber.org/zap"
)

var (
	ErrUpstreamStatus    = errors.New("audit api returned a non-success status")
	ErrUpstreamTransport = errors.New("audit api request failed")
	ErrMalformedResponse = errors.New("malformed audit api response")
)

// ISO-8601 with milliseconds, always rendered in UTC ("...T00:00:00.000Z").
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

const maxBodyBytes = 32 << 20

// Header names the backend reads credentials from.
const (
	HeaderAuthUsername   = "authUsername"
	HeaderAuthPassword   = "authPassword"
	HeaderAuthDomainName = "authDomainName"
)

type credentials struct {
	username, password, domainName string
}

// Client talks to the backend audit API. It implements the report source of
// the activity context and the audit source of the audits context.
type Client struct {
	baseURL    string
	reportPath string
	listPath   string
	http       *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.AuditAPIConfig, logger *zap.Logger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewClientWithHTTP(cfg config.AuditAPIConfig, hc *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		reportPath: cfg.ReportPath,
		listPath:   cfg.ListPath,
		http:       hc,
		logger:     logger.Named("auditapi"),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func setIfNotEmpty(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

// get performs the GET and returns the raw body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, q url.Values, creds credentials) ([]byte, error) {
	u := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "*/*")
	req.Header.Set(HeaderAuthUsername, creds.username)
	req.Header.Set(HeaderAuthPassword, creds.password)
	req.Header.Set(HeaderAuthDomainName, creds.domainName)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("audit api call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: reading body: %w", ErrUpstreamTransport, err)
	}
	return body, nil
}

// requireArray rejects bodies whose top-level JSON value is not an array,
// including null.
func requireArray(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: expected a JSON array", ErrMalformedResponse)
	}
	return nil
}

func decodeArray[T any](body []byte) ([]T, error) {
	if err := requireArray(body); err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return out, nil
}
