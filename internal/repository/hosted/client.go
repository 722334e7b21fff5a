package hosted

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

	"github.com/dtroode/contacts-server/internal/model"
)

// RecordClient talks to a hosted table-oriented record API.
type RecordClient interface {
	FetchRecords(ctx context.Context, table string, query Query) (Envelope, error)
	GetRecordByID(ctx context.Context, table string, id int64, query Query) (Envelope, error)
	CreateRecord(ctx context.Context, table string, payload RecordsPayload) (Envelope, error)
	UpdateRecord(ctx context.Context, table string, payload RecordsPayload) (Envelope, error)
	DeleteRecord(ctx context.Context, table string, payload DeletePayload) (Envelope, error)
}

// TokenSource issues bearer tokens for the record API.
type TokenSource interface {
	Token() (string, error)
}

// Envelope wraps every record API response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Query selects the fields returned by fetch and get.
type Query struct {
	Fields  []string `json:"fields,omitempty"`
	OrderBy []Order  `json:"orderBy,omitempty"`
}

type Order struct {
	Field     string `json:"fieldName"`
	Direction string `json:"sorttype"`
}

type RecordsPayload struct {
	Records []json.RawMessage `json:"records"`
}

type DeletePayload struct {
	RecordIDs []int64 `json:"RecordIds"`
}

type getPayload struct {
	ID    int64 `json:"id"`
	Query Query `json:"query"`
}

type fetchPayload struct {
	Query Query `json:"query"`
}

// HTTPClient is the RecordClient backed by the REST endpoint of the hosted API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

var _ RecordClient = (*HTTPClient)(nil)

// NewHTTPClient creates a record client. tokens may be nil for unauthenticated endpoints.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) FetchRecords(ctx context.Context, table string, query Query) (Envelope, error) {
	return c.do(ctx, table, "fetch", fetchPayload{Query: query})
}

func (c *HTTPClient) GetRecordByID(ctx context.Context, table string, id int64, query Query) (Envelope, error) {
	return c.do(ctx, table, "get", getPayload{ID: id, Query: query})
}

func (c *HTTPClient) CreateRecord(ctx context.Context, table string, payload RecordsPayload) (Envelope, error) {
	return c.do(ctx, table, "create", payload)
}

func (c *HTTPClient) UpdateRecord(ctx context.Context, table string, payload RecordsPayload) (Envelope, error) {
	return c.do(ctx, table, "update", payload)
}

func (c *HTTPClient) DeleteRecord(ctx context.Context, table string, payload DeletePayload) (Envelope, error) {
	return c.do(ctx, table, "delete", payload)
}

func (c *HTTPClient) do(ctx context.Context, table, action string, payload any) (Envelope, error) {
	op := table + "." + action

	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s request: %w", op, err)
	}

	endpoint := fmt.Sprintf("%s/tables/%s/records/%s", c.baseURL, url.PathEscape(table), action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to obtain api token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Envelope{}, model.NewStoreError(op, "record service is unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Envelope{}, model.NewStoreError(op, "failed to read record service response", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return Envelope{}, model.NewStoreError(op, fmt.Sprintf("record service returned status %d", resp.StatusCode), nil)
		}
		return Envelope{}, model.NewStoreError(op, "record service returned a malformed response", err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("record service rejected %s", action)
		}
		return env, model.NewStoreError(op, msg, nil)
	}

	return env, nil
}

const maxResponseSize = 16 << 20
