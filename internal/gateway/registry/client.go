// Package registry implements the assignment-registry gateway over its
// GraphQL query API. It is a thin adapter: upsert semantics live in
// pkg/reconcile.
package registry

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dutywire/rostersync/internal/transport"
	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/reconcile"
)

const system = "registry"

const updateAssignmentMutation = `
mutation UpdateAssignment($input: UpdateOfficerAssignmentInput!) {
  updateOfficerAssignment(input: $input) {
    id
  }
}
`

const createAssignmentMutation = `
mutation CreateAssignment($input: CreateOfficerAssignmentInput!) {
  createOfficerAssignment(input: $input) {
    id
  }
}
`

// Config holds the registry endpoint and credentials.
type Config struct {
	// URL is the GraphQL endpoint.
	URL string

	// APIKey authenticates mutations via the x-api-key header.
	APIKey string
}

// Client calls the registry GraphQL API. It implements
// reconcile.RegistryGateway.
type Client struct {
	url  string
	http *transport.Client
}

// New creates a registry client from config.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.NewConfigError(system, "GraphQL endpoint URL is required", nil)
	}
	return &Client{
		url:  cfg.URL,
		http: transport.New(&transport.HeaderAuth{Header: "x-api-key"}, cfg.APIKey),
	}, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// UpdateEntry updates the entry keyed by entry.ID. A missing entry
// surfaces as an error matching errors.ErrNotFound so the reconciler
// can fall back to create.
func (c *Client) UpdateEntry(ctx context.Context, entry reconcile.Entry) error {
	return c.mutate(ctx, updateAssignmentMutation, entry)
}

// CreateEntry creates the entry keyed by entry.ID.
func (c *Client) CreateEntry(ctx context.Context, entry reconcile.Entry) error {
	return c.mutate(ctx, createAssignmentMutation, entry)
}

func (c *Client) mutate(ctx context.Context, query string, entry reconcile.Entry) error {
	request := graphqlRequest{
		Query:     query,
		Variables: map[string]any{"input": entry},
	}

	resp, err := c.http.Post(ctx, c.url, request)
	if err != nil {
		return errors.WrapAPI(system, 0, err)
	}

	var result graphqlResponse
	if err := transport.DecodeResponse(system, resp, &result); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		first := result.Errors[0]
		if isNotFound(first) {
			return &errors.APIError{System: system, StatusCode: 404, Message: first.Message}
		}
		return errors.NewAPIError(system, 0, first.Message)
	}
	return nil
}

// isNotFound reports whether a GraphQL error means "no entry for this
// key". The backing store rejects updates to missing keys with a
// conditional-check failure; newer API versions return an explicit
// not-found error type.
func isNotFound(e graphqlError) bool {
	if strings.Contains(e.ErrorType, "ConditionalCheckFailed") {
		return true
	}
	combined := strings.ToLower(e.ErrorType + " " + e.Message)
	return strings.Contains(combined, "not found") || strings.Contains(combined, "does not exist")
}
