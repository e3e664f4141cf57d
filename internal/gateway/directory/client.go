// Package directory implements the identity-directory gateway over the
// pool's admin REST API. It is a thin adapter: all reconciliation
// semantics live in pkg/reconcile.
package directory

import (
	"context"
	"net/url"
	"strings"

	"github.com/dutywire/rostersync/internal/transport"
	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/reconcile"
)

const system = "directory"

// Config holds the directory endpoint and credentials.
type Config struct {
	// BaseURL is the admin API root, e.g. https://id.dutywire.net.
	BaseURL string

	// PoolID identifies the user pool the roster belongs to.
	PoolID string

	// Token is the admin bearer token.
	Token string
}

// Client calls the directory admin API. It implements
// reconcile.DirectoryGateway.
type Client struct {
	base string
	pool string
	http *transport.Client
}

// New creates a directory client from config.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.NewConfigError(system, "base URL is required", nil)
	}
	if cfg.PoolID == "" {
		return nil, errors.NewConfigError(system, "pool ID is required", nil)
	}
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		pool: cfg.PoolID,
		http: transport.New(&transport.BearerAuth{}, cfg.Token),
	}, nil
}

// account is the wire form of a directory account.
type account struct {
	Username   string      `json:"username"`
	Attributes []attribute `json:"attributes"`
}

type attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// GetAccount fetches an account by username. A 404 from the directory
// is the absence signal, not an error.
func (c *Client) GetAccount(ctx context.Context, username string) (reconcile.Account, bool, error) {
	resp, err := c.http.Get(ctx, c.userURL(username))
	if err != nil {
		return reconcile.Account{}, false, errors.WrapAPI(system, 0, err)
	}

	var found account
	if err := transport.DecodeResponse(system, resp, &found); err != nil {
		if errors.IsNotFound(err) {
			return reconcile.Account{}, false, nil
		}
		return reconcile.Account{}, false, err
	}

	return toAccount(found), true, nil
}

// UpdateAttributes replaces the given attributes on an existing account.
func (c *Client) UpdateAttributes(ctx context.Context, username string, attrs []reconcile.Attribute) error {
	body := struct {
		Attributes []attribute `json:"attributes"`
	}{Attributes: fromAttributes(attrs)}

	resp, err := c.http.Put(ctx, c.userURL(username)+"/attributes", body)
	if err != nil {
		return errors.WrapAPI(system, 0, err)
	}
	return transport.DecodeResponse(system, resp, nil)
}

// CreateAccount creates an account with a temporary credential.
func (c *Client) CreateAccount(ctx context.Context, username, tempPassword string, attrs []reconcile.Attribute, suppressNotification bool) error {
	body := struct {
		Username             string      `json:"username"`
		TemporaryPassword    string      `json:"temporaryPassword"`
		SuppressNotification bool        `json:"suppressNotification"`
		Attributes           []attribute `json:"attributes"`
	}{
		Username:             username,
		TemporaryPassword:    tempPassword,
		SuppressNotification: suppressNotification,
		Attributes:           fromAttributes(attrs),
	}

	resp, err := c.http.Post(ctx, c.poolURL()+"/users", body)
	if err != nil {
		return errors.WrapAPI(system, 0, err)
	}
	return transport.DecodeResponse(system, resp, nil)
}

// AddToGroup asserts group membership. The directory treats re-adding
// an existing member as a no-op success.
func (c *Client) AddToGroup(ctx context.Context, username, group string) error {
	body := struct {
		Username string `json:"username"`
	}{Username: username}

	resp, err := c.http.Post(ctx, c.poolURL()+"/groups/"+url.PathEscape(group)+"/members", body)
	if err != nil {
		return errors.WrapAPI(system, 0, err)
	}
	return transport.DecodeResponse(system, resp, nil)
}

func (c *Client) poolURL() string {
	return c.base + "/admin/pools/" + url.PathEscape(c.pool)
}

func (c *Client) userURL(username string) string {
	return c.poolURL() + "/users/" + url.PathEscape(username)
}

func toAccount(a account) reconcile.Account {
	attrs := make([]reconcile.Attribute, 0, len(a.Attributes))
	for _, attr := range a.Attributes {
		attrs = append(attrs, reconcile.Attribute{Name: attr.Name, Value: attr.Value})
	}
	return reconcile.Account{Username: a.Username, Attributes: attrs}
}

func fromAttributes(attrs []reconcile.Attribute) []attribute {
	out := make([]attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attribute{Name: attr.Name, Value: attr.Value})
	}
	return out
}
