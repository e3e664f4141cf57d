package reconcile

import "context"

// Directory attribute names used by the identity reconciler. The
// custom: prefix marks organization-defined attributes in the pool
// schema.
const (
	AttributeEmail         = "email"
	AttributeEmailVerified = "email_verified"
	AttributePreferredName = "preferred_username"
	AttributeOrgID         = "custom:orgID"
	AttributeName          = "name"
	AttributeGivenName     = "given_name"
	AttributeFamilyName    = "family_name"
	AttributeRank          = "custom:rank"
	AttributePhone         = "phone_number"

	// AttributeUserID carries the immutable identifier the directory
	// assigns at account creation.
	AttributeUserID = "sub"
)

// Attribute is one named directory account attribute.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Account is a directory account as returned by the directory gateway.
type Account struct {
	Username   string      `json:"username"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute returns the value of the named attribute. The second
// return value reports whether the attribute is set.
func (a Account) Attribute(name string) (string, bool) {
	for _, attr := range a.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// UserID returns the immutable identifier assigned by the directory
// at account creation.
func (a Account) UserID() (string, bool) {
	return a.Attribute(AttributeUserID)
}

// DirectoryGateway is the identity-directory capability the engine
// consumes. Transport and authentication are the implementation's
// concern; the engine passes only logical operations.
type DirectoryGateway interface {
	// GetAccount fetches an account by username. A false found value
	// with a nil error signals absence — that is the branch condition
	// for creation, not a failure.
	GetAccount(ctx context.Context, username string) (Account, bool, error)

	// UpdateAttributes replaces the given attributes on an existing
	// account, leaving unlisted attributes untouched.
	UpdateAttributes(ctx context.Context, username string, attrs []Attribute) error

	// CreateAccount creates an account with a temporary credential.
	// When suppressNotification is true the directory must not send
	// the usual invitation message.
	CreateAccount(ctx context.Context, username, tempPassword string, attrs []Attribute, suppressNotification bool) error

	// AddToGroup asserts group membership. Adding a user to a group
	// they already belong to must not error.
	AddToGroup(ctx context.Context, username, group string) error
}

// Entry is an assignment-registry entry keyed by orgID + "-" + badge.
type Entry struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"orgId"`
	BadgeNumber string  `json:"badgeNumber"`
	Title       string  `json:"title"`
	Detail      *string `json:"detail"`
	Location    *string `json:"location"` // reserved, never populated by this engine
	Notes       *string `json:"notes"`
}

// RegistryGateway is the assignment-registry capability the engine
// consumes.
type RegistryGateway interface {
	// UpdateEntry updates the entry keyed by entry.ID. When no entry
	// exists for that key the returned error matches
	// errors.ErrNotFound, which is the fallback-create signal.
	UpdateEntry(ctx context.Context, entry Entry) error

	// CreateEntry creates the entry keyed by entry.ID.
	CreateEntry(ctx context.Context, entry Entry) error
}
