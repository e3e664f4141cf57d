package reconcile

import (
	"context"

	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/roster"
)

// Identity drives the directory toward the account state derived from
// one canonical record. Calling EnsureAccount twice for the same record
// is idempotent: the second call updates in place and resolves the same
// user identifier.
type Identity struct {
	directory    DirectoryGateway
	tempPassword string
}

// NewIdentity creates an identity reconciler. The temporary password is
// only used on the creation path and follows the platform credential
// policy supplied at construction.
func NewIdentity(directory DirectoryGateway, tempPassword string) *Identity {
	return &Identity{directory: directory, tempPassword: tempPassword}
}

// EnsureAccount ensures a directory account exists for the record with
// correct attributes and group membership, and returns the immutable
// user identifier the directory assigned to it.
func (i *Identity) EnsureAccount(ctx context.Context, record roster.Record, orgID string) (string, error) {
	username := record.Email
	attrs := accountAttributes(record, orgID)

	account, found, err := i.directory.GetAccount(ctx, username)
	if err != nil {
		return "", errors.NewIdentityError(record.BadgeNumber, err)
	}

	if found {
		if err := i.directory.UpdateAttributes(ctx, username, attrs); err != nil {
			return "", errors.NewIdentityError(record.BadgeNumber, err)
		}
	} else {
		if err := i.directory.CreateAccount(ctx, username, i.tempPassword, attrs, true); err != nil {
			return "", errors.NewIdentityError(record.BadgeNumber, err)
		}
		// Fetch back to learn the identifier the directory assigned.
		account, found, err = i.directory.GetAccount(ctx, username)
		if err != nil {
			return "", errors.NewIdentityError(record.BadgeNumber, err)
		}
		if !found {
			return "", errors.NewIdentityError(record.BadgeNumber,
				errors.New("account missing after create"))
		}
	}

	// Membership is asserted on both paths; a roster run may move an
	// existing officer between groups.
	if err := i.directory.AddToGroup(ctx, username, string(record.Group)); err != nil {
		return "", errors.NewIdentityError(record.BadgeNumber, err)
	}

	userID, ok := account.UserID()
	if !ok {
		return "", errors.NewIdentifierError(username)
	}
	return userID, nil
}

// accountAttributes builds the attribute set for a record. Optional
// record fields are included only when present.
func accountAttributes(record roster.Record, orgID string) []Attribute {
	displayName := record.DisplayName()
	preferred := displayName
	if preferred == "" {
		preferred = record.BadgeNumber
	}

	attrs := []Attribute{
		{Name: AttributeEmail, Value: record.Email},
		{Name: AttributeEmailVerified, Value: "true"},
		{Name: AttributePreferredName, Value: preferred},
		{Name: AttributeOrgID, Value: orgID},
	}
	if displayName != "" {
		attrs = append(attrs, Attribute{Name: AttributeName, Value: displayName})
	}
	if record.FirstName != "" {
		attrs = append(attrs, Attribute{Name: AttributeGivenName, Value: record.FirstName})
	}
	if record.LastName != "" {
		attrs = append(attrs, Attribute{Name: AttributeFamilyName, Value: record.LastName})
	}
	if record.Rank != "" {
		attrs = append(attrs, Attribute{Name: AttributeRank, Value: record.Rank})
	}
	if record.Phone != "" {
		attrs = append(attrs, Attribute{Name: AttributePhone, Value: record.Phone})
	}
	return attrs
}
