package reconcile

import (
	"context"
	"encoding/json"

	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/roster"
)

// Assignment drives the registry toward the assignment entry derived
// from one canonical record, using update-then-create fallback
// semantics. There is no atomic upsert in the registry: two concurrent
// runs for the same record can both observe "not found" and both
// attempt create. Runs for the same org are expected to be serialized
// by the operator.
type Assignment struct {
	registry RegistryGateway
}

// NewAssignment creates an assignment reconciler.
func NewAssignment(registry RegistryGateway) *Assignment {
	return &Assignment{registry: registry}
}

// EnsureAssignment ensures a registry entry exists for the record.
// An officer with no assignment title does not get an entry; the call
// returns immediately without touching the registry.
func (a *Assignment) EnsureAssignment(ctx context.Context, record roster.Record, orgID, userID string) error {
	if record.Assignment == "" {
		return nil
	}

	entry := Entry{
		ID:          orgID + "-" + record.BadgeNumber,
		OrgID:       orgID,
		BadgeNumber: record.BadgeNumber,
		Title:       record.Assignment,
		Detail:      optional(record.Rank),
		Location:    nil,
		Notes:       profileNotes(record, userID),
	}

	err := a.registry.UpdateEntry(ctx, entry)
	if err == nil {
		return nil
	}
	// Only the not-found signal means "fall back to create"; any other
	// update failure propagates.
	if !errors.IsNotFound(err) {
		return errors.NewAssignmentError(record.BadgeNumber, err)
	}
	if err := a.registry.CreateEntry(ctx, entry); err != nil {
		return errors.NewAssignmentError(record.BadgeNumber, err)
	}
	return nil
}

// profileNotes serializes the opaque officer profile carried in the
// entry's notes field. Returns nil when the profile would be empty.
func profileNotes(record roster.Record, userID string) *string {
	profile := make(map[string]string, 4)
	if name := record.DisplayName(); name != "" {
		profile["fullName"] = name
	}
	if record.Rank != "" {
		profile["rank"] = record.Rank
	}
	if record.Phone != "" {
		profile["departmentPhone"] = record.Phone
	}
	if userID != "" {
		profile["userId"] = userID
	}
	if len(profile) == 0 {
		return nil
	}

	// Marshaling a map[string]string cannot fail, and key order is
	// deterministic.
	data, err := json.Marshal(profile)
	if err != nil {
		return nil
	}
	notes := string(data)
	return &notes
}

// optional returns a pointer to s, or nil when s is absent.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
