package reconcile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/roster"
)

func TestEnsureAssignmentSkipsWithoutTitle(t *testing.T) {
	registry := newFakeRegistry()
	assignment := NewAssignment(registry)

	record := testRecord()
	record.Assignment = ""

	err := assignment.EnsureAssignment(context.Background(), record, "SBPD", "uid-1")
	require.NoError(t, err)
	assert.Empty(t, registry.calls, "no assignment title means zero gateway calls")
}

func TestEnsureAssignmentCreateFallback(t *testing.T) {
	registry := newFakeRegistry()
	assignment := NewAssignment(registry)

	err := assignment.EnsureAssignment(context.Background(), testRecord(), "SBPD", "uid-1")
	require.NoError(t, err)

	// Update first, then create when the entry does not exist.
	assert.Equal(t, []string{"update:SBPD-1024", "create:SBPD-1024"}, registry.calls)

	entry := registry.entries["SBPD-1024"]
	assert.Equal(t, "SBPD", entry.OrgID)
	assert.Equal(t, "1024", entry.BadgeNumber)
	assert.Equal(t, "Patrol", entry.Title)
	require.NotNil(t, entry.Detail)
	assert.Equal(t, "Officer", *entry.Detail)
	assert.Nil(t, entry.Location, "location is reserved and never populated")
}

func TestEnsureAssignmentUpdatesExisting(t *testing.T) {
	registry := newFakeRegistry()
	registry.entries["SBPD-1024"] = Entry{ID: "SBPD-1024", Title: "Desk"}
	assignment := NewAssignment(registry)

	err := assignment.EnsureAssignment(context.Background(), testRecord(), "SBPD", "uid-1")
	require.NoError(t, err)

	// Update succeeded, so create must not run.
	assert.Equal(t, []string{"update:SBPD-1024"}, registry.calls)
	assert.Equal(t, "Patrol", registry.entries["SBPD-1024"].Title)
}

func TestEnsureAssignmentNonNotFoundUpdateFailure(t *testing.T) {
	registry := newFakeRegistry()
	registry.updateErr = errors.NewAPIError("registry", 500, "mutation rejected")
	assignment := NewAssignment(registry)

	err := assignment.EnsureAssignment(context.Background(), testRecord(), "SBPD", "uid-1")
	require.Error(t, err)

	// A non-not-found failure propagates and must not trigger create.
	assert.Equal(t, []string{"update:SBPD-1024"}, registry.calls)

	var assignmentErr *errors.AssignmentError
	require.ErrorAs(t, err, &assignmentErr)
	assert.Equal(t, "1024", assignmentErr.BadgeNumber)
}

func TestEnsureAssignmentCreateFailurePropagates(t *testing.T) {
	registry := newFakeRegistry()
	registry.createErr = errors.NewAPIError("registry", 500, "write refused")
	assignment := NewAssignment(registry)

	err := assignment.EnsureAssignment(context.Background(), testRecord(), "SBPD", "uid-1")
	var assignmentErr *errors.AssignmentError
	require.ErrorAs(t, err, &assignmentErr)
}

func TestProfileNotes(t *testing.T) {
	notes := profileNotes(testRecord(), "uid-1")
	require.NotNil(t, notes)

	var profile map[string]string
	require.NoError(t, json.Unmarshal([]byte(*notes), &profile))
	assert.Equal(t, map[string]string{
		"fullName":        "Ada Vance",
		"rank":            "Officer",
		"departmentPhone": "805-555-0100",
		"userId":          "uid-1",
	}, profile)
}

func TestProfileNotesSparseRecord(t *testing.T) {
	record := roster.Record{BadgeNumber: "1024", Email: "a@x.org", Group: roster.GroupAdmin}

	notes := profileNotes(record, "uid-1")
	require.NotNil(t, notes)

	var profile map[string]string
	require.NoError(t, json.Unmarshal([]byte(*notes), &profile))
	assert.Equal(t, map[string]string{"userId": "uid-1"}, profile)
}

func TestProfileNotesEmptyProfile(t *testing.T) {
	record := roster.Record{BadgeNumber: "1024", Email: "a@x.org", Group: roster.GroupAdmin}
	// Degenerate case: nothing at all to carry yields absent notes,
	// not an empty serialization.
	assert.Nil(t, profileNotes(record, ""))
}
