// Package roster loads and validates officer roster CSVs into canonical
// records for the reconciliation engine. Validation is wholesale: a
// single malformed row rejects the entire input set before any external
// system is touched.
package roster

import "sort"

// Group is a directory group an officer record is assigned to.
type Group string

// Canonical directory groups. Exactly one applies per record.
const (
	GroupNonSupervisor Group = "Non-Supervisor"
	GroupSupervisor    Group = "Supervisor"
	GroupAdmin         Group = "Admin"
)

// groupLookup resolves lowercased, trimmed group selections to their
// canonical group. Unknown input is a validation error, never a default.
var groupLookup = map[string]Group{
	"non-supervisor": GroupNonSupervisor,
	"nonsupervisor":  GroupNonSupervisor,
	"supervisor":     GroupSupervisor,
	"admin":          GroupAdmin,
}

// ResolveGroup resolves a raw group selection case-insensitively.
// The second return value reports whether the selection is known.
func ResolveGroup(raw string) (Group, bool) {
	group, ok := groupLookup[lower(raw)]
	return group, ok
}

// AllowedGroups returns the canonical group names, sorted, for use in
// validation error messages.
func AllowedGroups() []string {
	seen := make(map[Group]bool, len(groupLookup))
	names := make([]string, 0, len(groupLookup))
	for _, group := range groupLookup {
		if !seen[group] {
			seen[group] = true
			names = append(names, string(group))
		}
	}
	sort.Strings(names)
	return names
}

// Roster column names. The badge, email, and group columns are required;
// the rest are optional.
const (
	ColumnBadge     = "BadgeOrComputerNumber"
	ColumnEmail     = "Email"
	ColumnGroup     = "GroupSelection"
	ColumnFirstName = "FirstName"
	ColumnLastName  = "LastName"
	ColumnRank      = "Rank"
	ColumnPhone     = "PhoneNumber"
	ColumnTitle     = "Assignment"
)

// RequiredColumns are the columns every roster CSV must carry.
var RequiredColumns = []string{ColumnBadge, ColumnEmail, ColumnGroup}

// Record is the canonical, validated representation of one roster row.
// BadgeNumber is the identity key; Email doubles as the directory
// username. Optional fields use the empty string to mean absent.
type Record struct {
	BadgeNumber string
	Email       string
	Group       Group
	FirstName   string
	LastName    string
	Rank        string
	Phone       string
	Assignment  string
}

// DisplayName derives the preferred display name: first and last name
// joined when both are present, else whichever is present, else empty.
func (r Record) DisplayName() string {
	switch {
	case r.FirstName != "" && r.LastName != "":
		return r.FirstName + " " + r.LastName
	case r.FirstName != "":
		return r.FirstName
	default:
		return r.LastName
	}
}
