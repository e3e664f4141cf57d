package roster

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dutywire/rostersync/pkg/errors"
)

// lower trims and case-folds a raw value for lookup-table matching.
func lower(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ValidateRow normalizes and validates one raw roster row into a
// canonical Record. The row is a column-name to value mapping; rowNum
// is the CSV row number used in error messages (data rows start at 2,
// row 1 being the header). ValidateRow has no side effects and is
// deterministic: validating the same row twice yields equal Records.
func ValidateRow(row map[string]string, rowNum int) (Record, error) {
	badge := strings.TrimSpace(row[ColumnBadge])
	email := strings.TrimSpace(row[ColumnEmail])
	groupRaw := strings.TrimSpace(row[ColumnGroup])

	if badge == "" {
		return Record{}, errors.NewMissingFieldError(rowNum, ColumnBadge)
	}
	if email == "" {
		return Record{}, errors.NewMissingFieldError(rowNum, ColumnEmail)
	}
	group, ok := ResolveGroup(groupRaw)
	if !ok {
		return Record{}, &errors.GroupError{
			Row:     rowNum,
			Value:   groupRaw,
			Allowed: AllowedGroups(),
		}
	}

	return Record{
		BadgeNumber: badge,
		Email:       email,
		Group:       group,
		FirstName:   strings.TrimSpace(row[ColumnFirstName]),
		LastName:    strings.TrimSpace(row[ColumnLastName]),
		Rank:        strings.TrimSpace(row[ColumnRank]),
		Phone:       strings.TrimSpace(row[ColumnPhone]),
		Assignment:  strings.TrimSpace(row[ColumnTitle]),
	}, nil
}
