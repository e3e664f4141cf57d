package roster

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dutywire/rostersync/pkg/errors"
)

// Load reads and validates a roster CSV from disk. Exported rosters are
// frequently UTF-8 with a BOM (Excel's "CSV UTF-8"), so the reader
// decodes through a BOM-stripping transform before CSV parsing.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Read(transform.NewReader(file, unicode.UTF8BOM.NewDecoder()), path)
}

// Read parses and validates roster rows from r. The name is used only
// in error messages. Any invalid row rejects the whole set: a roster
// that cannot be fully trusted is not partially imported.
func Read(r io.Reader, name string) ([]Record, error) {
	reader := csv.NewReader(r)
	// Rows with trailing blank cells are common in hand-edited rosters;
	// map by header position and leave missing cells empty.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewParseError("csv", name, "missing header row", nil)
		}
		return nil, errors.WrapParse("csv", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, errors.NewParseError("csv", name,
			"missing required columns: "+strings.Join(missing, ", "), nil)
	}

	var records []Record
	rowNum := 1 // header row
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(fields) {
				row[column] = fields[i]
			}
		}

		record, err := ValidateRow(row, rowNum)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// missingColumns returns the required columns absent from the header.
func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}

	var missing []string
	for _, column := range RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	return missing
}
