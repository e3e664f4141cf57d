package roster

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dutywire/rostersync/pkg/errors"
)

const sampleCSV = `BadgeOrComputerNumber,Email,GroupSelection,FirstName,LastName,Rank,PhoneNumber,Assignment
1024,a@x.org,Non-Supervisor,Ada,Vance,Officer,805-555-0100,Patrol
2048,b@x.org,supervisor,,,Sergeant,,
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleCSV), "roster.csv")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].BadgeNumber != "1024" || records[0].Assignment != "Patrol" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Group != GroupSupervisor {
		t.Errorf("expected Supervisor group, got %q", records[1].Group)
	}
	if records[1].Assignment != "" {
		t.Errorf("blank assignment should be absent, got %q", records[1].Assignment)
	}
}

func TestReadMissingRequiredColumns(t *testing.T) {
	csv := "Email,FirstName\na@x.org,Ada\n"
	_, err := Read(strings.NewReader(csv), "roster.csv")
	if err == nil {
		t.Fatal("expected error for missing required columns")
	}
	for _, column := range []string{ColumnBadge, ColumnGroup} {
		if !strings.Contains(err.Error(), column) {
			t.Errorf("error should name missing column %s: %v", column, err)
		}
	}
}

func TestReadRowNumberingStartsAtTwo(t *testing.T) {
	csv := "BadgeOrComputerNumber,Email,GroupSelection\n1024,a@x.org,bogus\n"
	_, err := Read(strings.NewReader(csv), "roster.csv")
	if err == nil {
		t.Fatal("expected validation error")
	}

	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("first data row should be row 2: %v", err)
	}
}

func TestReadAbortsOnFirstInvalidRow(t *testing.T) {
	csv := strings.Join([]string{
		"BadgeOrComputerNumber,Email,GroupSelection",
		"1024,a@x.org,Admin",
		",b@x.org,Admin",
		"4096,c@x.org,Admin",
	}, "\n")

	records, err := Read(strings.NewReader(csv), "roster.csv")
	if err == nil {
		t.Fatal("expected validation error for empty badge")
	}
	if records != nil {
		t.Error("a rejected roster must not return partial records")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error should name row 3: %v", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""), "roster.csv")
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestReadShortRow(t *testing.T) {
	csv := "BadgeOrComputerNumber,Email,GroupSelection,Assignment\n1024,a@x.org,Admin\n"
	records, err := Read(strings.NewReader(csv), "roster.csv")
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if records[0].Assignment != "" {
		t.Errorf("missing trailing cell should be absent, got %q", records[0].Assignment)
	}
}

func TestLoadStripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleCSV)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp roster: %v", err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].BadgeNumber != "1024" {
		t.Errorf("BOM should not corrupt the first header/record: %+v", records[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *errors.IOError
	if !stderrors.As(err, &ioErr) {
		t.Errorf("expected IOError, got %T", err)
	}
}
