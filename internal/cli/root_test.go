package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"github.com/yildizm/ClinicInfo/internal/formatter"
	"github.com/yildizm/ClinicInfo/internal/navigator"
	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

var testHeader = []string{
	"Fac#", "Clinic Name", "GRP", "REG", "Area",
	"GVP Name", "RVP", "In-Center DO", "Clinic Manager",
	"City", "State", "Zip ",
}

var testRows = [][]string{
	{"10", "Ten", "East", "Coastal", "Harbor", "Gina", "Rob", "Dan", "Cara", "Springfield", "IL", "62701"},
	{"2", "Two", "East", "Inland", "Valley", "Gina", "Rita", "Don", "Lee", "", "", ""},
	{"44", "Forty Four", "West", "Desert", "Mesa", "Walt", "Ray", "Dot", "Kim", "Tucson", "AZ", ""},
}

// writeRoster saves the test roster into a workbook under a temp dir
func writeRoster(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("failed to close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", roster.DefaultSheet); err != nil {
		t.Fatalf("SetSheetName() error = %v", err)
	}
	for i, row := range append([][]string{testHeader}, testRows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName() error = %v", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(roster.DefaultSheet, cell, &values); err != nil {
			t.Fatalf("SetSheetRow() error = %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "clinics.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	return path
}

// execute runs the root command against an empty config file so that
// config files on the test machine do not leak in
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("version: \"1.0\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCommand("1.2.3", "abc123", "2026-01-02")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg, "--no-emoji", "--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func clinicNumbers(t *testing.T, out string) []int {
	t.Helper()
	var list formatter.ClinicListOutput
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	var numbers []int
	for _, c := range list.Clinics {
		numbers = append(numbers, c.FacilityNumber)
	}
	return numbers
}

func TestShowJSON(t *testing.T) {
	path := writeRoster(t)

	out, err := execute(t, "--roster", path, "show", "10", "-o", "json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}

	var doc report.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if doc.FacilityNumber != 10 || doc.ClinicName != "Ten" {
		t.Errorf("document = %d %q, want 10 Ten", doc.FacilityNumber, doc.ClinicName)
	}
	if got, _ := doc.Value(report.LabelLocation); got != "Springfield, IL 62701" {
		t.Errorf("location = %q", got)
	}
	if got, _ := doc.Value(report.LabelManager); got != "Cara" {
		t.Errorf("manager = %q", got)
	}
}

func TestShowText(t *testing.T) {
	path := writeRoster(t)

	out, err := execute(t, "--roster", path, "show", "44")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"44 - Forty Four", report.SectionClinic, report.SectionAdditional, "Tucson, AZ"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowErrors(t *testing.T) {
	path := writeRoster(t)

	tests := []struct {
		name  string
		args  []string
		check func(error) bool
		want  string
	}{
		{
			name:  "unknown number",
			args:  []string{"--roster", path, "show", "999"},
			check: navigator.IsNotFound,
			want:  "clinic 999 not found",
		},
		{
			name:  "zero",
			args:  []string{"--roster", path, "show", "0"},
			check: navigator.IsNotFound,
			want:  "clinic 0 not found",
		},
		{
			name:  "not a number",
			args:  []string{"--roster", path, "show", "abc"},
			check: func(err error) bool { return errors.Is(err, navigator.ErrInvalidInput) },
		},
		{
			name:  "no roster",
			args:  []string{"show", "10"},
			check: func(err error) bool { return errors.Is(err, errNoRoster) },
		},
		{
			name: "missing workbook",
			args: []string{"--roster", filepath.Join(t.TempDir(), "missing.xlsx"), "show", "10"},
			check: func(err error) bool {
				var le *roster.LoadError
				return errors.As(err, &le)
			},
		},
		{
			name:  "missing argument",
			args:  []string{"--roster", path, "show"},
			check: func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error type: %v", err)
			}
			if tt.want != "" && err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestClinicsOrder(t *testing.T) {
	path := writeRoster(t)

	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"numeric by default", nil, []int{2, 10, 44}},
		{"lexical", []string{"--order", "lexical"}, []int{10, 2, 44}},
		{"group filter", []string{"--group", "EAST"}, []int{2, 10}},
		{"area filter", []string{"--group", "east", "--region", "coastal", "--area", "harbor"}, []int{10}},
		{"region without group", []string{"--region", "desert"}, []int{44}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--roster", path, "clinics", "-o", "json"}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("clinics error = %v", err)
			}
			if diff := cmp.Diff(tt.want, clinicNumbers(t, out)); diff != "" {
				t.Errorf("clinics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClinicsCSV(t *testing.T) {
	path := writeRoster(t)

	out, err := execute(t, "--roster", path, "clinics", "-o", "csv", "--group", "west")
	if err != nil {
		t.Fatalf("clinics error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	want := [][]string{
		{"Fac#", "Clinic Name", "Clinic Manager", "GRP", "REG", "Area"},
		{"44", "Forty Four", "Kim", "West", "Desert", "Mesa"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionLists(t *testing.T) {
	path := writeRoster(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"groups", []string{"groups"}, []string{"east", "west"}},
		{"regions", []string{"regions"}, []string{"coastal", "desert", "inland"}},
		{"regions of group", []string{"regions", "--group", "east"}, []string{"coastal", "inland"}},
		{"areas of region", []string{"areas", "--group", "east", "--region", "inland"}, []string{"valley"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--roster", path, "-o", "json"}, tt.args...)
			out, err := execute(t, args...)
			if err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}

			var list formatter.OptionListOutput
			if err := json.Unmarshal([]byte(out), &list); err != nil {
				t.Fatalf("invalid JSON output: %v\n%s", err, out)
			}
			var keys []string
			for _, o := range list.Options {
				keys = append(keys, o.Key)
			}
			if diff := cmp.Diff(tt.want, keys); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupsText(t *testing.T) {
	path := writeRoster(t)

	out, err := execute(t, "--roster", path, "groups")
	if err != nil {
		t.Fatalf("groups error = %v", err)
	}
	for _, want := range []string{"Groups (2)", "East (GVP: Gina)", "West (GVP: Walt)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownFilter(t *testing.T) {
	path := writeRoster(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"group", []string{"clinics", "--group", "north"}, "unknown group: north"},
		{"region outside group", []string{"areas", "--group", "west", "--region", "coastal"}, "unknown region: coastal"},
		{"area", []string{"clinics", "--area", "nowhere"}, "unknown area: nowhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"--roster", path}, tt.args...)...)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestInvalidFlags(t *testing.T) {
	path := writeRoster(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"output format", []string{"-o", "xml", "groups"}, "invalid output format: xml"},
		{"clinic order", []string{"--order", "random", "groups"}, "invalid clinic order: random"},
		{"roster extension", []string{"--roster", "clinics.csv", "groups"}, "invalid roster path"},
		{"empty sheet", []string{"--sheet", " ", "groups"}, "roster sheet must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--roster", path}, tt.args...)
			_, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRosterFromConfigFile(t *testing.T) {
	path := writeRoster(t)
	cfg := filepath.Join(t.TempDir(), "clinicinfo.yaml")
	content := "roster:\n  path: " + path + "\n  clinic_order: lexical\noutput:\n  default_format: json\n"
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// the last --config wins over the one execute adds
	out, err := execute(t, "--config", cfg, "clinics")
	if err != nil {
		t.Fatalf("clinics error = %v", err)
	}
	if diff := cmp.Diff([]int{10, 2, 44}, clinicNumbers(t, out)); diff != "" {
		t.Errorf("clinics mismatch (-want +got):\n%s", diff)
	}
	if got := GetGlobalConfig().Roster.Path; got != path {
		t.Errorf("global roster path = %q, want %q", got, path)
	}
}

func TestBrowseWithoutRoster(t *testing.T) {
	for _, args := range [][]string{nil, {"browse"}} {
		if _, err := execute(t, args...); !errors.Is(err, errNoRoster) {
			t.Errorf("%v: error = %v, want errNoRoster", args, err)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "ClinicInfo 1.2.3 (abc123) built on 2026-01-02") {
		t.Errorf("unexpected version output:\n%s", out)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("missing runtime info:\n%s", out)
	}
}

func TestUseColor(t *testing.T) {
	defer func() { globalConfig = nil }()

	tests := []struct {
		mode    string
		noColor string
		want    bool
	}{
		{"always", "1", true},
		{"never", "", false},
		{"auto", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			cfg := GetGlobalConfig()
			cfg.Output.ColorMode = tt.mode
			globalConfig = cfg

			if got := useColor(); got != tt.want {
				t.Errorf("useColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
