package roster

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testHeader = []string{"Fac#", "Clinic Name", "GRP", "REG", "Area", "GVP Name", "RVP", "In-Center DO", "Clinic Manager", "Zip "}

var testRows = [][]string{
	{"10", "Ten", "East", "North", "Alpha", "Gina", "Rob", "Dan", "Cara", "10001"},
	{"2", "Two", " east ", "South", "Beta", "Gail", "Rita", "Don"},
	{"31", "Thirty One", "West", "North", "Gamma", "Walt", "Ron", "Dee", "Max"},
	{"", "No Number", "Central", "Middle", "Delta", "Cal", "Rae", "Dot"},
	{"abc", "Bad Number", "West", "North", "Gamma", "W2", "R2", "D2"},
	{"10", "Duplicate", "West", "North", "Gamma", "W3", "R3", "D3"},
	{"", "", "", ""},
}

func newTestRoster(t *testing.T, opts ...LoadOption) *Roster {
	t.Helper()
	r, err := New(testHeader, testRows, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func numbers(records []*Record) []int {
	out := make([]int, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.FacilityNumber())
	}
	return out
}

func keys(options []Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Key)
	}
	return out
}

func TestNewRetainsUnselectableRows(t *testing.T) {
	r := newTestRoster(t)

	if r.Len() != 6 {
		t.Errorf("Len() = %d, want 6 (blank row skipped, bad numbers retained)", r.Len())
	}
	if r.ClinicCount() != 3 {
		t.Errorf("ClinicCount() = %d, want 3", r.ClinicCount())
	}
	if got := r.Columns()[9]; got != "Zip" {
		t.Errorf("header not trimmed: got %q", got)
	}
}

func TestNewMissingColumns(t *testing.T) {
	_, err := New([]string{"Fac#", "Clinic Name", "GRP"}, nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	want := "missing required column: REG, Area"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestFind(t *testing.T) {
	r := newTestRoster(t)

	rec, ok := r.Find(10)
	if !ok {
		t.Fatal("Find(10) not found")
	}
	if rec.Name() != "Ten" {
		t.Errorf("duplicate number should keep first row, got %q", rec.Name())
	}
	if rec.Get("Zip") != "10001" {
		t.Errorf("Get(Zip) = %q", rec.Get("Zip"))
	}
	if rec.Row() != 2 {
		t.Errorf("Row() = %d, want 2", rec.Row())
	}

	if _, ok := r.Find(999); ok {
		t.Error("Find(999) should not be found")
	}
	if _, ok := r.Find(0); ok {
		t.Error("rows without a number must not be findable")
	}
}

func TestGroups(t *testing.T) {
	r := newTestRoster(t)

	want := []Option{
		{Level: LevelGroup, Key: "central", Label: "Central", Representative: "Cal"},
		{Level: LevelGroup, Key: "east", Label: "East", Representative: "Gina"},
		{Level: LevelGroup, Key: "west", Label: "West", Representative: "Walt"},
	}
	if diff := cmp.Diff(want, r.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegions(t *testing.T) {
	r := newTestRoster(t)

	tests := []struct {
		name  string
		group string
		want  []string
		reps  []string
	}{
		{name: "all groups", group: All, want: []string{"middle", "north", "south"}, reps: []string{"Rae", "Rob", "Rita"}},
		{name: "east", group: "east", want: []string{"north", "south"}, reps: []string{"Rob", "Rita"}},
		{name: "display casing", group: " West", want: []string{"north"}, reps: []string{"Ron"}},
		{name: "unknown group", group: "nowhere", want: []string{}, reps: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Regions(tt.group)
			if diff := cmp.Diff(tt.want, keys(got)); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
			reps := make([]string, 0, len(got))
			for _, o := range got {
				reps = append(reps, o.Representative)
			}
			if diff := cmp.Diff(tt.reps, reps); diff != "" {
				t.Errorf("representatives mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAreas(t *testing.T) {
	r := newTestRoster(t)

	tests := []struct {
		name          string
		group, region string
		want          []string
	}{
		{name: "unfiltered", want: []string{"alpha", "beta", "delta", "gamma"}},
		{name: "group only", group: "east", want: []string{"alpha", "beta"}},
		{name: "region only", region: "north", want: []string{"alpha", "gamma"}},
		{name: "group and region", group: "west", region: "north", want: []string{"gamma"}},
		{name: "no match", group: "east", region: "middle", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, keys(r.Areas(tt.group, tt.region))); diff != "" {
				t.Errorf("Areas() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	gamma := r.Areas("west", "north")[0]
	if gamma.Representative != "Dee" {
		t.Errorf("representative should come from the first matching row, got %q", gamma.Representative)
	}
}

func TestClinicsOrder(t *testing.T) {
	header := []string{"Fac#", "Clinic Name", "GRP", "REG", "Area"}
	rows := [][]string{
		{"10", "Ten", "East", "R", "A"},
		{"2", "Two", "East", "R", "A"},
	}

	numeric, err := New(header, rows)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 10}, numbers(numeric.Clinics(All, All, All))); diff != "" {
		t.Errorf("numeric order mismatch (-want +got):\n%s", diff)
	}

	lexical, err := New(header, rows, WithClinicOrder(OrderLexical))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{10, 2}, numbers(lexical.Clinics(All, All, All))); diff != "" {
		t.Errorf("lexical order mismatch (-want +got):\n%s", diff)
	}
}

func TestClinicsFilters(t *testing.T) {
	r := newTestRoster(t)

	tests := []struct {
		name                string
		group, region, area string
		want                []int
	}{
		{name: "all", want: []int{2, 10, 31}},
		{name: "group", group: "EAST", want: []int{2, 10}},
		{name: "region", region: "north", want: []int{10, 31}},
		{name: "area", area: "gamma", want: []int{31}},
		{name: "duplicate row excluded", group: "west", region: "north", area: "gamma", want: []int{31}},
		{name: "no match", group: "central", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := r.Clinics(tt.group, tt.region, tt.area)
			if diff := cmp.Diff(tt.want, numbers(first)); diff != "" {
				t.Errorf("Clinics() mismatch (-want +got):\n%s", diff)
			}
			for _, rec := range first {
				if tt.group != "" && rec.Key(LevelGroup) != Normalize(tt.group) {
					t.Errorf("clinic %d has group %q", rec.FacilityNumber(), rec.Key(LevelGroup))
				}
				if tt.region != "" && rec.Key(LevelRegion) != Normalize(tt.region) {
					t.Errorf("clinic %d has region %q", rec.FacilityNumber(), rec.Key(LevelRegion))
				}
				if tt.area != "" && rec.Key(LevelArea) != Normalize(tt.area) {
					t.Errorf("clinic %d has area %q", rec.FacilityNumber(), rec.Key(LevelArea))
				}
			}
			if diff := cmp.Diff(numbers(first), numbers(r.Clinics(tt.group, tt.region, tt.area))); diff != "" {
				t.Errorf("repeated call differs:\n%s", diff)
			}
		})
	}
}

func TestParseFacilityNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1234", 1234, true},
		{" 42 ", 42, true},
		{"1234.0", 1234, true},
		{"12.5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-7", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseFacilityNumber(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFacilityNumber(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{" -7 ", -7, true},
		{"1234.0", 1234, true},
		{"12.5", 0, false},
		{"1,042", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseNumber(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseClinicOrder(t *testing.T) {
	if o, err := ParseClinicOrder("Lexical"); err != nil || o != OrderLexical {
		t.Errorf("ParseClinicOrder(Lexical) = %v, %v", o, err)
	}
	if o, err := ParseClinicOrder(""); err != nil || o != OrderNumeric {
		t.Errorf("ParseClinicOrder(\"\") = %v, %v", o, err)
	}
	if _, err := ParseClinicOrder("random"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestLabels(t *testing.T) {
	r := newTestRoster(t)

	rec, _ := r.Find(2)
	if got, want := rec.Label(), "2 - Two (CM: )"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}

	opt := r.Groups()[1]
	if got, want := opt.Display(), "East (GVP: Gina)"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}
