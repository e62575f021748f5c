// Package report turns a roster record into the fixed-layout clinic detail
// sheet. Rendering is pure: the same record always yields the same document.
package report

import (
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// Field is one labeled line of the detail sheet
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled, ordered run of fields
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Document is the detail sheet for one clinic
type Document struct {
	FacilityNumber int       `json:"facility_number"`
	ClinicName     string    `json:"clinic_name"`
	Sections       []Section `json:"sections"`
}

// Render builds the detail sheet for rec. Absent values render as "".
func Render(rec *roster.Record) *Document {
	return &Document{
		FacilityNumber: rec.FacilityNumber(),
		ClinicName:     rec.Name(),
		Sections: []Section{
			renderSection(SectionClinic, clinicFields, rec),
			renderSection(SectionAdditional, additionalFields, rec),
		},
	}
}

func renderSection(title string, specs []fieldSpec, rec *roster.Record) Section {
	fields := make([]Field, 0, len(specs))
	for _, spec := range specs {
		fields = append(fields, Field{Label: spec.label, Value: spec.value(rec)})
	}
	return Section{Title: title, Fields: fields}
}

// Fields returns every field of the document in layout order
func (d *Document) Fields() []Field {
	var out []Field
	for _, s := range d.Sections {
		out = append(out, s.Fields...)
	}
	return out
}

// Value returns the value of the first field labeled label
func (d *Document) Value(label string) (string, bool) {
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if f.Label == label {
				return f.Value, true
			}
		}
	}
	return "", false
}

// Labels returns the layout's field labels in order
func Labels() []string {
	out := make([]string, 0, len(clinicFields)+len(additionalFields))
	for _, spec := range clinicFields {
		out = append(out, spec.label)
	}
	for _, spec := range additionalFields {
		out = append(out, spec.label)
	}
	return out
}
