package formatter

import (
	"encoding/json"

	"github.com/yildizm/ClinicInfo/internal/report"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// OptionListOutput is the JSON shape of a Group, Region or Area listing
type OptionListOutput struct {
	Title   string          `json:"title"`
	Count   int             `json:"count"`
	Options []*OptionOutput `json:"options"`
}

// OptionOutput is one listed option
type OptionOutput struct {
	Level          string `json:"level"`
	Role           string `json:"role"`
	Key            string `json:"key"`
	Label          string `json:"label"`
	Representative string `json:"representative"`
}

// ClinicListOutput is the JSON shape of a clinic listing
type ClinicListOutput struct {
	Count   int             `json:"count"`
	Clinics []*ClinicOutput `json:"clinics"`
}

// ClinicOutput is one listed clinic
type ClinicOutput struct {
	FacilityNumber int    `json:"facility_number"`
	Name           string `json:"name"`
	Manager        string `json:"manager"`
	Group          string `json:"group"`
	Region         string `json:"region"`
	Area           string `json:"area"`
}

func (f *jsonFormatter) FormatDocument(doc *report.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (f *jsonFormatter) FormatOptions(title string, options []roster.Option) ([]byte, error) {
	output := &OptionListOutput{
		Title:   title,
		Count:   len(options),
		Options: make([]*OptionOutput, 0, len(options)),
	}
	for _, o := range options {
		output.Options = append(output.Options, &OptionOutput{
			Level:          o.Level.String(),
			Role:           o.Level.Role(),
			Key:            o.Key,
			Label:          o.Label,
			Representative: o.Representative,
		})
	}
	return json.MarshalIndent(output, "", "  ")
}

func (f *jsonFormatter) FormatClinics(clinics []*roster.Record) ([]byte, error) {
	output := &ClinicListOutput{
		Count:   len(clinics),
		Clinics: make([]*ClinicOutput, 0, len(clinics)),
	}
	for _, rec := range clinics {
		output.Clinics = append(output.Clinics, &ClinicOutput{
			FacilityNumber: rec.FacilityNumber(),
			Name:           rec.Name(),
			Manager:        rec.Manager(),
			Group:          rec.Get(roster.ColumnGroup),
			Region:         rec.Get(roster.ColumnRegion),
			Area:           rec.Get(roster.ColumnArea),
		})
	}
	return json.MarshalIndent(output, "", "  ")
}
