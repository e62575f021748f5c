package report

import (
	"strconv"
	"strings"

	"github.com/yildizm/ClinicInfo/internal/roster"
)

// Section titles of the detail sheet
const (
	SectionClinic     = "Clinic"
	SectionAdditional = "Additional Info"
)

// Labels referenced outside the layout tables
const (
	LabelFacility = "Facility #"
	LabelName     = "Clinic Name"
	LabelLocation = "City, State, Zip"
	LabelManager  = "Clinic Manager"
)

type fieldSpec struct {
	label string
	value func(*roster.Record) string
}

// column renders a field straight from a sheet column
func column(label, name string) fieldSpec {
	return fieldSpec{label: label, value: func(r *roster.Record) string { return r.Get(name) }}
}

// same renders a field whose label is the column name
func same(name string) fieldSpec {
	return column(name, name)
}

var clinicFields = []fieldSpec{
	{label: LabelFacility, value: func(r *roster.Record) string {
		if !r.Selectable() {
			return ""
		}
		return strconv.Itoa(r.FacilityNumber())
	}},
	column(LabelName, roster.ColumnName),
	column("Street", "Address"),
	{label: LabelLocation, value: location},
	column("Phone", "Clinic PH / FX"),
	column(LabelManager, roster.ColumnManager),
	column("Area", roster.ColumnArea),
	column("Area Manager", "Area Team Lead (ATL)"),
	column("DO", roster.ColumnDO),
	column("Region", roster.ColumnRegion),
	column("RVP", roster.ColumnRVP),
	column("Group", roster.ColumnGroup),
	column("Division", "DIV"),
	column("GVPO", roster.ColumnGVP),
}

var additionalFields = []fieldSpec{
	same("PAS Office Location"),
	same("GVP/GM Assistant / Phone"),
	same("RVP Admin Assist / Phone"),
	same("Modalities Offered"),
	same("Clinic Details"),
	same("Clip / Ph / Fx"),
	same("PAS Supervisor"),
	same("PAS Supervisor Direct #"),
	same("PAS Team Lead"),
	same("PAS PICS"),
	same("Medical Director"),
	same("Isolation?"),
	same("Escalation List (DO, RVP, HPSM, PAS TL, PAS Supervisor, etc)"),
	same("Clinical Quality Manager"),
	same("Educators"),
	same("Revenue Center"),
	same("FC Supervisor"),
	same("Financial Coordinators"),
	same("VP of Marketing Development"),
	same("Dir of Marketing Development"),
	same("Dir of HPS"),
	same("Dir. of Commercial Integrations"),
	same("HPSM"),
	same("TOPS Coordinator"),
	same("Social Worker"),
	same("In-Center DO Phone"),
	same("Home Therapy DO"),
	same("Home Therapy DO Phone"),
	same("GM Name"),
	same("GM Cell"),
	same("Commercial Extras"),
	same("CIT Phone"),
	same("HPSM Phone"),
	same("RFA Extras"),
	same("CVO Email for Blast"),
	same("HT Group"),
	same("Schedule Letter Extras"),
	same("Sr. Manager SW Svcs"),
	same("New Perm/NonFKC EIFs"),
	same("Traveler EIFs"),
	same("CVO Group"),
	same("OnBase Queue"),
	same("TCU"),
	same("Transport Program"),
	same("BC Case Manager"),
	same("TCU Days/Week"),
	same("KCA"),
	same("Dietitian"),
	same("Sr. Manager Clinical Quality"),
	same("Sr. Manager Nutrition Svcs"),
	same("Manager Nutrition Svcs"),
	same("Manager SW Svcs"),
	same("Sr. Manager Clinical Education"),
	same("Clinical Educator"),
	same("Clinic County"),
	same("eCC Instance"),
	same("CVO Special Note"),
	same("PAS Manager"),
	same("FAS Leadership"),
	same("Senior HPSM"),
}

// location joins City, State and Zip as "City, State Zip", dropping empty
// parts along with their separators
func location(r *roster.Record) string {
	city := r.Get("City")
	tail := strings.TrimSpace(r.Get("State") + " " + r.Get("Zip"))
	switch {
	case city == "":
		return tail
	case tail == "":
		return city
	default:
		return city + ", " + tail
	}
}
