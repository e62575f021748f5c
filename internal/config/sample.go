package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# ClinicInfo configuration
#
# Search order (later entries override earlier ones):
#   /etc/clinicinfo/config.yaml
#   ~/.config/clinicinfo/config.yaml
#   ./.clinicinfo.yaml
# CLINICINFO_* environment variables and command line flags override files.

version: "1.0"

roster:
  # Workbook holding the clinic roster (.xlsx, .xlsm, .xltx or .xltm)
  path: ./clinics.xlsm
  # Sheet with the roster table; the first row is the header
  sheet: Fac List
  # Clinic list order: numeric (2 before 10) or lexical (10 before 2)
  clinic_order: numeric
  # Reload the roster when the workbook changes while browsing
  watch: false

output:
  # Format for non-interactive commands: text, json, markdown or csv
  default_format: text
  # auto follows the terminal and NO_COLOR; always or never force it
  color_mode: auto
  # Debug logging (written to clinicinfo.log in the temp dir while browsing)
  verbose: false

ui:
  # default, high-contrast or minimal
  theme: default
  # Show GVP, RVP and DO names next to group, region and area entries
  show_representatives: true
`
}

// MinimalSampleConfig returns a configuration with only the essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"

roster:
  path: ./clinics.xlsm
  sheet: Fac List
`
}
