package cli

import (
	"github.com/spf13/cobra"
	"github.com/yildizm/ClinicInfo/internal/formatter"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <facility#>",
		Short: "Show the detail sheet of a clinic",
		Long: `Look a clinic up by facility number and print its detail sheet.

The lookup ignores group, region and area filters. An unknown number is an
error.`,
		Example: `  # Text detail sheet
  clinicinfo show 1042 --roster clinics.xlsm

  # JSON for scripts
  clinicinfo show 1042 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := newNavigator()
			if err != nil {
				return err
			}
			if err := nav.LookupText(args[0]); err != nil {
				return err
			}
			return writeOutput(cmd, func(f formatter.Formatter) ([]byte, error) {
				return f.FormatDocument(nav.Detail())
			})
		},
	}
}
