package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/ClinicInfo/internal/formatter"
	"github.com/yildizm/ClinicInfo/internal/navigator"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// filters holds the drill-down flags shared by the list commands
type filters struct {
	group  string
	region string
	area   string
}

func newGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List groups",
		Long:  "List the distinct groups of the roster with their GVP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, filters{}, "Groups", (*navigator.Navigator).Groups)
		},
	}
}

func newRegionsCommand() *cobra.Command {
	var f filters

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions",
		Long:  "List the distinct regions of the roster with their RVP, optionally within one group.",
		Example: `  clinicinfo regions --group east`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, f, "Regions", (*navigator.Navigator).Regions)
		},
	}

	cmd.Flags().StringVarP(&f.group, "group", "g", "", "only regions of this group")

	return cmd
}

func newAreasCommand() *cobra.Command {
	var f filters

	cmd := &cobra.Command{
		Use:   "areas",
		Short: "List areas",
		Long:  "List the distinct areas of the roster with their DO, optionally within a group and region.",
		Example: `  clinicinfo areas --group east --region coastal`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, f, "Areas", (*navigator.Navigator).Areas)
		},
	}

	cmd.Flags().StringVarP(&f.group, "group", "g", "", "only areas of this group")
	cmd.Flags().StringVar(&f.region, "region", "", "only areas of this region")

	return cmd
}

func newClinicsCommand() *cobra.Command {
	var f filters

	cmd := &cobra.Command{
		Use:   "clinics",
		Short: "List clinics",
		Long: `List clinics, optionally filtered by group, region and area.

Clinics are sorted by the configured clinic order. Rows without a valid
facility number are not listed.`,
		Example: `  # Every clinic as CSV
  clinicinfo clinics -o csv

  # Clinics of one area
  clinicinfo clinics --group east --region coastal --area harbor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := filteredNavigator(f)
			if err != nil {
				return err
			}
			return writeOutput(cmd, func(fm formatter.Formatter) ([]byte, error) {
				return fm.FormatClinics(nav.Clinics())
			})
		},
	}

	cmd.Flags().StringVarP(&f.group, "group", "g", "", "only clinics of this group")
	cmd.Flags().StringVar(&f.region, "region", "", "only clinics of this region")
	cmd.Flags().StringVar(&f.area, "area", "", "only clinics of this area")

	return cmd
}

func runOptions(cmd *cobra.Command, f filters, title string, list func(*navigator.Navigator) []roster.Option) error {
	nav, err := filteredNavigator(f)
	if err != nil {
		return err
	}
	return writeOutput(cmd, func(fm formatter.Formatter) ([]byte, error) {
		return fm.FormatOptions(title, list(nav))
	})
}

// filteredNavigator drills down the way the browser does. A filter value
// the current level does not offer is an error.
func filteredNavigator(f filters) (*navigator.Navigator, error) {
	nav, err := newNavigator()
	if err != nil {
		return nil, err
	}

	if err := choose(roster.LevelGroup, f.group, nav.Groups(), nav.SelectGroup); err != nil {
		return nil, err
	}
	if err := choose(roster.LevelRegion, f.region, nav.Regions(), nav.SelectRegion); err != nil {
		return nil, err
	}
	if err := choose(roster.LevelArea, f.area, nav.Areas(), nav.SelectArea); err != nil {
		return nil, err
	}
	return nav, nil
}

func choose(level roster.Level, value string, offered []roster.Option, selectKey func(string)) error {
	key := roster.Normalize(value)
	if key == roster.All {
		return nil
	}
	for _, o := range offered {
		if o.Key == key {
			selectKey(key)
			return nil
		}
	}
	return fmt.Errorf("unknown %s: %s", level, value)
}
