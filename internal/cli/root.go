package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/yildizm/ClinicInfo/internal/config"
	"github.com/yildizm/ClinicInfo/internal/emoji"
	"github.com/yildizm/ClinicInfo/internal/logger"
	"github.com/yildizm/ClinicInfo/internal/navigator"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

var (
	cfgFile     string
	verbose     bool
	noColor     bool
	noEmoji     bool
	outputFmt   string
	rosterPath  string
	sheetName   string
	clinicOrder string

	// globalConfig is the effective configuration after files, environment
	// and flags have been applied
	globalConfig *config.Config
)

var errNoRoster = errors.New("no roster workbook configured (use --roster or set roster.path in the config file)")

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	var watch bool

	rootCmd := &cobra.Command{
		Use:   "clinicinfo",
		Short: "Clinic roster lookup tool",
		Long: `ClinicInfo loads a clinic roster from a spreadsheet and finds clinics
either by facility number or by drilling down Group → Region → Area → Clinic.

Without a subcommand it starts the interactive browser. The list and show
subcommands answer the same queries for scripts.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadGlobalConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(watch)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVarP(&rosterPath, "roster", "r", "", "roster workbook path")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", roster.DefaultSheet, "sheet holding the roster")
	rootCmd.PersistentFlags().StringVar(&clinicOrder, "order", "numeric", "clinic list order (numeric, lexical)")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the roster when the workbook changes")

	// Add subcommands
	rootCmd.AddCommand(newBrowseCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newGroupsCommand())
	rootCmd.AddCommand(newRegionsCommand())
	rootCmd.AddCommand(newAreasCommand())
	rootCmd.AddCommand(newClinicsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// setEmoji applies --no-emoji, defaulting to plain text on Windows
func setEmoji(cmd *cobra.Command) {
	if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
		noEmoji = true
	}
	emoji.SetEmojiDisabled(noEmoji)
}

// loadGlobalConfig layers flags over the loaded configuration
func loadGlobalConfig(cmd *cobra.Command, args []string) error {
	setEmoji(cmd)

	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if changed("roster") {
		cfg.Roster.Path = rosterPath
	}
	if changed("sheet") {
		cfg.Roster.Sheet = sheetName
	}
	if changed("order") {
		cfg.Roster.ClinicOrder = clinicOrder
	}
	if changed("output") {
		cfg.Output.DefaultFormat = outputFmt
	}
	if changed("verbose") {
		cfg.Output.Verbose = verbose
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	globalConfig = cfg
	return nil
}

// GetGlobalConfig returns the effective configuration, or the defaults
// before any command has run
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ClinicInfo %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return GetGlobalConfig().Output.Verbose
}

func getOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// useColor resolves the color mode; auto means stdout is a terminal and
// NO_COLOR is unset
func useColor() bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(component string) *logger.Logger {
	return logger.New(component, isVerbose)
}

func rosterLoadOptions(cfg *config.Config) []roster.LoadOption {
	return []roster.LoadOption{
		roster.WithSheet(cfg.Roster.Sheet),
		roster.WithClinicOrder(cfg.ClinicOrder()),
		roster.WithLogger(newLogger("roster")),
	}
}

// loadRoster reads the configured roster workbook
func loadRoster() (*roster.Roster, error) {
	cfg := GetGlobalConfig()
	if cfg.Roster.Path == "" {
		return nil, errNoRoster
	}
	return roster.Load(cfg.Roster.Path, rosterLoadOptions(cfg)...)
}

// newNavigator loads the roster and starts a navigator over it
func newNavigator() (*navigator.Navigator, error) {
	r, err := loadRoster()
	if err != nil {
		return nil, err
	}
	return navigator.New(r, navigator.WithLogger(newLogger("navigator"))), nil
}
