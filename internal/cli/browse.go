package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/ClinicInfo/internal/logger"
	"github.com/yildizm/ClinicInfo/internal/ui"
)

// logFileName is created under the OS temp dir while browsing with --verbose
const logFileName = "clinicinfo.log"

func newBrowseCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the roster interactively",
		Long: `Start the interactive roster browser.

Type a facility number and press Enter to look a clinic up, or drill down
through the Groups, Regions, Areas and Clinics lists. Press ? for the key
bindings.`,
		Example: `  # Browse a workbook
  clinicinfo browse --roster clinics.xlsm

  # Reload when the workbook is saved
  clinicinfo browse --roster clinics.xlsm --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the roster when the workbook changes")

	return cmd
}

func runBrowse(watch bool) error {
	cfg := GetGlobalConfig()
	if cfg.Roster.Path == "" {
		return errNoRoster
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	if !ui.SetThemeByName(cfg.UI.Theme) {
		newLogger("cli").Warn("unknown theme %q, using default", cfg.UI.Theme)
	}

	return ui.Run(ui.Options{
		Path:                cfg.Roster.Path,
		LoadOptions:         rosterLoadOptions(cfg),
		Watch:               watch || cfg.Roster.Watch,
		ShowRepresentatives: cfg.UI.ShowRepresentatives,
		Color:               useColor(),
		Logger:              newLogger("clinicinfo"),
	})
}

// redirectLogs keeps log lines off the alternate screen. Verbose runs log
// to a file in the temp dir; otherwise logs are discarded.
func redirectLogs() (func(), error) {
	previous := logger.Output()
	if !isVerbose() {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(previous) }, nil
	}

	path := filepath.Join(os.TempDir(), logFileName)
	// #nosec G304 - fixed file name under the temp dir
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(previous)
		_ = f.Close()
	}, nil
}
