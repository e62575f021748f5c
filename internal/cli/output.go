package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/ClinicInfo/internal/formatter"
)

// writeOutput formats with the configured output format and writes the
// result to the command's output
func writeOutput(cmd *cobra.Command, format func(formatter.Formatter) ([]byte, error)) error {
	f, err := formatter.New(getOutputFormat(), useColor())
	if err != nil {
		return err
	}

	data, err := format(f)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
