package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/camsima/f16model"
	"github.com/camsima/f16model/internal/telemetry"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Load the axis and coefficient catalog from --data-dir and report success",
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := sinkFromConfig()
			dataDir := v.GetString("data-dir")
			if dataDir == "" {
				return fmt.Errorf("--data-dir is required")
			}
			m, err := f16model.Install(dataDir, sink)
			if err != nil {
				return err
			}
			defer m.Uninstall()
			fmt.Fprintf(cmd.OutOrStdout(), "installed catalog from %s\n", dataDir)
			return nil
		},
	}
}

func sinkFromConfig() telemetry.Sink {
	switch v.GetString("log-format") {
	case "json":
		return telemetry.NewZerologSink(os.Stderr)
	case "console":
		return telemetry.NewConsoleSink(os.Stderr)
	default:
		return telemetry.Default()
	}
}
