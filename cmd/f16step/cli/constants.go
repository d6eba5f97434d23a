package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/camsima/f16model"
)

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the fixed plant constants and control limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Plant   f16model.PlantConstants `json:"plant"`
				Control f16model.ControlLimit   `json:"control_limit"`
			}{f16model.LoadPlantConstants(), f16model.LoadControlLimits()})
		},
	}
}
