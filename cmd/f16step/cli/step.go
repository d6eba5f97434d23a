package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camsima/f16model"
)

func newStepCmd() *cobra.Command {
	var state []float64
	var control []float64
	var dLef float64
	var fiFlag int
	var showSnapshot bool

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Install the catalog and evaluate one flight-dynamics step",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir := v.GetString("data-dir")
			if dataDir == "" {
				return fmt.Errorf("--data-dir is required")
			}
			if len(state) != 12 {
				return fmt.Errorf("--state requires exactly 12 values, got %d", len(state))
			}
			if len(control) != 4 {
				return fmt.Errorf("--control requires exactly 4 values, got %d", len(control))
			}

			m, err := f16model.Install(dataDir, sinkFromConfig())
			if err != nil {
				return err
			}
			defer m.Uninstall()

			var stateArr [12]float64
			copy(stateArr[:], state)
			s := f16model.StateFromVector12(stateArr)
			c := f16model.Control{
				Thrust: control[0], Elevator: control[1],
				Aileron: control[2], Rudder: control[3],
			}
			dot, extras, err := m.Step(s, c, dLef, fiFlag)
			if err != nil {
				return err
			}

			var snapshot map[string]float64
			if showSnapshot {
				snapshot = m.Snapshot()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				StateDot f16model.StateDot  `json:"state_dot"`
				Extras   f16model.Extras    `json:"extras"`
				Snapshot map[string]float64 `json:"snapshot,omitempty"`
			}{dot, extras, snapshot})
		},
	}

	cmd.Flags().Float64SliceVar(&state, "state", nil, "12 state scalars: npos epos alt phi theta psi vt alpha beta p q r")
	cmd.Flags().Float64SliceVar(&control, "control", nil, "4 control scalars: thrust elevator aileron rudder")
	cmd.Flags().Float64Var(&dLef, "d-lef", 0, "leading-edge-flap deflection in degrees")
	cmd.Flags().IntVar(&fiFlag, "fi-flag", 1, "fidelity selector (only 1, high-fidelity, is implemented)")
	cmd.Flags().BoolVar(&showSnapshot, "snapshot", false, "include intermediate coefficient/atmosphere values in the output")

	return cmd
}
