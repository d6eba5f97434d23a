// Package cli wires the f16step command tree: install, step, and constants,
// backed by Viper for data-directory resolution.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

// Execute runs the f16step root command.
func Execute() error {
	root := &cobra.Command{
		Use:   "f16step",
		Short: "Install an F-16 aerodynamic catalog and evaluate flight-dynamics steps",
	}

	root.PersistentFlags().String("data-dir", "", "directory holding the axis and coefficient data files")
	root.PersistentFlags().String("log-format", "console", "log output format: console or json")
	v.BindPFlag("data-dir", root.PersistentFlags().Lookup("data-dir"))
	v.BindPFlag("log-format", root.PersistentFlags().Lookup("log-format"))
	v.SetEnvPrefix("F16STEP")
	v.AutomaticEnv()

	root.AddCommand(newInstallCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newConstantsCmd())

	return root.Execute()
}
