package cmd

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Remove every persisted toggle",
	Long:    `Removes all persisted feature toggles. Every feature falls back to its build override or compiled-in default on next resolution.`,
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			confirmed := false
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title("Remove all persisted toggles?").
					Description("Features return to their defaults. Build overrides are unaffected.").
					Affirmative("Reset").
					Negative("Cancel").
					Value(&confirmed),
			))
			if err := form.Run(); err != nil {
				return err
			}
			if !confirmed {
				output.Info("reset cancelled")
				return nil
			}
		}

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		if err := svc.ResetAll(); err != nil {
			output.Error("reset: %v", err)
			return err
		}

		output.Success("all toggles removed")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
