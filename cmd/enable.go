package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

var enableCmd = &cobra.Command{
	Use:     "enable <feature-id>",
	Short:   "Persist a feature toggle as enabled",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return setFeature(args[0], true, force)
	},
}

var disableCmd = &cobra.Command{
	Use:     "disable <feature-id>",
	Short:   "Persist a feature toggle as disabled",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return setFeature(args[0], false, force)
	},
}

func setFeature(id string, enabled bool, force bool) error {
	if err := requireKnownFeature(id, force); err != nil {
		return err
	}

	svc := features.NewService(getBaseDir())
	defer svc.Close()

	if err := svc.SetFeatureEnabled(id, enabled); err != nil {
		output.Error("save toggle: %v", err)
		return err
	}

	warnIfLocked(id)
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	output.Success("%s %s", id, state)
	return nil
}

func init() {
	enableCmd.Flags().Bool("force", false, "allow ids not present in the registry")
	disableCmd.Flags().Bool("force", false, "allow ids not present in the registry")
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
