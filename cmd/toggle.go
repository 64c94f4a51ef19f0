package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <feature-id>",
	Aliases: []string{"flip"},
	Short:   "Flip a persisted feature toggle",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		force, _ := cmd.Flags().GetBool("force")
		if err := requireKnownFeature(id, force); err != nil {
			return err
		}

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		next, err := svc.Toggle(id)
		if err != nil {
			output.Error("toggle: %v", err)
			return err
		}

		warnIfLocked(id)
		if next {
			output.Success("%s enabled", id)
		} else {
			output.Success("%s disabled", id)
		}
		return nil
	},
}

var unsetCmd = &cobra.Command{
	Use:     "unset <feature-id>",
	Short:   "Remove a persisted toggle, returning the feature to its default",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		force, _ := cmd.Flags().GetBool("force")
		if err := requireKnownFeature(id, force); err != nil {
			return err
		}

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		if err := svc.Unset(id); err != nil {
			output.Error("unset: %v", err)
			return err
		}

		output.Success("%s reset to default", id)
		return nil
	},
}

func init() {
	toggleCmd.Flags().Bool("force", false, "allow ids not present in the registry")
	unsetCmd.Flags().Bool("force", false, "allow ids not present in the registry")
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(unsetCmd)
}
