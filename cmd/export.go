package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Dump persisted toggles",
	Long:    `Prints the raw persisted toggles. Defaults and build overrides are not merged in; a feature missing here resolves from those inputs instead.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		flags, err := svc.Export()
		if err != nil {
			if jsonOutput {
				output.JSONError(output.ErrCodeStoreError, err.Error())
			} else {
				output.Error("export: %v", err)
			}
			return err
		}

		if jsonOutput {
			return output.JSON(flags)
		}

		if len(flags) == 0 {
			output.Info("no persisted toggles")
			return nil
		}

		ids := make([]string, 0, len(flags))
		for id := range flags {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			marker := "off"
			if flags[id] {
				marker = "on"
			}
			suffix := ""
			if !features.IsKnownFeature(id) {
				suffix = "  (orphan)"
			}
			fmt.Printf("%-24s %s%s\n", id, marker, suffix)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(exportCmd)
}
