package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

type featureDetailJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	Enabled       bool   `json:"enabled"`
	Source        string `json:"source"`
	Default       bool   `json:"default"`
	BuildFlag     string `json:"build_flag,omitempty"`
	RuntimeToggle bool   `json:"runtime_toggle"`
	Persisted     *bool  `json:"persisted,omitempty"`
}

var showCmd = &cobra.Command{
	Use:     "show <feature-id>",
	Short:   "Show one feature in detail",
	GroupID: "core",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		feature, ok := features.Lookup(args[0])
		if !ok {
			if jsonOutput {
				output.JSONError(output.ErrCodeUnknownFeature, "unknown feature: "+args[0])
			} else {
				output.Error("unknown feature: %s", args[0])
			}
			return fmt.Errorf("%w: %s", ErrUnknownFeature, args[0])
		}

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		enabled, source := features.Resolve(feature, buildCfg, svc)

		if jsonOutput {
			detail := featureDetailJSON{
				ID:            feature.ID,
				Name:          feature.Name,
				Description:   feature.Description,
				Category:      feature.Category.String(),
				Enabled:       enabled,
				Source:        string(source),
				Default:       feature.Default,
				BuildFlag:     feature.BuildFlag,
				RuntimeToggle: feature.RuntimeToggle,
			}
			if value, set, err := svc.IsFeatureEnabled(feature.ID); err == nil && set {
				detail.Persisted = &value
			}
			return output.JSON(detail)
		}

		fmt.Printf("%s  %s\n", feature.ID, output.FormatState(enabled))
		fmt.Printf("Name:      %s\n", feature.Name)
		fmt.Printf("Category:  %s\n", feature.Category.Label())
		fmt.Printf("Source:    %s\n", source)
		fmt.Printf("Default:   %v\n", feature.Default)
		if feature.BuildFlag != "" {
			supplied := "not supplied"
			if value, ok := buildCfg.Override(feature.BuildFlag); ok {
				supplied = fmt.Sprintf("%v", value)
			}
			fmt.Printf("BuildFlag: %s (%s)\n", feature.BuildFlag, supplied)
		}
		if !feature.RuntimeToggle {
			fmt.Println("Runtime toggling: locked")
		} else if value, set, err := svc.IsFeatureEnabled(feature.ID); err == nil {
			if set {
				fmt.Printf("Persisted: %v\n", value)
			} else {
				fmt.Println("Persisted: unset")
			}
		}

		if feature.Description != "" {
			rendered, err := output.RenderMarkdown(feature.Description)
			if err == nil && rendered != "" {
				fmt.Println()
				fmt.Println(rendered)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}
