package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marcus/ft/internal/buildcfg"
	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

// categoryValue is a pflag.Value constrained to the known categories.
type categoryValue struct {
	set      bool
	category features.Category
}

var _ pflag.Value = (*categoryValue)(nil)

func (v *categoryValue) String() string {
	if !v.set {
		return ""
	}
	return v.category.String()
}

func (v *categoryValue) Set(s string) error {
	category, ok := features.CategoryFromString(s)
	if !ok {
		return fmt.Errorf("unknown category %q (stable, advanced, experimental, beta)", s)
	}
	v.category = category
	v.set = true
	return nil
}

func (v *categoryValue) Type() string { return "category" }

var listCategory categoryValue

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List features with their resolved state",
	GroupID: "core",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		enabledOnly, _ := cmd.Flags().GetBool("enabled")

		svc := features.NewService(getBaseDir())
		defer svc.Close()

		if jsonOutput {
			return outputListJSON(svc, buildCfg, enabledOnly)
		}
		outputList(svc, buildCfg, enabledOnly)
		return nil
	},
}

func listCategories() []features.Category {
	if listCategory.set {
		return []features.Category{listCategory.category}
	}
	return features.Categories()
}

func outputList(svc *features.Service, cfg buildcfg.Config, enabledOnly bool) {
	for _, category := range listCategories() {
		items := features.ByCategory(category)
		if len(items) == 0 {
			continue
		}

		var rows []string
		for _, feature := range items {
			enabled, source := features.Resolve(feature, cfg, svc)
			if enabledOnly && !enabled {
				continue
			}
			rows = append(rows, output.FormatFeatureRow(feature, enabled, source))
		}
		if len(rows) == 0 {
			continue
		}

		fmt.Println(output.FormatCategoryHeader(category))
		for _, row := range rows {
			fmt.Println("  " + row)
		}
		fmt.Println()
	}
}

type featureStateJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Enabled       bool   `json:"enabled"`
	Source        string `json:"source"`
	Default       bool   `json:"default"`
	BuildFlag     string `json:"build_flag,omitempty"`
	RuntimeToggle bool   `json:"runtime_toggle"`
}

func outputListJSON(svc *features.Service, cfg buildcfg.Config, enabledOnly bool) error {
	var states []featureStateJSON
	for _, category := range listCategories() {
		for _, feature := range features.ByCategory(category) {
			enabled, source := features.Resolve(feature, cfg, svc)
			if enabledOnly && !enabled {
				continue
			}
			states = append(states, featureStateJSON{
				ID:            feature.ID,
				Name:          feature.Name,
				Category:      feature.Category.String(),
				Enabled:       enabled,
				Source:        string(source),
				Default:       feature.Default,
				BuildFlag:     feature.BuildFlag,
				RuntimeToggle: feature.RuntimeToggle,
			})
		}
	}
	return output.JSON(states)
}

func init() {
	listCmd.Flags().VarP(&listCategory, "category", "c", "only show one category (stable, advanced, experimental, beta)")
	listCmd.Flags().Bool("json", false, "output as JSON")
	listCmd.Flags().Bool("enabled", false, "only show features that resolve to enabled")
	rootCmd.AddCommand(listCmd)
}
