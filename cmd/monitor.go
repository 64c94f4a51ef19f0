package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
	"github.com/marcus/ft/pkg/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive dashboard for flipping toggles",
	Long: `Launch an interactive dashboard listing every feature with its resolved
state and the input that decided it.

Key bindings:
  j/k, ↑/↓      Move between features
  Space/Enter   Toggle the selected feature
  u             Remove the persisted toggle (back to default)
  R             Remove all persisted toggles
  /             Filter features
  q             Quit`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := features.NewService(getBaseDir())
		defer svc.Close()

		// Surface a missing store before entering the alternate screen
		if err := svc.Init(); err != nil {
			output.Error("%v", err)
			return err
		}

		model := monitor.New(svc, buildCfg)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			output.Error("monitor: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
