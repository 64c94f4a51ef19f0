package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/output"
	"github.com/marcus/ft/internal/store"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Initialize the local toggle store",
	Long:    `Creates the local .ft directory and SQLite flag store.`,
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir := getBaseDir()

		// Check if already initialized
		if _, err := os.Stat(filepath.Join(baseDir, ".ft")); err == nil {
			output.Warning(".ft/ already exists")
			return nil
		}

		st, err := store.Initialize(baseDir)
		if err != nil {
			output.Error("failed to initialize store: %v", err)
			return err
		}
		defer st.Close()

		fmt.Println("INITIALIZED .ft/")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
