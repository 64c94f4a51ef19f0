package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/ft/internal/buildcfg"
	"github.com/marcus/ft/internal/features"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Short:   "Run diagnostic checks on the toggle store",
	GroupID: "system",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(getBaseDir(), buildCfg)
		return nil
	},
}

func runDoctor(baseDir string, cfg buildcfg.Config) {
	// 1. Store openable
	svc := features.NewService(baseDir)
	defer svc.Close()

	storeOK := false
	if err := svc.Init(); err == nil {
		storeOK = true
		fmt.Printf("Toggle store ........... OK\n")
	} else {
		fmt.Printf("Toggle store ........... FAIL (%v)\n", err)
	}

	// 2. Registry sanity
	ids := map[string]bool{}
	registryOK := true
	for _, feature := range features.ListAll() {
		if feature.ID == "" || ids[feature.ID] {
			registryOK = false
		}
		ids[feature.ID] = true
	}
	if registryOK {
		fmt.Printf("Registry ............... OK (%d features)\n", len(ids))
	} else {
		fmt.Printf("Registry ............... FAIL (duplicate or empty IDs)\n")
	}

	// 3. Orphan persisted entries
	if !storeOK {
		fmt.Printf("Persisted entries ...... SKIP\n")
	} else if flags, err := svc.Export(); err != nil {
		fmt.Printf("Persisted entries ...... FAIL (%v)\n", err)
	} else {
		orphans := 0
		for id := range flags {
			if !features.IsKnownFeature(id) {
				orphans++
			}
		}
		if orphans == 0 {
			fmt.Printf("Persisted entries ...... OK (%d set)\n", len(flags))
		} else {
			fmt.Printf("Persisted entries ...... WARN (%d set, %d orphaned)\n", len(flags), orphans)
		}
	}

	// 4. Build configuration summary
	fmt.Printf("Build mode ............. %s\n", cfg.Mode())
	if cfg.KillSwitch {
		fmt.Printf("Kill switch ............ ON (all build-gated features forced off in restricted builds)\n")
	} else {
		fmt.Printf("Kill switch ............ off\n")
	}
	if len(cfg.Overrides) > 0 {
		fmt.Printf("Build overrides ........ %d supplied\n", len(cfg.Overrides))
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
