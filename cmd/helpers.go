package cmd

import (
	"errors"
	"fmt"

	"github.com/marcus/ft/internal/features"
	"github.com/marcus/ft/internal/output"
)

// ErrUnknownFeature indicates a feature ID not present in the static registry.
var ErrUnknownFeature = errors.New("unknown feature")

// requireKnownFeature validates an ID against the registry unless force is
// set. Orphan writes are permitted with --force so retired entries can still
// be manipulated.
func requireKnownFeature(id string, force bool) error {
	if force || features.IsKnownFeature(id) {
		return nil
	}
	output.Error("unknown feature: %s (use --force to write anyway)", id)
	return fmt.Errorf("%w: %s", ErrUnknownFeature, id)
}

// warnIfLocked notes when a persisted toggle will have no effect on the
// feature's resolved state.
func warnIfLocked(id string) {
	feature, ok := features.Lookup(id)
	if !ok {
		return
	}
	if !feature.RuntimeToggle {
		output.Warning("%s does not honor runtime toggles; resolved state keeps its default", id)
	}
	if buildCfg.Restricted && feature.BuildFlag != "" {
		output.Warning("%s is build-gated in this restricted build; runtime toggles are ignored", id)
	}
}
