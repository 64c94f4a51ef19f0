package features

import "github.com/marcus/ft/internal/buildcfg"

// Source reports which input decided a feature's resolved state.
type Source string

const (
	// SourceKillSwitch: the global experimental kill switch forced the feature off.
	SourceKillSwitch Source = "kill_switch"
	// SourceBuild: a restricted build resolved the feature from its build flag
	// (supplied override, or the default when no override was supplied).
	SourceBuild Source = "build"
	// SourceRuntime: an explicit persisted toggle decided the state.
	SourceRuntime Source = "runtime"
	// SourceDefault: the compiled-in default decided the state.
	SourceDefault Source = "default"
)

// Resolve produces the feature's enabled state and the source that decided it.
//
// In a restricted build, a feature that declares a build flag is resolved from
// build inputs only: the kill switch wins, then the supplied override, then
// the default. Persisted toggles are never consulted on that path. A feature
// with no build flag is never gated by build mode and falls through to its
// runtime toggle (or default) even in restricted builds.
//
// Resolution is total: a store read failure falls back to the default rather
// than surfacing an error to display code.
func Resolve(f Feature, cfg buildcfg.Config, svc *Service) (bool, Source) {
	if cfg.Restricted && f.BuildFlag != "" {
		if cfg.KillSwitch {
			return false, SourceKillSwitch
		}
		if enabled, supplied := cfg.Override(f.BuildFlag); supplied {
			return enabled, SourceBuild
		}
		return f.Default, SourceBuild
	}

	if f.RuntimeToggle && svc != nil {
		enabled, set, err := svc.IsFeatureEnabled(f.ID)
		if err == nil && set {
			return enabled, SourceRuntime
		}
	}

	return f.Default, SourceDefault
}

// IsEnabled resolves the feature to a boolean.
func (f Feature) IsEnabled(cfg buildcfg.Config, svc *Service) bool {
	enabled, _ := Resolve(f, cfg, svc)
	return enabled
}
