// Package buildcfg resolves the build-time feature configuration: build mode,
// per-flag overrides, and the experimental kill switch. The values are fixed
// at link time via -ldflags -X and may be overridden through the environment
// during development; they are parsed once and passed around as a plain struct.
package buildcfg

import (
	"os"
	"strings"
	"unicode"
)

// Injected at build time, e.g.
//
//	go build -ldflags "-X github.com/marcus/ft/internal/buildcfg.buildMode=restricted \
//	  -X 'github.com/marcus/ft/internal/buildcfg.buildOverrides=ENABLE_DOCTOR_AI_AVATAR=true' \
//	  -X github.com/marcus/ft/internal/buildcfg.killSwitch=false"
var (
	buildMode      = ""
	buildOverrides = ""
	killSwitch     = ""
)

const (
	// ModeRestricted disables runtime toggling of build-gated features.
	ModeRestricted = "restricted"
	// ModeUnrestricted allows runtime toggles everywhere (debug/dev builds).
	ModeUnrestricted = "unrestricted"
)

const (
	envMode       = "FT_BUILD_MODE"
	envKillSwitch = "FT_DISABLE_EXPERIMENTAL"
	envFlagPrefix = "FT_FLAG_"
)

// Config is the resolved build configuration, threaded into feature
// resolution as a parameter.
type Config struct {
	// Restricted reports whether this is a release-like build.
	Restricted bool
	// Overrides maps build-flag names to their supplied values. A name that
	// is absent was not supplied, which is distinct from false.
	Overrides map[string]bool
	// KillSwitch forces every build-gated feature off in restricted builds.
	KillSwitch bool
}

// Override returns the supplied value for a build-flag name, and whether one
// was supplied at all.
func (c Config) Override(name string) (bool, bool) {
	enabled, ok := c.Overrides[CanonicalFlagName(name)]
	return enabled, ok
}

// Mode returns the mode label for display.
func (c Config) Mode() string {
	if c.Restricted {
		return ModeRestricted
	}
	return ModeUnrestricted
}

// FromBuild resolves the configuration from link-time values, then applies
// environment overrides. Call once at startup.
func FromBuild() Config {
	cfg := Config{
		Restricted: strings.EqualFold(strings.TrimSpace(buildMode), ModeRestricted),
		Overrides:  parseOverrides(buildOverrides),
	}
	if enabled, ok := parseBoolString(killSwitch); ok {
		cfg.KillSwitch = enabled
	}

	applyEnv(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if mode := os.Getenv(envMode); mode != "" {
		cfg.Restricted = strings.EqualFold(strings.TrimSpace(mode), ModeRestricted)
	}
	if disabled, ok := parseBoolEnv(envKillSwitch); ok {
		cfg.KillSwitch = disabled
	}
	for _, entry := range os.Environ() {
		if !strings.HasPrefix(entry, envFlagPrefix) {
			continue
		}
		name, value, ok := strings.Cut(strings.TrimPrefix(entry, envFlagPrefix), "=")
		if !ok || name == "" {
			continue
		}
		if enabled, ok := parseBoolString(value); ok {
			cfg.Overrides[CanonicalFlagName(name)] = enabled
		}
	}
}

// parseOverrides parses "NAME=true,OTHER=false" pairs. Malformed pairs are
// skipped rather than failing the whole build config.
func parseOverrides(raw string) map[string]bool {
	overrides := make(map[string]bool)
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" {
			continue
		}
		if enabled, ok := parseBoolString(value); ok {
			overrides[CanonicalFlagName(name)] = enabled
		}
	}
	return overrides
}

// CanonicalFlagName uppercases a build-flag name and replaces every
// non-alphanumeric rune with underscore, matching env var naming.
func CanonicalFlagName(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range upper {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

func parseBoolEnv(key string) (bool, bool) {
	return parseBoolString(os.Getenv(key))
}

func parseBoolString(value string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}
