package buildcfg

import (
	"testing"
)

func TestParseOverrides(t *testing.T) {
	overrides := parseOverrides("ENABLE_DOCTOR_AI_AVATAR=true, enable_voice=false,BAD,ALSO_BAD=maybe")

	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d: %v", len(overrides), overrides)
	}
	if !overrides["ENABLE_DOCTOR_AI_AVATAR"] {
		t.Error("ENABLE_DOCTOR_AI_AVATAR should parse true")
	}
	if enabled, ok := overrides["ENABLE_VOICE"]; !ok || enabled {
		t.Errorf("ENABLE_VOICE should parse to supplied false, got %v present=%v", enabled, ok)
	}
}

func TestParseOverridesEmpty(t *testing.T) {
	if overrides := parseOverrides(""); len(overrides) != 0 {
		t.Errorf("empty input should yield no overrides, got %v", overrides)
	}
}

func TestOverrideSuppliedVsAbsent(t *testing.T) {
	cfg := Config{Overrides: map[string]bool{"ENABLE_X": false}}

	if enabled, ok := cfg.Override("ENABLE_X"); !ok || enabled {
		t.Errorf("ENABLE_X: got %v supplied=%v, want supplied false", enabled, ok)
	}
	if _, ok := cfg.Override("ENABLE_Y"); ok {
		t.Error("ENABLE_Y was never supplied")
	}
	// Lookup canonicalizes the queried name too
	if _, ok := cfg.Override("enable-x"); !ok {
		t.Error("override lookup should canonicalize names")
	}
}

func TestCanonicalFlagName(t *testing.T) {
	cases := map[string]string{
		"enable_doctor_ai_avatar": "ENABLE_DOCTOR_AI_AVATAR",
		"enable-voice mode":       "ENABLE_VOICE_MODE",
		"  Trimmed  ":             "TRIMMED",
	}
	for input, want := range cases {
		if got := CanonicalFlagName(input); got != want {
			t.Errorf("CanonicalFlagName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFromBuildEnvOverrides(t *testing.T) {
	t.Setenv(envMode, "restricted")
	t.Setenv(envKillSwitch, "1")
	t.Setenv(envFlagPrefix+"ENABLE_DOCTOR_AI_AVATAR", "true")

	cfg := FromBuild()

	if !cfg.Restricted {
		t.Error("FT_BUILD_MODE=restricted should set Restricted")
	}
	if !cfg.KillSwitch {
		t.Error("FT_DISABLE_EXPERIMENTAL=1 should set KillSwitch")
	}
	if enabled, ok := cfg.Override("ENABLE_DOCTOR_AI_AVATAR"); !ok || !enabled {
		t.Errorf("env flag override missing: %v supplied=%v", enabled, ok)
	}
}

func TestFromBuildDefaults(t *testing.T) {
	t.Setenv(envMode, "")
	t.Setenv(envKillSwitch, "")

	cfg := FromBuild()

	if cfg.Restricted {
		t.Error("default build mode should be unrestricted")
	}
	if cfg.KillSwitch {
		t.Error("kill switch should default off")
	}
	if cfg.Mode() != ModeUnrestricted {
		t.Errorf("Mode() = %q, want %q", cfg.Mode(), ModeUnrestricted)
	}
}

func TestParseBoolString(t *testing.T) {
	for _, truthy := range []string{"1", "true", "on", "YES"} {
		if enabled, ok := parseBoolString(truthy); !ok || !enabled {
			t.Errorf("parseBoolString(%q) = %v,%v, want true,true", truthy, enabled, ok)
		}
	}
	for _, falsy := range []string{"0", "false", "off", "No"} {
		if enabled, ok := parseBoolString(falsy); !ok || enabled {
			t.Errorf("parseBoolString(%q) = %v,%v, want false,true", falsy, enabled, ok)
		}
	}
	if _, ok := parseBoolString("maybe"); ok {
		t.Error("unparseable value should report not supplied")
	}
}
