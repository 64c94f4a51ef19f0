package cmd

import (
	"testing"

	"github.com/marcus/ft/internal/buildcfg"
	"github.com/marcus/ft/internal/features"
)

func TestCategoryValue(t *testing.T) {
	var v categoryValue

	if v.String() != "" {
		t.Errorf("unset value should render empty, got %q", v.String())
	}
	if err := v.Set("beta"); err != nil {
		t.Fatalf("Set(beta) failed: %v", err)
	}
	if v.String() != "beta" || v.category != features.CategoryBeta {
		t.Errorf("unexpected parse: %q %v", v.String(), v.category)
	}
	if err := v.Set("bogus"); err == nil {
		t.Error("Set(bogus) should fail")
	}
	if v.Type() != "category" {
		t.Errorf("Type() = %q", v.Type())
	}
}

func TestOutputListDoesNotCrash(t *testing.T) {
	dir := setupStore(t)

	svc := features.NewService(dir)
	defer svc.Close()
	if err := svc.SetFeatureEnabled("care_team_chat", true); err != nil {
		t.Fatalf("seed toggle: %v", err)
	}

	cfg := buildcfg.Config{Overrides: map[string]bool{}}

	prev := listCategory
	listCategory = categoryValue{}
	defer func() { listCategory = prev }()

	outputList(svc, cfg, false)
	outputList(svc, cfg, true)

	if err := outputListJSON(svc, cfg, false); err != nil {
		t.Errorf("outputListJSON failed: %v", err)
	}
}

func TestOutputListSingleCategory(t *testing.T) {
	dir := setupStore(t)

	svc := features.NewService(dir)
	defer svc.Close()

	prev := listCategory
	listCategory = categoryValue{set: true, category: features.CategoryExperimental}
	defer func() { listCategory = prev }()

	if got := listCategories(); len(got) != 1 || got[0] != features.CategoryExperimental {
		t.Errorf("listCategories() = %v", got)
	}
	if err := outputListJSON(svc, buildcfg.Config{Overrides: map[string]bool{}}, false); err != nil {
		t.Errorf("outputListJSON failed: %v", err)
	}
}

func TestRunDoctorDoesNotCrash(t *testing.T) {
	setupStore(t)

	runDoctor(getBaseDir(), buildcfg.Config{Overrides: map[string]bool{}})

	// Also against a missing store
	runDoctor(t.TempDir(), buildcfg.Config{Restricted: true, KillSwitch: true, Overrides: map[string]bool{"ENABLE_VOICE_ASSISTANT": true}})
}
