package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/marcus/ft/internal/features"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldOut := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = oldOut

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

type jsonErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestShowJSONUnknownFeature(t *testing.T) {
	setupStore(t)

	showCmd.Flags().Set("json", "true")
	t.Cleanup(func() { showCmd.Flags().Set("json", "false") })

	out, err := captureStdout(t, func() error {
		return showCmd.RunE(showCmd, []string{"no_such_feature"})
	})
	if err == nil {
		t.Fatal("expected unknown feature error")
	}

	var envelope jsonErrorEnvelope
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not a JSON error envelope: %v\n%s", err, out)
	}
	if envelope.Error.Code != "unknown_feature" {
		t.Errorf("error code = %q, want unknown_feature", envelope.Error.Code)
	}
}

func TestShowJSONDetail(t *testing.T) {
	dir := setupStore(t)

	svc := features.NewService(dir)
	if err := svc.SetFeatureEnabled("dark_mode", true); err != nil {
		t.Fatalf("persist toggle: %v", err)
	}
	svc.Close()

	showCmd.Flags().Set("json", "true")
	t.Cleanup(func() { showCmd.Flags().Set("json", "false") })

	out, err := captureStdout(t, func() error {
		return showCmd.RunE(showCmd, []string{"dark_mode"})
	})
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var detail featureDetailJSON
	if err := json.Unmarshal([]byte(out), &detail); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if detail.ID != "dark_mode" || !detail.Enabled || detail.Source != "runtime" {
		t.Errorf("unexpected detail: %+v", detail)
	}
	if detail.Persisted == nil || !*detail.Persisted {
		t.Errorf("expected persisted true, got %v", detail.Persisted)
	}
}

func TestExportJSONStoreError(t *testing.T) {
	prevBase := baseDir
	baseDir = t.TempDir() // never initialized
	defer func() { baseDir = prevBase }()

	exportCmd.Flags().Set("json", "true")
	t.Cleanup(func() { exportCmd.Flags().Set("json", "false") })

	out, err := captureStdout(t, func() error {
		return exportCmd.RunE(exportCmd, nil)
	})
	if err == nil {
		t.Fatal("expected store error")
	}

	var envelope jsonErrorEnvelope
	if err := json.Unmarshal([]byte(out), &envelope); err != nil {
		t.Fatalf("output is not a JSON error envelope: %v\n%s", err, out)
	}
	if envelope.Error.Code != "store_error" {
		t.Errorf("error code = %q, want store_error", envelope.Error.Code)
	}
}
