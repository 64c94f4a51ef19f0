package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/ft/internal/features"
)

func TestFormatFeatureRow(t *testing.T) {
	row := ansi.Strip(FormatFeatureRow(features.DoctorAIAvatar, false, features.SourceBuild))

	for _, want := range []string{"off", "doctor_ai_avatar", "Doctor AI Avatar", "[ENABLE_DOCTOR_AI_AVATAR]", "(build)"} {
		if !strings.Contains(row, want) {
			t.Errorf("row %q missing %q", row, want)
		}
	}
}

func TestFormatFeatureRowLocked(t *testing.T) {
	row := ansi.Strip(FormatFeatureRow(features.StrictPrivacyMode, true, features.SourceDefault))

	if !strings.Contains(row, "[locked]") {
		t.Errorf("non-toggleable feature row should carry [locked]: %q", row)
	}
	if !strings.Contains(row, "on") {
		t.Errorf("enabled row should carry on marker: %q", row)
	}
}

func TestFormatState(t *testing.T) {
	if got := ansi.Strip(FormatState(true)); strings.TrimSpace(got) != "on" {
		t.Errorf("FormatState(true) = %q", got)
	}
	if got := ansi.Strip(FormatState(false)); strings.TrimSpace(got) != "off" {
		t.Errorf("FormatState(false) = %q", got)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	rendered, err := RenderMarkdown("   ")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if rendered != "" {
		t.Errorf("blank input should render empty, got %q", rendered)
	}
}

func TestRenderMarkdownBody(t *testing.T) {
	rendered, err := RenderMarkdown("Use the **dark** color scheme.")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(ansi.Strip(rendered), "dark") {
		t.Errorf("rendered output missing body text: %q", rendered)
	}
}
