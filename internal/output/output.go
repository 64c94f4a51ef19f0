// Package output provides styled terminal output helpers (success, error,
// warning, feature formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/ft/internal/features"
)

var (
	// Styles
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Padding(0, 1)
	sourceStyles  = map[features.Source]lipgloss.Style{
		features.SourceKillSwitch: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		features.SourceBuild:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		features.SourceRuntime:    lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		features.SourceDefault:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output
const (
	ErrCodeUnknownFeature = "unknown_feature"
	ErrCodeStoreError     = "store_error"
)

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	fmt.Printf(`{"error":{"code":"%s","message":"%s"}}`, code, message)
	fmt.Println()
}

// FormatState renders an enabled/disabled marker
func FormatState(enabled bool) string {
	if enabled {
		return enabledStyle.Render("on ")
	}
	return disabledStyle.Render("off")
}

// FormatSource renders the resolution source annotation
func FormatSource(source features.Source) string {
	style, ok := sourceStyles[source]
	if !ok {
		return string(source)
	}
	return style.Render(fmt.Sprintf("(%s)", source))
}

// FormatCategoryHeader renders a category section header
func FormatCategoryHeader(c features.Category) string {
	return categoryStyle.Render(c.Label())
}

// FormatFeatureRow formats one feature line for list output
func FormatFeatureRow(f features.Feature, enabled bool, source features.Source) string {
	var parts []string
	parts = append(parts, FormatState(enabled))
	parts = append(parts, titleStyle.Render(f.ID))
	parts = append(parts, subtleStyle.Render(f.Name))
	if f.BuildFlag != "" {
		parts = append(parts, subtleStyle.Render("["+f.BuildFlag+"]"))
	}
	if !f.RuntimeToggle {
		parts = append(parts, subtleStyle.Render("[locked]"))
	}
	parts = append(parts, FormatSource(source))
	return strings.Join(parts, "  ")
}
