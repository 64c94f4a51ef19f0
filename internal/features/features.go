// Package features defines the static registry of application features and
// resolves each one to an enabled/disabled state from build configuration,
// persisted runtime toggles, and compiled-in defaults.
package features

import "fmt"

// Category groups features for display. The set is closed; ordering is the
// declaration order below.
type Category int

const (
	CategoryStable Category = iota
	CategoryAdvancedTechnology
	CategoryExperimental
	CategoryBeta
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryStable,
		CategoryAdvancedTechnology,
		CategoryExperimental,
		CategoryBeta,
	}
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryStable:
		return "Stable"
	case CategoryAdvancedTechnology:
		return "Advanced Technology"
	case CategoryExperimental:
		return "Experimental"
	case CategoryBeta:
		return "Beta"
	default:
		return "Unknown"
	}
}

func (c Category) String() string {
	switch c {
	case CategoryStable:
		return "stable"
	case CategoryAdvancedTechnology:
		return "advanced"
	case CategoryExperimental:
		return "experimental"
	case CategoryBeta:
		return "beta"
	default:
		return "unknown"
	}
}

// CategoryFromString parses a category name as used on the CLI.
func CategoryFromString(s string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Feature describes one independently toggleable unit of functionality.
// Values are immutable after construction.
type Feature struct {
	// ID is unique across the registry and doubles as the persistence key suffix.
	ID          string
	Name        string
	Description string
	Category    Category

	// Default is the fallback state when no override or persisted toggle exists.
	Default bool

	// BuildFlag names the build-time override consulted in restricted builds.
	// Empty means the feature is never gated by build mode.
	BuildFlag string

	// RuntimeToggle governs whether persisted toggling applies at all.
	RuntimeToggle bool
}

var (
	// DarkMode switches the app to the dark color scheme.
	DarkMode = Feature{
		ID:            "dark_mode",
		Name:          "Dark Mode",
		Description:   "Use the dark color scheme across all screens.",
		Category:      CategoryStable,
		Default:       false,
		RuntimeToggle: true,
	}

	// OfflineCache keeps recently viewed content available without a connection.
	OfflineCache = Feature{
		ID:            "offline_cache",
		Name:          "Offline Cache",
		Description:   "Keep recently viewed content available while offline.",
		Category:      CategoryStable,
		Default:       true,
		RuntimeToggle: true,
	}

	// StrictPrivacyMode is policy-controlled and never user-toggleable.
	StrictPrivacyMode = Feature{
		ID:            "strict_privacy_mode",
		Name:          "Strict Privacy Mode",
		Description:   "Redact identifying details from exports and logs.",
		Category:      CategoryStable,
		Default:       true,
		RuntimeToggle: false,
	}

	// DoctorAIAvatar renders the animated AI assistant avatar.
	DoctorAIAvatar = Feature{
		ID:            "doctor_ai_avatar",
		Name:          "Doctor AI Avatar",
		Description:   "Show the animated AI assistant avatar on consultation screens.",
		Category:      CategoryAdvancedTechnology,
		Default:       false,
		BuildFlag:     "ENABLE_DOCTOR_AI_AVATAR",
		RuntimeToggle: true,
	}

	// VoiceAssistant enables hands-free voice interaction.
	VoiceAssistant = Feature{
		ID:            "voice_assistant",
		Name:          "Voice Assistant",
		Description:   "Allow hands-free voice interaction with the assistant.",
		Category:      CategoryAdvancedTechnology,
		Default:       false,
		BuildFlag:     "ENABLE_VOICE_ASSISTANT",
		RuntimeToggle: true,
	}

	// SymptomSearchV2 swaps in the rewritten relevance-ranked search.
	SymptomSearchV2 = Feature{
		ID:            "symptom_search_v2",
		Name:          "Symptom Search v2",
		Description:   "Use the rewritten relevance-ranked symptom search.",
		Category:      CategoryExperimental,
		Default:       false,
		BuildFlag:     "ENABLE_SYMPTOM_SEARCH_V2",
		RuntimeToggle: true,
	}

	// CareTeamChat opens the in-app chat with the care team.
	CareTeamChat = Feature{
		ID:            "care_team_chat",
		Name:          "Care Team Chat",
		Description:   "Chat with your care team directly in the app.",
		Category:      CategoryBeta,
		Default:       false,
		RuntimeToggle: true,
	}

	// NewOnboarding runs the redesigned first-launch flow.
	NewOnboarding = Feature{
		ID:            "new_onboarding",
		Name:          "New Onboarding",
		Description:   "Use the redesigned first-launch onboarding flow.",
		Category:      CategoryBeta,
		Default:       true,
		RuntimeToggle: true,
	}
)

// allFeatures is the registry. Order is fixed and is the display order.
var allFeatures = []Feature{
	DarkMode,
	OfflineCache,
	StrictPrivacyMode,
	DoctorAIAvatar,
	VoiceAssistant,
	SymptomSearchV2,
	CareTeamChat,
	NewOnboarding,
}

var byID = buildIndex()

func buildIndex() map[string]Feature {
	index := make(map[string]Feature, len(allFeatures))
	for _, feature := range allFeatures {
		if feature.ID == "" {
			panic("features: registry entry with empty ID")
		}
		if _, exists := index[feature.ID]; exists {
			panic(fmt.Sprintf("features: duplicate registry ID %q", feature.ID))
		}
		index[feature.ID] = feature
	}
	return index
}

// ListAll returns all known features in registry order.
func ListAll() []Feature {
	items := make([]Feature, len(allFeatures))
	copy(items, allFeatures)
	return items
}

// ByCategory returns the features in the given category, in registry order.
func ByCategory(c Category) []Feature {
	var items []Feature
	for _, feature := range allFeatures {
		if feature.Category == c {
			items = append(items, feature)
		}
	}
	return items
}

// Lookup returns the registered feature for an ID.
func Lookup(id string) (Feature, bool) {
	feature, ok := byID[id]
	return feature, ok
}

// IsKnownFeature returns true when the ID exists in the registry.
func IsKnownFeature(id string) bool {
	_, ok := byID[id]
	return ok
}
