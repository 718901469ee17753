package model

// Settings holds the recognized cross-cutting preferences with explicit
// defaults. Unknown keys and values are rejected at the handler; the persisted
// blob always matches this shape.
type Settings struct {
	Theme    string `json:"theme"`    // "light" or "dark"
	Language string `json:"language"` // "en" or "hi"
	Region   string `json:"region"`   // "in", "us", "eu" or "uk"
}

// DefaultSettings returns the settings applied before the artisan has saved
// anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "light",
		Language: "en",
		Region:   "in",
	}
}

// SettingOptions enumerates the accepted values per setting key.
var SettingOptions = map[string][]string{
	"theme":    {"light", "dark"},
	"language": {"en", "hi"},
	"region":   {"in", "us", "eu", "uk"},
}

// CurrencySymbols maps a region code to its display symbol. Purely
// presentational.
var CurrencySymbols = map[string]string{
	"in": "₹",
	"us": "$",
	"eu": "€",
	"uk": "£",
}

// ValidSetting reports whether value is an accepted option for key.
func ValidSetting(key, value string) bool {
	for _, v := range SettingOptions[key] {
		if v == value {
			return true
		}
	}
	return false
}
