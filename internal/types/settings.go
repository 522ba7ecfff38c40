package types

// Theme selects the client-side color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid returns true when the theme is a supported value.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

const (
	MinSessionDuration = 5
	MaxSessionDuration = 120
	MinTargetAccuracy  = 1
	MaxTargetAccuracy  = 100
)

// AppSettings is the single per-installation configuration record. When
// nothing has been persisted the hard-coded default applies.
type AppSettings struct {
	DefaultSessionDuration int            `json:"default_session_duration"`
	DefaultTargetAccuracy  int            `json:"default_target_accuracy"`
	EnableNotifications    bool           `json:"enable_notifications"`
	Theme                  Theme          `json:"theme"`
	CueLevels              []CueLevel     `json:"cue_levels"`
	ResponseOptions        []ResponseType `json:"response_options"`
}

// DefaultSettings returns the built-in settings used before anything has
// been saved.
func DefaultSettings() AppSettings {
	return AppSettings{
		DefaultSessionDuration: 30,
		DefaultTargetAccuracy:  80,
		EnableNotifications:    true,
		Theme:                  ThemeSystem,
		CueLevels: []CueLevel{
			CueIndependent, CueVerbal, CueVisual, CueModel, CuePartialPhysical, CueFullPhysical,
		},
		ResponseOptions: []ResponseType{
			ResponseCorrect, ResponseIncorrect, ResponseApproximation, ResponseNoResponse,
		},
	}
}

// Clamp forces the numeric settings into their allowed ranges and falls
// back to defaults for empty enum lists or an unknown theme.
func (s *AppSettings) Clamp() {
	s.DefaultSessionDuration = clampInt(s.DefaultSessionDuration, MinSessionDuration, MaxSessionDuration)
	s.DefaultTargetAccuracy = clampInt(s.DefaultTargetAccuracy, MinTargetAccuracy, MaxTargetAccuracy)
	def := DefaultSettings()
	if !s.Theme.Valid() {
		s.Theme = def.Theme
	}
	if len(s.CueLevels) == 0 {
		s.CueLevels = def.CueLevels
	}
	if len(s.ResponseOptions) == 0 {
		s.ResponseOptions = def.ResponseOptions
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
