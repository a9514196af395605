package config

import (
	"log"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"

	"github.com/ytget/swipecards/internal/swipe"
)

// Settings keys for Fyne preferences
const (
	KeySwipeThreshold  = "swipe_threshold"
	KeyRotationDivisor = "rotation_divisor"
	KeyDeckPath        = "deck_path"
	KeyLanguage        = "app_language"
)

// Environment overrides, read from the process or a .env file
const (
	EnvDeckPath  = "SWIPECARDS_DECK"
	EnvThreshold = "SWIPECARDS_THRESHOLD"
)

// Default values and limits
const (
	DefaultSwipeThreshold  = float64(swipe.DefaultThreshold)
	DefaultRotationDivisor = float64(swipe.DefaultRotationDivisor)
	DefaultLanguage        = "system"

	MinSwipeThreshold  = 20.0
	MaxSwipeThreshold  = 400.0
	MinRotationDivisor = 1.0
	MaxRotationDivisor = 100.0
)

// Settings manages application configuration. Overrides from flags or the
// environment live in memory for this run and are never written back.
type Settings struct {
	app fyne.App

	deckOverride      *string
	thresholdOverride float64
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadEnv reads an optional .env file and applies environment overrides
// for this run. A missing file is not an error.
func (s *Settings) LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read env file: %v", err)
	}

	if path := os.Getenv(EnvDeckPath); path != "" {
		s.OverrideDeckPath(path)
	}
	if raw := os.Getenv(EnvThreshold); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("Warning: ignoring %s=%q: %v", EnvThreshold, raw, err)
			return
		}
		s.OverrideSwipeThreshold(v)
	}
}

// OverrideDeckPath selects a deck for this run without storing it.
// An empty path selects the built-in deck.
func (s *Settings) OverrideDeckPath(path string) {
	s.deckOverride = &path
}

// OverrideSwipeThreshold sets the threshold for this run without storing it
func (s *Settings) OverrideSwipeThreshold(value float64) {
	s.thresholdOverride = clamp(value, MinSwipeThreshold, MaxSwipeThreshold)
}

// GetSwipeThreshold returns the horizontal distance that commits a swipe
func (s *Settings) GetSwipeThreshold() float64 {
	if s.thresholdOverride > 0 {
		return s.thresholdOverride
	}
	value := s.app.Preferences().Float(KeySwipeThreshold)
	if value <= 0 {
		s.SetSwipeThreshold(DefaultSwipeThreshold)
		return DefaultSwipeThreshold
	}
	return value
}

// SetSwipeThreshold stores the swipe threshold and drops any override
func (s *Settings) SetSwipeThreshold(value float64) {
	s.thresholdOverride = 0
	s.app.Preferences().SetFloat(KeySwipeThreshold, clamp(value, MinSwipeThreshold, MaxSwipeThreshold))
}

// GetRotationDivisor returns the drag distance per degree of tilt
func (s *Settings) GetRotationDivisor() float64 {
	value := s.app.Preferences().Float(KeyRotationDivisor)
	if value <= 0 {
		s.SetRotationDivisor(DefaultRotationDivisor)
		return DefaultRotationDivisor
	}
	return value
}

// SetRotationDivisor sets the rotation divisor
func (s *Settings) SetRotationDivisor(value float64) {
	s.app.Preferences().SetFloat(KeyRotationDivisor, clamp(value, MinRotationDivisor, MaxRotationDivisor))
}

// SwipeOptions returns the controller tuning derived from the settings
func (s *Settings) SwipeOptions() swipe.Options {
	return swipe.Options{
		Threshold:       float32(s.GetSwipeThreshold()),
		RotationDivisor: float32(s.GetRotationDivisor()),
	}
}

// GetDeckPath returns the last deck file, or "" for the built-in deck
func (s *Settings) GetDeckPath() string {
	if s.deckOverride != nil {
		return *s.deckOverride
	}
	return s.app.Preferences().String(KeyDeckPath)
}

// SetDeckPath stores the deck file and drops any override
func (s *Settings) SetDeckPath(path string) {
	s.deckOverride = nil
	s.app.Preferences().SetString(KeyDeckPath, path)
}

// ForgetDeckPath falls back to the built-in deck. An override is dropped for
// this run only; otherwise the stored path is cleared.
func (s *Settings) ForgetDeckPath() {
	if s.deckOverride != nil {
		s.OverrideDeckPath("")
		return
	}
	s.SetDeckPath("")
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
