package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSwipeThreshold(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if v := settings.GetSwipeThreshold(); v != DefaultSwipeThreshold {
		t.Errorf("Expected default threshold %v, got %v", DefaultSwipeThreshold, v)
	}

	// Test setting custom value
	settings.SetSwipeThreshold(150)
	if v := settings.GetSwipeThreshold(); v != 150 {
		t.Errorf("Expected threshold 150, got %v", v)
	}

	// Test boundary values
	settings.SetSwipeThreshold(1)
	if settings.GetSwipeThreshold() != MinSwipeThreshold {
		t.Errorf("Threshold should be clamped to minimum %v", MinSwipeThreshold)
	}

	settings.SetSwipeThreshold(10000)
	if settings.GetSwipeThreshold() != MaxSwipeThreshold {
		t.Errorf("Threshold should be clamped to maximum %v", MaxSwipeThreshold)
	}
}

func TestRotationDivisor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if v := settings.GetRotationDivisor(); v != DefaultRotationDivisor {
		t.Errorf("Expected default divisor %v, got %v", DefaultRotationDivisor, v)
	}

	settings.SetRotationDivisor(20)
	if v := settings.GetRotationDivisor(); v != 20 {
		t.Errorf("Expected divisor 20, got %v", v)
	}

	settings.SetRotationDivisor(0.1)
	if settings.GetRotationDivisor() != MinRotationDivisor {
		t.Errorf("Divisor should be clamped to minimum %v", MinRotationDivisor)
	}

	settings.SetRotationDivisor(500)
	if settings.GetRotationDivisor() != MaxRotationDivisor {
		t.Errorf("Divisor should be clamped to maximum %v", MaxRotationDivisor)
	}
}

func TestSwipeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetSwipeThreshold(120)
	settings.SetRotationDivisor(8)

	opts := settings.SwipeOptions()
	if opts.Threshold != 120 || opts.RotationDivisor != 8 {
		t.Errorf("Unexpected swipe options %+v", opts)
	}
}

func TestDeckPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if path := settings.GetDeckPath(); path != "" {
		t.Errorf("Expected no deck by default, got %s", path)
	}

	settings.SetDeckPath("/decks/friends.toml")
	if path := settings.GetDeckPath(); path != "/decks/friends.toml" {
		t.Errorf("Expected deck path '/decks/friends.toml', got %s", path)
	}
}

func TestForgetDeckPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetDeckPath("/gone.toml")

	settings.ForgetDeckPath()

	if settings.GetDeckPath() != "" {
		t.Errorf("Expected stored deck path to be cleared, got %s", settings.GetDeckPath())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLoadEnv(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvDeckPath + "=/from/env.toml\n" + EnvThreshold + "=180\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv(EnvDeckPath, "")
	t.Setenv(EnvThreshold, "")
	os.Unsetenv(EnvDeckPath)
	os.Unsetenv(EnvThreshold)

	settings.LoadEnv(envFile)

	if path := settings.GetDeckPath(); path != "/from/env.toml" {
		t.Errorf("Expected deck path from env file, got %s", path)
	}
	if v := settings.GetSwipeThreshold(); v != 180 {
		t.Errorf("Expected threshold 180 from env file, got %v", v)
	}

	// Overrides must not survive into the next run
	if v := app.Preferences().String(KeyDeckPath); v != "" {
		t.Errorf("Env deck path should not be stored, got %s", v)
	}
	if v := app.Preferences().Float(KeySwipeThreshold); v == 180 {
		t.Error("Env threshold should not be stored")
	}
	next := NewSettings(app)
	if next.GetDeckPath() != "" || next.GetSwipeThreshold() != DefaultSwipeThreshold {
		t.Errorf("Expected stored defaults on the next run, got %q and %v", next.GetDeckPath(), next.GetSwipeThreshold())
	}
}

func TestOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetDeckPath("/stored.toml")
	settings.SetSwipeThreshold(150)

	settings.OverrideDeckPath("/cli.toml")
	settings.OverrideSwipeThreshold(1000)

	if path := settings.GetDeckPath(); path != "/cli.toml" {
		t.Errorf("Expected override deck path, got %s", path)
	}
	if v := settings.GetSwipeThreshold(); v != MaxSwipeThreshold {
		t.Errorf("Override should be clamped to %v, got %v", MaxSwipeThreshold, v)
	}
	if opts := settings.SwipeOptions(); opts.Threshold != float32(MaxSwipeThreshold) {
		t.Errorf("SwipeOptions should use the override, got %v", opts.Threshold)
	}
	if v := app.Preferences().String(KeyDeckPath); v != "/stored.toml" {
		t.Errorf("Stored deck path should be untouched, got %s", v)
	}

	settings.OverrideDeckPath("")
	if path := settings.GetDeckPath(); path != "" {
		t.Errorf("Empty override should select the built-in deck, got %s", path)
	}

	settings.OverrideDeckPath("/broken.toml")
	settings.ForgetDeckPath()
	if settings.GetDeckPath() != "" || app.Preferences().String(KeyDeckPath) != "/stored.toml" {
		t.Error("Forgetting an override should keep the stored deck path")
	}

	settings.SetDeckPath("/picked.toml")
	settings.SetSwipeThreshold(120)
	if settings.GetDeckPath() != "/picked.toml" || settings.GetSwipeThreshold() != 120 {
		t.Error("Storing a value should drop the override")
	}
}

func TestLoadEnv_MissingFileAndBadValue(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	t.Setenv(EnvDeckPath, "")
	t.Setenv(EnvThreshold, "not-a-number")

	settings.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))

	if v := settings.GetSwipeThreshold(); v != DefaultSwipeThreshold {
		t.Errorf("Invalid override should be ignored, got %v", v)
	}
	if path := settings.GetDeckPath(); path != "" {
		t.Errorf("Empty override should be ignored, got %s", path)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
