package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecards/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	thresholdEntry *widget.Entry
	divisorEntry   *widget.Entry
	deckPathEntry  *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored, so the caller can rebuild the stack.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder(formatFloat(config.MinSwipeThreshold) + "-" + formatFloat(config.MaxSwipeThreshold))

	sd.divisorEntry = widget.NewEntry()
	sd.divisorEntry.SetPlaceHolder(formatFloat(config.MinRotationDivisor) + "-" + formatFloat(config.MaxRotationDivisor))

	sd.deckPathEntry = widget.NewEntry()
	sd.deckPathEntry.SetPlaceHolder(text(KeyBuiltInDeck))
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDeck)
	deckRow := container.NewBorder(nil, nil, nil, browseBtn, sd.deckPathEntry)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeySwipeThreshold)+":"),
		sd.thresholdEntry,

		widget.NewLabel(text(KeyRotationDivisor)+":"),
		sd.divisorEntry,

		widget.NewLabel(text(KeyDeckFile)+":"),
		deckRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.thresholdEntry.SetText(formatFloat(sd.settings.GetSwipeThreshold()))
	sd.divisorEntry.SetText(formatFloat(sd.settings.GetRotationDivisor()))
	sd.deckPathEntry.SetText(sd.settings.GetDeckPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDeck handles deck file browsing
func (sd *SettingsDialog) onBrowseDeck() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		sd.deckPathEntry.SetText(reader.URI().Path())
		_ = reader.Close()
	}, sd.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{DeckFileExtension}))
	fd.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the values from the form. Unparsable numbers are ignored.
func (sd *SettingsDialog) apply() {
	if v, err := strconv.ParseFloat(sd.thresholdEntry.Text, 64); err == nil {
		sd.settings.SetSwipeThreshold(v)
	}

	if v, err := strconv.ParseFloat(sd.divisorEntry.Text, 64); err == nil {
		sd.settings.SetRotationDivisor(v)
	}

	sd.settings.SetDeckPath(sd.deckPathEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
