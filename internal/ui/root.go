package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecards/internal/config"
	"github.com/ytget/swipecards/internal/deck"
	"github.com/ytget/swipecards/internal/model"
	"github.com/ytget/swipecards/internal/render"
)

// DeckFileExtension is the file type offered by the open deck dialog
const DeckFileExtension = ".toml"

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	presenter    *render.Presenter

	deck        *deck.Deck
	stackView   *CardStack
	stackHolder *fyne.Container

	status    binding.String
	cardsLeft binding.String
	deckName  binding.String

	settingsDialog *SettingsDialog
	reloadBtn      *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		presenter:    render.NewPresenter(labelFont(), nil),
		stackHolder:  container.NewStack(),
		status:       binding.NewString(),
		cardsLeft:    binding.NewString(),
		deckName:     binding.NewString(),
	}

	if err := ui.LoadDeck(settings.GetDeckPath()); err != nil {
		log.Printf("Warning: %v, falling back to the built-in deck", err)
		settings.ForgetDeckPath()
		ui.useDeck(deck.DefaultDeck())
	}

	ui.setupUI()
	return ui
}

// labelFont returns the bold theme font used for card labels
func labelFont() []byte {
	res := theme.DefaultTheme().Font(fyne.TextStyle{Bold: true})
	if res == nil {
		return nil
	}
	return res.Content()
}

// setupUI creates the window content in the current language
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings)

	reloadBtn := widget.NewButton(IconReload+" "+ui.localization.GetText(KeyReload), ui.Reload)
	ui.reloadBtn = reloadBtn
	openBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenDeck), theme.FolderOpenIcon(), ui.onOpenDeck)
	settingsBtn := widget.NewButton(IconSettings, ui.settingsDialog.Show)

	deckLabel := widget.NewLabelWithData(ui.deckName)
	deckLabel.TextStyle = fyne.TextStyle{Bold: true}
	deckLabel.Truncation = fyne.TextTruncateEllipsis

	toolbar := container.NewBorder(nil, nil, nil,
		container.NewHBox(reloadBtn, openBtn, settingsBtn),
		deckLabel,
	)

	statusLabel := widget.NewLabelWithData(ui.status)
	statusLabel.Truncation = fyne.TextTruncateEllipsis
	countLabel := widget.NewLabelWithData(ui.cardsLeft)
	countLabel.Alignment = fyne.TextAlignTrailing
	statusBar := container.NewBorder(nil, nil, nil, countLabel, statusLabel)

	ui.window.SetContent(container.NewBorder(
		toolbar,
		statusBar,
		nil, nil,
		ui.stackHolder,
	))
}

// LoadDeck loads a deck file and shows it as a fresh stack. An empty path
// selects the built-in deck.
func (ui *RootUI) LoadDeck(path string) error {
	if path == "" {
		ui.useDeck(deck.DefaultDeck())
		return nil
	}

	d, err := deck.LoadDeck(path)
	if err != nil {
		return err
	}

	if path != ui.settings.GetDeckPath() {
		ui.settings.SetDeckPath(path)
	}
	ui.useDeck(d)
	return nil
}

// applySettings picks up saved settings: the language is switched and the
// window rebuilt, then the stack is reloaded with the new tuning.
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.setupUI()
	ui.Reload()
}

// Reload rebuilds the stack from the current deck source. Cards already
// swiped are not put back into the old stack; a new stack replaces it.
func (ui *RootUI) Reload() {
	path := ui.settings.GetDeckPath()
	if err := ui.LoadDeck(path); err != nil {
		log.Printf("Failed to reload deck %s: %v", path, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLoadDeck), err), ui.window)
	}
}

// StackView returns the widget of the current stack
func (ui *RootUI) StackView() *CardStack {
	return ui.stackView
}

// Status returns the status line text
func (ui *RootUI) Status() string {
	s, _ := ui.status.Get()
	return s
}

func (ui *RootUI) useDeck(d *deck.Deck) {
	ui.deck = d

	name := d.Name
	if d.Path == "" {
		name = ui.localization.GetText(KeyBuiltInDeck)
	}
	ui.setBinding(ui.deckName, name)

	if ui.stackView != nil {
		ui.stackView.Release()
	}
	sv := NewCardStack(d.Stack(), ui.presenter, ui.settings.SwipeOptions())
	sv.OnSwiped = ui.onSwiped
	sv.OnEmpty = ui.onEmpty
	ui.stackView = sv

	ui.stackHolder.Objects = []fyne.CanvasObject{sv}
	ui.stackHolder.Refresh()

	ui.setBinding(ui.status, DashPlaceholder)
	ui.updateCount()
}

func (ui *RootUI) onSwiped(card *model.Card, direction model.Direction) {
	key := KeySwipedLeft
	if direction == model.DirectionRight {
		key = KeySwipedRight
	}
	ui.setBinding(ui.status, fmt.Sprintf(ui.localization.GetText(key), card.Name()))
	ui.updateCount()
}

func (ui *RootUI) onEmpty() {
	ui.setBinding(ui.status, IconEmpty+" "+ui.localization.GetText(KeyNoMoreCards))
}

func (ui *RootUI) updateCount() {
	left := 0
	if ui.stackView != nil {
		left = ui.stackView.Stack().Len()
	}
	ui.setBinding(ui.cardsLeft, fmt.Sprintf(ui.localization.GetText(KeyCardsLeft), left))
}

func (ui *RootUI) setBinding(b binding.String, value string) {
	if err := b.Set(value); err != nil {
		log.Printf("Warning: failed to update label: %v", err)
	}
}

// onOpenDeck lets the user pick a deck file
func (ui *RootUI) onOpenDeck() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("Warning: failed to close %s: %v", path, cerr)
		}

		if err := ui.LoadDeck(path); err != nil {
			log.Printf("Failed to open deck %s: %v", path, err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorLoadDeck), err), ui.window)
		}
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{DeckFileExtension}))
	fd.Show()
}
