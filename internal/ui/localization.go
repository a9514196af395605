package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyReload          = "reload"
	KeyOpenDeck        = "open_deck"
	KeySwipeThreshold  = "swipe_threshold"
	KeyRotationDivisor = "rotation_divisor"
	KeyDeckFile        = "deck_file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
	KeySwipedLeft      = "swiped_left"
	KeySwipedRight     = "swiped_right"
	KeyNoMoreCards     = "no_more_cards"
	KeyCardsLeft       = "cards_left"
	KeyErrorLoadDeck   = "error_load_deck"
	KeyBuiltInDeck     = "built_in_deck"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Swipe Cards",
		KeySettings:        "Settings",
		KeyReload:          "Reload",
		KeyOpenDeck:        "Open deck",
		KeySwipeThreshold:  "Swipe threshold",
		KeyRotationDivisor: "Rotation divisor",
		KeyDeckFile:        "Deck file",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved successfully!",
		KeySwipedLeft:      "Swiped left on %s",
		KeySwipedRight:     "Swiped right on %s",
		KeyNoMoreCards:     "No more cards",
		KeyCardsLeft:       "Cards left: %d",
		KeyErrorLoadDeck:   "Error loading deck",
		KeyBuiltInDeck:     "Built-in deck",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Карточки",
		KeySettings:        "Настройки",
		KeyReload:          "Обновить",
		KeyOpenDeck:        "Открыть колоду",
		KeySwipeThreshold:  "Порог свайпа",
		KeyRotationDivisor: "Делитель поворота",
		KeyDeckFile:        "Файл колоды",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeySwipedLeft:      "Свайп влево: %s",
		KeySwipedRight:     "Свайп вправо: %s",
		KeyNoMoreCards:     "Карточки закончились",
		KeyCardsLeft:       "Осталось карточек: %d",
		KeyErrorLoadDeck:   "Ошибка загрузки колоды",
		KeyBuiltInDeck:     "Встроенная колода",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Swipe Cards",
		KeySettings:        "Configurações",
		KeyReload:          "Recarregar",
		KeyOpenDeck:        "Abrir baralho",
		KeySwipeThreshold:  "Limite do deslize",
		KeyRotationDivisor: "Divisor de rotação",
		KeyDeckFile:        "Arquivo do baralho",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeySwipedLeft:      "Deslizou para a esquerda: %s",
		KeySwipedRight:     "Deslizou para a direita: %s",
		KeyNoMoreCards:     "Sem mais cartões",
		KeyCardsLeft:       "Cartões restantes: %d",
		KeyErrorLoadDeck:   "Erro ao carregar baralho",
		KeyBuiltInDeck:     "Baralho embutido",
	}
}
