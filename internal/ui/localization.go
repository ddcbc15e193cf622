package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyAddHobby            = "add_hobby"
	KeyEnterHobbyName      = "enter_hobby_name"
	KeySelectEmoji         = "select_emoji"
	KeySubmit              = "submit"
	KeyBack                = "back"
	KeyError               = "error"
	KeyHobbyExists         = "hobby_exists"
	KeyNameLengthHint      = "name_length_hint"
	KeyEmptyList           = "empty_list"
	KeyDelete              = "delete"
	KeyCancel              = "cancel"
	KeyConfirmDeleteTitle  = "confirm_delete_title"
	KeyConfirmDeleteOne    = "confirm_delete_one"
	KeyConfirmDeleteMany   = "confirm_delete_many"
	KeyHobbyAdded          = "hobby_added"
	KeyListChanged         = "list_changed"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyTheme               = "theme"
	KeyConfirmBeforeDelete = "confirm_before_delete"
	KeySave                = "save"
	KeySettingsSaved       = "settings_saved"
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

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Hobby Tracker",
		KeyAddHobby:            "Add Hobby",
		KeyEnterHobbyName:      "Enter hobby name",
		KeySelectEmoji:         "Select an emoji",
		KeySubmit:              "Submit",
		KeyBack:                "Back",
		KeyError:               "Error",
		KeyHobbyExists:         "Hobby already exists.",
		KeyNameLengthHint:      "3-16 characters",
		KeyEmptyList:           "Add a Hobby using the '+' Button",
		KeyDelete:              "Delete",
		KeyCancel:              "Cancel",
		KeyConfirmDeleteTitle:  "Delete",
		KeyConfirmDeleteOne:    "Delete %s?",
		KeyConfirmDeleteMany:   "Delete %d hobbies?",
		KeyHobbyAdded:          "Hobby added",
		KeyListChanged:         "The list changed, please try again",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyTheme:               "Theme",
		KeyConfirmBeforeDelete: "Confirm before deleting",
		KeySave:                "Save",
		KeySettingsSaved:       "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Мои хобби",
		KeyAddHobby:            "Новое хобби",
		KeyEnterHobbyName:      "Введите название хобби",
		KeySelectEmoji:         "Выберите эмодзи",
		KeySubmit:              "Добавить",
		KeyBack:                "Назад",
		KeyError:               "Ошибка",
		KeyHobbyExists:         "Такое хобби уже есть.",
		KeyNameLengthHint:      "3-16 символов",
		KeyEmptyList:           "Добавьте хобби кнопкой '+'",
		KeyDelete:              "Удалить",
		KeyCancel:              "Отмена",
		KeyConfirmDeleteTitle:  "Удаление",
		KeyConfirmDeleteOne:    "Удалить %s?",
		KeyConfirmDeleteMany:   "Удалить хобби: %d?",
		KeyHobbyAdded:          "Хобби добавлено",
		KeyListChanged:         "Список изменился, попробуйте снова",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyTheme:               "Тема",
		KeyConfirmBeforeDelete: "Подтверждать удаление",
		KeySave:                "Сохранить",
		KeySettingsSaved:       "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Meus Hobbies",
		KeyAddHobby:            "Adicionar Hobby",
		KeyEnterHobbyName:      "Digite o nome do hobby",
		KeySelectEmoji:         "Escolha um emoji",
		KeySubmit:              "Enviar",
		KeyBack:                "Voltar",
		KeyError:               "Erro",
		KeyHobbyExists:         "Esse hobby já existe.",
		KeyNameLengthHint:      "3-16 caracteres",
		KeyEmptyList:           "Adicione um hobby com o botão '+'",
		KeyDelete:              "Excluir",
		KeyCancel:              "Cancelar",
		KeyConfirmDeleteTitle:  "Excluir",
		KeyConfirmDeleteOne:    "Excluir %s?",
		KeyConfirmDeleteMany:   "Excluir %d hobbies?",
		KeyHobbyAdded:          "Hobby adicionado",
		KeyListChanged:         "A lista mudou, tente novamente",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyTheme:               "Tema",
		KeyConfirmBeforeDelete: "Confirmar antes de excluir",
		KeySave:                "Salvar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
	}
}
