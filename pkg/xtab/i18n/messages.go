// Package i18n provides localized crosstab messages.
package i18n

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	InvalidDimensionRow    = "CrosstabQueryHelper.error.invalid.dimension.row"
	InvalidDimensionColumn = "CrosstabQueryHelper.error.invalid.dimension.column"
	InvalidLevelRow        = "CrosstabQueryHelper.error.invalid.level.row"
	InvalidLevelColumn     = "CrosstabQueryHelper.error.invalid.level.column"
	HeaderEditRejected     = "CrosstabUtil.error.header.edit"
	ReadOnlyElement        = "CrosstabUtil.error.readonly"
)

var supported = []language.Tag{language.English, language.German}

var catalog = map[language.Tag]map[string]string{
	language.English: {
		InvalidDimensionRow:    "The dimension %q on the row area cannot be found in the cube.",
		InvalidDimensionColumn: "The dimension %q on the column area cannot be found in the cube.",
		InvalidLevelRow:        "The level %q on the row area cannot be found in the cube.",
		InvalidLevelColumn:     "The level %q on the column area cannot be found in the cube.",
		HeaderEditRejected:     "The header of crosstab %q cannot be changed (%s).",
		ReadOnlyElement:        "The crosstab %q extends %q and cannot be edited.",
	},
	language.German: {
		InvalidDimensionRow:    "Die Dimension %q im Zeilenbereich wurde im Cube nicht gefunden.",
		InvalidDimensionColumn: "Die Dimension %q im Spaltenbereich wurde im Cube nicht gefunden.",
		InvalidLevelRow:        "Die Ebene %q im Zeilenbereich wurde im Cube nicht gefunden.",
		InvalidLevelColumn:     "Die Ebene %q im Spaltenbereich wurde im Cube nicht gefunden.",
		HeaderEditRejected:     "Der Kopfbereich der Kreuztabelle %q kann nicht geändert werden (%s).",
		ReadOnlyElement:        "Die Kreuztabelle %q erweitert %q und kann nicht bearbeitet werden.",
	},
}

var (
	matcher = language.NewMatcher(supported)
	current atomic.Pointer[message.Printer]
)

func init() {
	for tag, messages := range catalog {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	current.Store(Printer(""))
}

// Printer returns a printer for the closest supported locale. Unknown or empty
// locales fall back to English.
func Printer(locale string) *message.Printer {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, index, _ := matcher.Match(parsed)
			tag = supported[index]
		}
	}
	return message.NewPrinter(tag)
}

// SetLocale changes the locale used by Sprintf.
func SetLocale(locale string) {
	current.Store(Printer(locale))
}

// Sprintf formats the message registered under key in the current locale.
func Sprintf(key string, args ...interface{}) string {
	return current.Load().Sprintf(key, args...)
}
