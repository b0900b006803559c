// Package translate formats user-facing messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the locale used when the system reports none.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter(systemLocales()...)
}

// systemLocales returns the user's preferred locales, most preferred first.
func systemLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("minicomp: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return locales
}

// NewPrinter returns a message printer for the best match of locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		return message.NewPrinter(language.AmericanEnglish)
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
