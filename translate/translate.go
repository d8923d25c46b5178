// Package translate formats user-facing strings in the runtime locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

// detect returns the user's preferred locales, en-US when unknown.
func detect() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("uasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

func init() {
	printer = message.NewPrinter(message.MatchLanguage(detect()...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
