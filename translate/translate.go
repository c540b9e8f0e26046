// Package translate formats user visible vm16 messages for the host locale.
package translate

import (
	"fmt"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("vm16: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Hex16 formats a 16-bit value as 0x followed by four lowercase hex digits.
// Hex digits are not localized.
func Hex16(value uint16) string {
	return fmt.Sprintf("0x%04x", value)
}

// Hex8 formats an 8-bit value as 0x followed by two lowercase hex digits.
func Hex8(value uint8) string {
	return fmt.Sprintf("0x%02x", value)
}
