// Package text holds the player-facing strings, loaded from an embedded
// gettext catalogue.
package text

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var enCatalogue []byte

// HelpPages is the number of instruction pages.
const HelpPages = 5

var (
	once sync.Once
	po   *gotext.Po

	// lookup is called through a variable so vet does not treat the
	// runtime key as a printf format.
	lookup = (*gotext.Po).Get
)

func catalogue() *gotext.Po {
	once.Do(func() {
		po = gotext.NewPo()
		po.Parse(enCatalogue)
	})
	return po
}

// Get translates a key, formatting it with args when given.
// Unknown keys come back unchanged.
func Get(key string, args ...interface{}) string {
	s := lookup(catalogue(), key)
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

// HelpPage returns instruction page n (0-based).
func HelpPage(n int) string {
	if n < 0 || n >= HelpPages {
		return ""
	}
	return Get(fmt.Sprintf("HELP_PAGE_%d", n+1))
}

// OnOff renders a toggle.
func OnOff(on bool) string {
	if on {
		return Get("ON")
	}
	return Get("OFF")
}
