// Package locale loads the message catalogs compiled into the binary.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is requested
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogs embed.FS

// Load returns the catalog for lang.
func Load(lang string) (*gotext.Po, error) {
	data, err := catalogs.ReadFile("po/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("unknown language %q (available: %v)", lang, Languages())
	}

	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// Languages returns the codes of all embedded catalogs in sorted order.
func Languages() []string {
	entries, err := catalogs.ReadDir("po")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}
