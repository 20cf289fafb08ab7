package dateutil

import (
	"strings"
	"sync"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// localeTable pairs every locale known to monday with its language tag.
// American English comes first and is the matcher's fallback.
type localeTable struct {
	locales []monday.Locale
	matcher language.Matcher
}

var locales = sync.OnceValue(func() *localeTable {
	tbl := &localeTable{locales: []monday.Locale{monday.LocaleEnUS}}
	tags := []language.Tag{language.AmericanEnglish}

	for _, l := range monday.ListLocales() {
		if l == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		tbl.locales = append(tbl.locales, l)
		tags = append(tags, tag)
	}

	tbl.matcher = language.NewMatcher(tags)
	return tbl
})

// nameLocale returns the best monday locale for tag, falling back to
// American English when no locale of the same language exists.
func nameLocale(tag language.Tag) monday.Locale {
	tbl := locales()
	_, idx, conf := tbl.matcher.Match(tag)
	if conf == language.No {
		return monday.LocaleEnUS
	}
	return tbl.locales[idx]
}
