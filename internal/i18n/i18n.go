// Package i18n localizes report output. Language is always an explicit
// parameter; nothing here inspects the environment.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *goi18n.Bundle
	locales    map[string]bool
)

func loadBundle() {
	bundleOnce.Do(func() {
		bundle = goi18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
		locales = make(map[string]bool)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			panic(fmt.Sprintf("i18n: reading embedded locales: %v", err))
		}
		for _, e := range entries {
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				panic(fmt.Sprintf("i18n: reading %s: %v", e.Name(), err))
			}
			mf, err := bundle.ParseMessageFileBytes(data, e.Name())
			if err != nil {
				panic(fmt.Sprintf("i18n: parsing %s: %v", e.Name(), err))
			}
			locales[mf.Tag.String()] = true
		}
	})
}

// Supported reports whether lang has an embedded locale file.
func Supported(lang string) bool {
	loadBundle()
	return locales[lang]
}

// SupportedLocales lists the embedded locales, sorted.
func SupportedLocales() []string {
	loadBundle()
	out := make([]string, 0, len(locales))
	for l := range locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// T translates a message ID in the given language, falling back to
// English, then to the ID itself.
func T(lang, messageID string, templateData ...map[string]any) string {
	loadBundle()
	l := goi18n.NewLocalizer(bundle, lang, "en")

	cfg := &goi18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}
	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// FormatClock renders an instant as a wall-clock time in loc, using the
// language's clock convention (12-hour for en, 24-hour for es).
func FormatClock(t time.Time, loc *time.Location, lang string) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(T(lang, "clock_layout"))
}

// FormatDuration renders a duration as whole hours and minutes, e.g.
// "7h 30m". Negative durations render as zero.
func FormatDuration(d time.Duration, lang string) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Minute) / time.Minute)
	return T(lang, "duration_hm", map[string]any{
		"Hours":   total / 60,
		"Minutes": total % 60,
	})
}
