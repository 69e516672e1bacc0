// Package i18n localizes the tool's own usage text and diagnostics.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Xuanwo/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	once      sync.Once
)

// Init loads every embedded locales/*.toml file and selects the UI language.
// Only the first call has an effect. If lang is empty the system locales are
// detected (LANGUAGE > LC_ALL > LC_MESSAGES > LANG).
func Init(lang string) {
	once.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, _ := fs.Glob(localeFS, "locales/*.toml")
		for _, file := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
				panic(fmt.Sprintf("i18n: load %s: %v", file, err))
			}
		}

		localizer = i18n.NewLocalizer(bundle, preferred(lang)...)
	})
}

func preferred(lang string) []string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return []string{lang}
	}
	tags, err := locale.DetectAll()
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(tags))
	for _, tag := range tags {
		langs = append(langs, tag.String())
	}
	return langs
}

// T returns the text for messageID, or messageID itself when it is unknown.
func T(messageID string) string {
	return Tf(messageID, nil)
}

// Tf is T with template data.
func Tf(messageID string, data map[string]interface{}) string {
	Init("")
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
