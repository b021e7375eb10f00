package locale

import (
	"embed"
	"encoding/json"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed i18n/*.json
var messageFiles embed.FS

var bundle = loadBundle()

func loadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"i18n/en.json", "i18n/es.json"} {
		buf, err := messageFiles.ReadFile(name)
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(buf, name)
	}
	return b
}

// LoadLocalizer returns a localizer for lang that falls back to English
func LoadLocalizer(lang string) *i18n.Localizer {
	if lang != "" {
		return i18n.NewLocalizer(bundle, lang, "en")
	}
	return i18n.NewLocalizer(bundle, "en")
}

// Text localizes a message ID with optional template data
func Text(localizer *i18n.Localizer, id string, data interface{}) string {
	return localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}
