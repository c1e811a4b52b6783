package i18n

import (
	"io/fs"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

type Config struct {
	Lang string `yaml:"lang" envconfig:"I18N_LANG" default:"en"`
}

// Translator resolves a message key to display text. The core only
// ever selects keys; it never builds user-facing prose itself.
type Translator interface {
	Resolve(key string) string
}

type translator struct {
	localizer *goi18n.Localizer
}

// NewTranslator loads every *.toml catalog from localesFS and
// resolves against lang with an english fallback.
func NewTranslator(localesFS fs.FS, lang string) (Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localesFS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "read locales dir")
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localesFS, entry.Name()); err != nil {
			return nil, errors.Wrapf(err, "load catalog %s", entry.Name())
		}
	}

	return &translator{
		localizer: goi18n.NewLocalizer(bundle, lang, language.English.String()),
	}, nil
}

// Resolve falls back to the key itself for unknown messages so a
// missing catalog entry never breaks a response.
func (t *translator) Resolve(key string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
