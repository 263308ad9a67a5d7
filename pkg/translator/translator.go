package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the built-in messages when set.
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		fsys fs.FS = embedded
		dir        = "translation"
	)
	if cfg.TranslationFolder != "" {
		fsys = os.DirFS(cfg.TranslationFolder)
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range entries {
		if f.IsDir() {
			continue
		}
		name := path.Join(dir, f.Name())
		if _, err := Translator.LoadMessageFileFS(fsys, name); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// Supported reports whether lang is one of the configured languages.
func Supported(cfg Config, lang string) bool {
	for _, l := range cfg.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Localize returns the message for id in lang, or id itself.
func Localize(id, lang string, data map[string]any) string {
	if Translator == nil {
		return id
	}
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}
