package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"studytime/pkg/translator"
)

func TestInitTranslator_Embedded(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	if got := translator.Localize("noSubjects", translator.LanguageEn, nil); got != "Please add a subject to start studying!" {
		t.Errorf("unexpected en message %q", got)
	}
	if got := translator.Localize("noSubjectSelected", translator.LanguageFr, nil); got != "Sélectionnez d'abord une matière !" {
		t.Errorf("unexpected fr message %q", got)
	}
	// Unknown language falls back to English.
	if got := translator.Localize("notFound", "de", nil); got != "Not found." {
		t.Errorf("unexpected fallback message %q", got)
	}
	if got := translator.Localize("missingKey", translator.LanguageEn, nil); got != "missingKey" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestInitTranslator_Folder(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`hello = "Hello english"`)
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), content, 0644); err != nil {
		t.Fatalf("failed to write en.toml: %v", err)
	}

	translator.InitTranslator(translator.Config{TranslationFolder: dir})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if msg != "Hello english" {
		t.Errorf("expected %q, got %q", "Hello english", msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{TranslationFolder: "/path/does/not/exist"})
	if got := translator.Localize("noSubjects", translator.LanguageEn, nil); got != "noSubjects" {
		t.Errorf("expected key fallback, got %q", got)
	}
}

func TestSupported(t *testing.T) {
	cfg := translator.Config{SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr}}
	if !translator.Supported(cfg, "fr") || translator.Supported(cfg, "de") {
		t.Errorf("unexpected Supported result")
	}
}
