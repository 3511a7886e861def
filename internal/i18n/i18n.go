// Package i18n traduce los mensajes visibles al usuario. Los textos viven en
// archivos TOML embebidos; el español es el idioma por defecto.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// DefaultLanguage idioma usado cuando el pedido no tiene traducción.
var DefaultLanguage = language.Spanish

// Translator traduce a un idioma fijo elegido al arrancar.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New carga los mensajes embebidos y devuelve un traductor para lang (es, en, es-CO...).
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: leer mensajes: %w", err)
	}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".toml") {
			continue
		}
		data, err := locales.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: leer %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("i18n: interpretar %s: %w", f.Name(), err)
		}
	}

	tag := language.Make(normalizeLang(lang))
	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String()),
		tag:       tag,
	}, nil
}

// Tag idioma pedido al crear el traductor.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T traduce un mensaje sin parámetros.
func (t *Translator) T(msgID string) string {
	return t.Tf(msgID, nil)
}

// Tf traduce un mensaje con datos de plantilla. Si no hay traducción devuelve msgID.
func (t *Translator) Tf(msgID string, data map[string]any) string {
	lc := &i18n.LocalizeConfig{MessageID: msgID}
	if len(data) > 0 {
		lc.TemplateData = data
	}
	msg, err := t.localizer.Localize(lc)
	if err != nil {
		return msgID
	}
	return msg
}

// normalizeLang reduce "es-CO" o "EN_us" al código base.
func normalizeLang(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	code := strings.ToLower(strings.Split(lang, "-")[0])
	if code == "" {
		return DefaultLanguage.String()
	}
	return code
}
