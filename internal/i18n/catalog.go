// Package i18n loads the UI copy catalogs and resolves the language of a request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every locale's messages and the x/text catalog built from them.
type Bundle struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
	cat      *catalog.Builder
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded(defaultLang string) (*Bundle, error) {
	return Load(embeddedLocales, defaultLang)
}

// Load reads locales/*.yaml from fsys. defaultLang must be one of the loaded
// locales; keys missing from another locale fall back to it.
func Load(fsys fs.FS, defaultLang string) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language %q: %w", defaultLang, err)
	}

	b := &Bundle{
		fallback: fallback,
		messages: make(map[language.Tag]map[string]string),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[fallback]; !ok {
		return nil, fmt.Errorf("default language %s has no catalog", fallback)
	}

	// the fallback locale leads so the matcher prefers it on ties
	sort.SliceStable(b.tags, func(i, j int) bool {
		return b.tags[i] == fallback && b.tags[j] != fallback
	})
	b.matcher = language.NewMatcher(b.tags)

	b.cat = catalog.NewBuilder(catalog.Fallback(fallback))
	base := b.messages[fallback]
	for _, tag := range b.tags {
		msgs := b.messages[tag]
		for key, value := range base {
			if _, ok := msgs[key]; !ok {
				msgs[key] = value
			}
		}
		for key, value := range msgs {
			if err := b.cat.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != name {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, name)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", p, err)
	}
	if _, exists := b.messages[tag]; exists {
		return fmt.Errorf("catalog %s: locale %s already loaded", p, tag)
	}

	msgs := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		msgs[key] = value
	}
	b.messages[tag] = msgs
	b.tags = append(b.tags, tag)
	return nil
}

// Default returns the fallback language.
func (b *Bundle) Default() language.Tag {
	return b.fallback
}

// Supported returns the loaded languages, fallback first.
func (b *Bundle) Supported() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Match maps requested tags onto a supported language.
func (b *Bundle) Match(requested ...language.Tag) language.Tag {
	if len(requested) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(requested...)
	if conf == language.No {
		return b.fallback
	}
	return b.tags[idx]
}

// Parse maps a language string onto a supported language. ok is false when
// the value is malformed or matches nothing.
func (b *Bundle) Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return b.fallback, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return b.fallback, false
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return b.fallback, false
	}
	return b.tags[idx], true
}

// Keys returns the message keys of the fallback locale, sorted.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.messages[b.fallback]))
	for key := range b.messages[b.fallback] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key exists for tag.
func (b *Bundle) Has(tag language.Tag, key string) bool {
	_, ok := b.messages[b.Match(tag)][key]
	return ok
}

// Localizer returns the message printer for tag.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	tag = b.Match(tag)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.cat)),
	}
}

// Localizer formats catalog messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Lang returns the language as an html lang attribute value.
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T formats the message for key. Unknown keys render as the key itself.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
