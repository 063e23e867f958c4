// Package i18n provides localized messages for foundation error codes.
//
// Catalogs are in-code maps keyed by error code. Message values are
// text/template strings rendered with error metadata. All catalogs are
// registered with golang.org/x/text/message at init time so callers
// using a message.Printer resolve the same strings.
package i18n

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code is a machine-readable error code (duplicated from the errors
// package to avoid an import cycle).
type Code = string

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
)

func init() {
	mustRegister(enUSCatalog)
}

// NewCatalog creates a catalog for a locale from a code-to-template map.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	copied := make(map[Code]string, len(messages))
	for code, tmpl := range messages {
		copied[code] = tmpl
	}
	return &Catalog{locale: locale, messages: copied}
}

// GetCatalog returns the catalog for the given locale.
// Falls back to en-US if the locale is not found.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	if c, ok := catalogs[requested]; ok {
		return c
	}
	return catalogs[BaseLocale]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata so output
// stays consistent (template variables without metadata render empty).
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// mustRegister stores the catalog and registers its messages with
// x/text/message under the locale tag and its base language.
func mustRegister(c *Catalog) {
	tag, err := language.Parse(c.locale)
	if err != nil {
		panic(err)
	}
	tags := []language.Tag{tag}
	if base, _ := tag.Base(); base.String() != "" && base.String() != "und" {
		if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
			tags = append(tags, baseTag)
		}
	}

	codes := make([]string, 0, len(c.messages))
	for code := range c.messages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		for _, registerTag := range tags {
			message.SetString(registerTag, code, c.messages[code])
		}
	}

	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[c.locale] = c
}
