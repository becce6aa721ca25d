// internal/messages/catalog.go
//
// Localized text for the game, loaded from locale catalogs.
//
// Catalog files live under locales/<locale>.txt:
//
//	locale: "en-US"
//	"key": "format string"
//
// Blank lines and lines starting with '#' are ignored. The base locale must
// define every key in Keys; other locales may define a subset and fall back
// to the base text for the rest.
package messages

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/robalobadob/guess/assets"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Message keys.
const (
	KeyBanner        = "banner"
	KeyPromptFirst   = "prompt.first"
	KeyPromptNext    = "prompt.next"
	KeyTooHigh       = "guess.too_high"
	KeyTooLow        = "guess.too_low"
	KeyWon           = "result.won"
	KeyLost          = "result.lost"
	KeyLostRemaining = "result.lost.remaining"
	KeyLostGuess     = "result.lost.guess"
	KeyLostSecret    = "result.lost.secret"
	KeyInvalidInput  = "input.invalid"
)

// Keys lists every message the game prints.
var Keys = []string{
	KeyBanner,
	KeyPromptFirst,
	KeyPromptNext,
	KeyTooHigh,
	KeyTooLow,
	KeyWon,
	KeyLost,
	KeyLostRemaining,
	KeyLostGuess,
	KeyLostSecret,
	KeyInvalidInput,
}

// Bundle holds every loaded locale, registered in an x/text catalog.
type Bundle struct {
	locales map[string]map[string]string
	cat     *catalog.Builder
}

// LoadEmbedded loads the catalogs shipped in the assets package.
func LoadEmbedded() (*Bundle, error) {
	return Load(assets.FS)
}

// Load reads locales/*.txt from fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.txt")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	locales := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		lines, err := assets.ReadLines(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		locale, msgs, err := parseCatalog(lines)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if want := strings.TrimSuffix(path.Base(p), ".txt"); locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, want)
		}
		locales[locale] = msgs
	}

	base, ok := locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for _, k := range Keys {
		if _, ok := base[k]; !ok {
			return nil, fmt.Errorf("base locale %s: missing key %q", BaseLocale, k)
		}
	}

	b := &Bundle{locales: locales, cat: catalog.NewBuilder()}
	for locale, msgs := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		for k, v := range base {
			if msg, ok := msgs[k]; ok {
				v = msg
			}
			if err := b.cat.SetString(tag, k, v); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", locale, k, err)
			}
		}
		for k := range msgs {
			if _, ok := base[k]; !ok {
				return nil, fmt.Errorf("locale %s: key %q not defined in %s", locale, k, BaseLocale)
			}
		}
	}
	return b, nil
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for l := range b.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Printer returns a printer for locale, falling back to BaseLocale when the
// locale is unknown.
func (b *Bundle) Printer(locale string) *Printer {
	locale = strings.TrimSpace(locale)
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	tag := language.MustParse(locale)
	return &Printer{
		locale: locale,
		p:      message.NewPrinter(tag, message.Catalog(b.cat)),
	}
}

// Printer formats catalog messages for a single locale.
type Printer struct {
	locale string
	p      *message.Printer
}

// Locale reports the locale the printer resolved to.
func (p *Printer) Locale() string { return p.locale }

// Sprintf formats the message stored under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

func parseCatalog(lines []string) (string, map[string]string, error) {
	var locale string
	msgs := map[string]string{}
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, "locale:"); ok {
			v, err := strconv.Unquote(strings.TrimSpace(rest))
			if err != nil {
				return "", nil, fmt.Errorf("parse locale: %w", err)
			}
			locale = strings.TrimSpace(v)
			continue
		}
		k, v, err := parseEntry(line)
		if err != nil {
			return "", nil, fmt.Errorf("parse entry %q: %w", line, err)
		}
		if _, dup := msgs[k]; dup {
			return "", nil, fmt.Errorf("duplicate key %q", k)
		}
		msgs[k] = v
	}
	if locale == "" {
		return "", nil, fmt.Errorf("missing locale")
	}
	if len(msgs) == 0 {
		return "", nil, fmt.Errorf("missing messages")
	}
	return locale, msgs, nil
}

func parseEntry(line string) (string, string, error) {
	keyToken, rest, err := splitQuoted(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("blank key")
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(rest), ":")
	if !ok {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := strconv.Unquote(strings.TrimSpace(rest))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

// splitQuoted splits a leading double-quoted token from the rest of line.
func splitQuoted(line string) (string, string, error) {
	if !strings.HasPrefix(line, `"`) {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(line); i++ {
		switch {
		case escaped:
			escaped = false
		case line[i] == '\\':
			escaped = true
		case line[i] == '"':
			return line[:i+1], line[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
