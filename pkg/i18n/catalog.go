package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/leonelquinteros/gotext"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"gin-i18n/pkg/utils"
)

// Catalog holds the translations of one domain for one locale.
type Catalog interface {
	// Lookup returns the translation of msgid, or msgid and false when the catalog has none.
	Lookup(msgid string) (string, bool)
	// LookupPlural returns the form of msgid/plural selected by n.
	LookupPlural(msgid, plural string, n int) (string, bool)
}

// CatalogLoader loads the catalog of domain for the locale code under dir.
type CatalogLoader func(domain, dir, code string) (Catalog, error)

// gettext layouts, relative to <dir>/<code>, in lookup order.
var gettextLayouts = []string{
	filepath.Join("LC_MESSAGES", "%s.mo"),
	filepath.Join("LC_MESSAGES", "%s.po"),
	"%s.mo",
	"%s.po",
}

// key/value formats understood by go-i18n, in lookup order.
var bundleFormats = []string{"toml", "json", "yaml", "yml"}

// LoadCatalog is the default CatalogLoader. It looks for a gettext catalog first
// (<dir>/<code>/LC_MESSAGES/<domain>.mo|.po) and then for a go-i18n message file
// (<dir>/<code>/<domain>.toml|.json|.yaml|.yml).
func LoadCatalog(domain, dir, code string) (Catalog, error) {
	if err := utils.ValidateLocaleCode(code); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocaleCode, code, err)
	}

	root := filepath.Join(dir, code)
	for _, layout := range gettextLayouts {
		path := filepath.Join(root, fmt.Sprintf(layout, domain))
		if isFile(path) {
			return loadGettextCatalog(path)
		}
	}
	for _, format := range bundleFormats {
		path := filepath.Join(root, domain+"."+format)
		if isFile(path) {
			return loadBundleCatalog(path, format, code)
		}
	}
	return nil, fmt.Errorf("%w: domain %q, locale %q in %s", ErrCatalogNotFound, domain, code, dir)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readCatalogFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToParseFile, path)
	}
	return buf, nil
}

// gettextTranslator is the part of gotext.Po and gotext.Mo used here.
type gettextTranslator interface {
	Parse(buf []byte)
	Get(str string, vars ...interface{}) string
	GetN(str, plural string, n int, vars ...interface{}) string
	IsTranslated(str string) bool
	IsTranslatedN(str string, n int) bool
}

type gettextCatalog struct {
	tr gettextTranslator
}

func loadGettextCatalog(path string) (Catalog, error) {
	buf, err := readCatalogFile(path)
	if err != nil {
		return nil, err
	}

	var tr gettextTranslator
	if strings.HasSuffix(path, ".mo") {
		tr = gotext.NewMo()
	} else {
		tr = gotext.NewPo()
	}
	tr.Parse(buf)
	return &gettextCatalog{tr: tr}, nil
}

// gotext answers with the message id itself when it has no translation, so
// presence is checked separately: a msgstr may equal its msgid.
func (c *gettextCatalog) Lookup(msgid string) (string, bool) {
	return c.tr.Get(msgid), c.tr.IsTranslated(msgid)
}

func (c *gettextCatalog) LookupPlural(msgid, plural string, n int) (string, bool) {
	return c.tr.GetN(msgid, plural, n), c.tr.IsTranslatedN(msgid, n)
}

type bundleCatalog struct {
	localizer *goi18n.Localizer
}

func loadBundleCatalog(path, format, code string) (Catalog, error) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocaleCode, code, err)
	}

	buf, err := readCatalogFile(path)
	if err != nil {
		return nil, err
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	// go-i18n takes the language from the file name, so name the file after the tag.
	if _, err := bundle.ParseMessageFileBytes(buf, tag.String()+"."+format); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", path, err))
	}
	return &bundleCatalog{localizer: goi18n.NewLocalizer(bundle, tag.String())}, nil
}

func (c *bundleCatalog) Lookup(msgid string) (string, bool) {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: msgid})
	if err != nil {
		return msgid, false
	}
	return msg, true
}

func (c *bundleCatalog) LookupPlural(msgid, plural string, n int) (string, bool) {
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:   msgid,
		PluralCount: n,
	})
	if err != nil {
		if n == 1 {
			return msgid, false
		}
		return plural, false
	}
	return msg, true
}
