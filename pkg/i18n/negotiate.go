package i18n

import (
	"fmt"
	"strings"
)

// maxAcceptLanguageLength caps the header size accepted by ParseAcceptLanguage.
const maxAcceptLanguageLength = 4096

// defaultQuality is assigned to entries that carry no parameters.
const defaultQuality = "1"

// LanguagePair is one entry of an Accept-Language header.
// Quality is kept as sent by the client; it does not affect ordering.
type LanguagePair struct {
	Tag     string
	Quality string
}

// ParseAcceptLanguage splits an Accept-Language header into pairs, keeping header order.
//
// An entry without parameters gets quality "1". An entry with parameters must carry a
// q=value parameter right after the tag, otherwise ErrMalformedAcceptLanguage is returned.
// An empty header yields no pairs and no error.
func ParseAcceptLanguage(header string) ([]LanguagePair, error) {
	if header == "" {
		return nil, nil
	}
	if len(header) > maxAcceptLanguageLength {
		return nil, ErrAcceptLanguageTooLong
	}

	var pairs []LanguagePair
	for _, entry := range strings.Split(header, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		params := strings.Split(entry, ";")
		tag := strings.TrimSpace(params[0])
		if len(params) == 1 {
			pairs = append(pairs, LanguagePair{Tag: tag, Quality: defaultQuality})
			continue
		}

		key, value, ok := strings.Cut(params[1], "=")
		if !ok || strings.TrimSpace(key) != "q" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAcceptLanguage, entry)
		}
		pairs = append(pairs, LanguagePair{Tag: tag, Quality: strings.TrimSpace(value)})
	}
	return pairs, nil
}

// matchLocale reports whether a client tag selects the supported locale code.
// en-US, en_us and en all select "en"; de-AT selects "de" but not "de_DE".
func matchLocale(tag, locale string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(tag, "-", "_"))
	return strings.HasPrefix(normalized, strings.ToLower(locale))
}

// Negotiator picks a supported locale for an Accept-Language header.
type Negotiator struct {
	Locales []string
	Default string
}

// Detect returns the first supported locale matched by the header, walking the header
// in client order and the locales in registration order. Quality values are ignored.
//
// A missing header returns the default. A malformed header returns the default together
// with the parse error so callers can decide whether to log it.
func (n Negotiator) Detect(header string) (string, error) {
	code, _, err := n.match(header)
	return code, err
}

func (n Negotiator) match(header string) (string, bool, error) {
	pairs, err := ParseAcceptLanguage(header)
	if err != nil {
		return n.Default, false, err
	}
	for _, pair := range pairs {
		for _, locale := range n.Locales {
			if matchLocale(pair.Tag, locale) {
				return locale, true, nil
			}
		}
	}
	return n.Default, false, nil
}
