package i18n

import (
	"context"
	"fmt"
)

// MissingRecorder is told about message ids a loaded catalog could not translate.
type MissingRecorder interface {
	RecordMissing(ctx context.Context, locale, domain, msgid string)
}

// MissingRecorderFunc adapts a function to MissingRecorder.
type MissingRecorderFunc func(ctx context.Context, locale, domain, msgid string)

func (f MissingRecorderFunc) RecordMissing(ctx context.Context, locale, domain, msgid string) {
	f(ctx, locale, domain, msgid)
}

// Translator translates messages for one request and one locale.
//
// A Translator without a catalog passes message ids through unchanged. A nil
// *Translator behaves the same way, so handlers never need to check for one.
type Translator struct {
	ctx      context.Context
	locale   string
	domain   string
	catalog  Catalog
	recorder MissingRecorder
}

// Lang returns the locale code the translator was resolved for.
func (t *Translator) Lang() string {
	if t == nil {
		return ""
	}
	return t.locale
}

// Loaded reports whether a catalog backs the translator.
func (t *Translator) Loaded() bool {
	return t != nil && t.catalog != nil
}

// WithoutRecorder returns a copy of t that does not report missing message
// ids, for lookups of ids that do not come from the application.
func (t *Translator) WithoutRecorder() *Translator {
	if t == nil {
		return nil
	}
	clone := *t
	clone.recorder = nil
	return &clone
}

// T translates msgid. When args are given the translation is used as a printf format.
func (t *Translator) T(msgid string, args ...any) string {
	s := msgid
	if t.Loaded() {
		var ok bool
		if s, ok = t.catalog.Lookup(msgid); !ok {
			t.missing(msgid)
		}
	}
	return format(s, args)
}

// N translates a message with a plural form selected by n.
func (t *Translator) N(msgid, plural string, n int, args ...any) string {
	if !t.Loaded() {
		if n == 1 {
			return format(msgid, args)
		}
		return format(plural, args)
	}
	s, ok := t.catalog.LookupPlural(msgid, plural, n)
	if !ok {
		t.missing(msgid)
	}
	return format(s, args)
}

func (t *Translator) missing(msgid string) {
	if t.recorder == nil {
		return
	}
	ctx := t.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	t.recorder.RecordMissing(ctx, t.locale, t.domain, msgid)
}

func format(s string, args []any) string {
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
