package i18n

import "errors"

var (
	// Construction
	ErrLocaleDirNotFound = errors.New("no locale directory found, please assign a right one")
	ErrEmptyDomain       = errors.New("translation domain is empty")

	// Accept-Language parsing
	ErrMalformedAcceptLanguage = errors.New("malformed Accept-Language entry")
	ErrAcceptLanguageTooLong   = errors.New("Accept-Language header too long")

	// Catalog loading
	ErrCatalogNotFound   = errors.New("no catalog file found")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrInvalidLocaleCode = errors.New("invalid locale code")
)
