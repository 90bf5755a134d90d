package dto

// LocaleInfo describes one supported locale and the state of its catalog.
type LocaleInfo struct {
	Code   string `json:"code"`
	Cached bool   `json:"cached"`
	Loaded bool   `json:"loaded"`
}

type LocalesResponse struct {
	Default string       `json:"default"`
	Current string       `json:"current"`
	Locales []LocaleInfo `json:"locales"`
}

type TranslateResponse struct {
	Lang        string `json:"lang"`
	MsgID       string `json:"msgid"`
	Translation string `json:"translation"`
}
