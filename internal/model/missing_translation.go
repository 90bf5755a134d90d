package model

import "time"

// MissingTranslation counts lookups of a message id that a loaded catalog could not translate.
type MissingTranslation struct {
	BaseModel
	Locale     string    `gorm:"size:35;not null;uniqueIndex:idx_missing_key,priority:1" json:"locale"`
	Domain     string    `gorm:"size:64;not null;uniqueIndex:idx_missing_key,priority:2" json:"domain"`
	MsgID      string    `gorm:"size:512;not null;uniqueIndex:idx_missing_key,priority:3" json:"msgid"`
	Hits       int64     `gorm:"default:0" json:"hits"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}
