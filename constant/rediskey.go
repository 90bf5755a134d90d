package constant

import (
	"fmt"
	"strings"
)

// 常量定义
const (
	BasePrefix = "i18n:"
	Separator  = ":"

	// FieldSeparator joins locale and msgid in a counter hash field. Locale codes never contain it.
	FieldSeparator = "|"
)

// Redis 键模板
const (
	MissingDomains  = BasePrefix + "missing_domains"                     // i18n:missing_domains
	MissingCounter  = BasePrefix + "missing" + Separator + "%s"          // i18n:missing:domain
	MissingFlushing = BasePrefix + "missing_flushing" + Separator + "%s" // i18n:missing_flushing:domain
)

// GetMissingCounterKey 生成缺失翻译计数键（格式：i18n:missing:domain）
func GetMissingCounterKey(domain string) string {
	return fmt.Sprintf(MissingCounter, domain)
}

// GetMissingFlushingKey 生成正在落库的计数键（格式：i18n:missing_flushing:domain）
func GetMissingFlushingKey(domain string) string {
	return fmt.Sprintf(MissingFlushing, domain)
}

// GetMissingField 生成计数 hash 的字段（格式：locale|msgid）
func GetMissingField(locale, msgid string) string {
	return locale + FieldSeparator + msgid
}

// SplitMissingField 拆分 GetMissingField 生成的字段
func SplitMissingField(field string) (locale, msgid string, ok bool) {
	return strings.Cut(field, FieldSeparator)
}
