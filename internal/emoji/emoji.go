package emoji

import (
	"sync/atomic"

	"github.com/yildizm/ClinicInfo/internal/roster"
)

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"clinic":    {"🏥", "[CLN]"},
	"group":     {"🗂️", "[GRP]"},
	"region":    {"🗺️", "[REG]"},
	"area":      {"📍", "[AREA]"},
	"people":    {"👥", "[REP]"},
	"info":      {"ℹ️", "[INF]"},
	"search":    {"🔍", "[FIND]"},
	"number":    {"🔢", "[#]"},
	"not_found": {"❓", "[N/A]"},
	"error":     {"❌", "[ERR]"},
	"warning":   {"⚠️", "[WRN]"},
	"success":   {"✅", "[OK]"},
	"reload":    {"🔄", "[RLD]"},
	"roster":    {"📋", "[LIST]"},
	"help":      {"❓", "[?]"},
	"door":      {"🚪", "[EXIT]"},
}

var emojiDisabled atomic.Bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled.Store(disabled)
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled.Load()
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if IsEmojiDisabled() {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]" // unknown key
}

// ForLevel returns the symbol for a drill-down level
func ForLevel(level roster.Level) string {
	switch level {
	case roster.LevelGroup:
		return GetEmoji("group")
	case roster.LevelRegion:
		return GetEmoji("region")
	case roster.LevelArea:
		return GetEmoji("area")
	default:
		return GetEmoji("clinic")
	}
}
