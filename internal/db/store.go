package db

import (
	"strings"

	"gorm.io/gorm"
)

const (
	maxNameLength      = 40
	minNameLength      = 3
	maxModeLength      = 20
	maxResultLength    = 20
	maxEventTypeLength = 40

	defaultMode   = "survival"
	defaultResult = "defeat"
)

// Store executes the core operations against an injected GORM handle. Each
// method is one short-lived statement scope; nothing is cached in memory.
type Store struct {
	conn *gorm.DB
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{conn: conn}
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max])
	}
	return text
}

func normalizeText(text string, max int) string {
	return truncate(strings.TrimSpace(text), max)
}

func clampLimit(limit, min, max int) int {
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
