package types

import (
	"strings"
	"time"
)

// Participant origins. A record carries the origin of its creation path
// for the lifetime of the store.
const (
	OriginLegacy   = "LEGACY"
	OriginNew      = "NEW"
	OriginPending  = "PENDING"
	OriginImported = "IMPORTED"
)

// validOrigins is the set of recognized origin values.
var validOrigins = map[string]bool{
	OriginLegacy:   true,
	OriginNew:      true,
	OriginPending:  true,
	OriginImported: true,
}

// Participant represents one slot on the board. The JSON field names
// match the array format persisted by earlier deployments, so a dump of
// the old storage key loads unchanged.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Origin    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
	Label     string `json:"label,omitempty"`
	Lit       bool   `json:"isLit"`
}

// NormalizeName reduces a display name to its matching form: trimmed
// and lower-cased. Name equality anywhere in the system goes through
// this; the stored Name keeps its original casing.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether two display names refer to the same
// participant.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// ValidOrigin reports whether origin is a recognized origin value.
func ValidOrigin(origin string) bool {
	return validOrigins[origin]
}

// Light marks the participant as lit and refreshes the timestamp.
// Idempotent: lighting a lit participant only refreshes the timestamp.
func (p *Participant) Light(now time.Time) {
	p.Lit = true
	p.Timestamp = now.UnixMilli()
}

// NowMillis returns the current time as a millisecond epoch, the
// timestamp unit used throughout the record format.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
