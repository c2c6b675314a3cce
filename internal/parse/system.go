package parse

import (
	"regexp"
	"strings"
)

// systemMarkers are lowercase phrases that mark group-management,
// encryption, call and deletion events. A line whose author+content
// contains one of these is a system event even when it matched a regular
// message pattern ("User changed the group icon" still carries a colon).
// English and Hebrew exports are covered; config can append more.
var systemMarkers = []string{
	// group management
	"created group",
	"added",
	"removed",
	"left",
	"joined",
	"changed the group name",
	"changed the group description",
	"changed the group icon",
	"changed the group settings",
	"promoted",
	"demoted",
	// security / encryption
	"messages and calls are end-to-end encrypted",
	"security code changed",
	// calls and deletions
	"missed call",
	"missed voice call",
	"missed video call",
	"deleted this message",
	"this message was deleted",
	// Hebrew equivalents
	"יצר קבוצה",
	"הוסיף",
	"הסיר",
	"עזב",
	"הצטרף",
	"שינה את שם הקבוצה",
	"שינה את תיאור הקבוצה",
	"שינה את תמונת הקבוצה",
}

var phoneNumberRe = regexp.MustCompile(`^\+?\d{10,15}$`)

// isSystemMessage checks the author+content concatenation against the
// marker list, case-insensitively.
func (p *Parser) isSystemMessage(author, content string) bool {
	full := strings.ToLower(author + " " + content)
	for _, marker := range p.markers {
		if strings.Contains(full, marker) {
			return true
		}
	}
	return false
}

// isValidParticipant filters out system actors, anomalously long author
// strings (misparsed system text) and phone-number-only identifiers. Their
// messages are still kept under that author string.
func (p *Parser) isValidParticipant(author, content string) bool {
	if p.isSystemMessage(author, content) {
		return false
	}
	if len(author) > 50 {
		return false
	}
	if phoneNumberRe.MatchString(strings.TrimSpace(author)) {
		return false
	}
	return true
}
