package parse

import (
	"bufio"
	"sort"
	"strings"
	"time"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

// SystemAuthor is the sentinel author for lines with no named actor.
const SystemAuthor = "System"

// Parser converts a raw transcript into a ChatData. The zero value is not
// usable; construct with New.
type Parser struct {
	markers []string
	debugf  func(format string, args ...interface{})
	now     func() time.Time

	diag Diagnostics
}

// Option configures a Parser.
type Option func(*Parser)

// WithDebugLogger installs a per-line diagnostic sink. Nil (the default)
// disables line logging entirely.
func WithDebugLogger(f func(format string, args ...interface{})) Option {
	return func(p *Parser) { p.debugf = f }
}

// WithSystemMarkers appends extra lowercase system-event phrases, e.g. for
// transcripts exported in a language the built-in list does not cover.
func WithSystemMarkers(markers []string) Option {
	return func(p *Parser) {
		for _, m := range markers {
			p.markers = append(p.markers, strings.ToLower(m))
		}
	}
}

// withClock overrides the fallback-timestamp clock. Test hook.
func withClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

func New(opts ...Option) *Parser {
	p := &Parser{
		markers: systemMarkers,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns the counters from the most recent Parse call.
func (p *Parser) Diagnostics() Diagnostics {
	return p.diag
}

// Parse converts the full transcript text into an ordered message sequence
// and a participant set. Malformed input never fails: unrecognized lines
// are dropped, unparsable timestamps fall back to the current time, and an
// empty transcript yields an empty message list.
func (p *Parser) Parse(text string) ChatData {
	p.diag = Diagnostics{}

	var messages []Message
	participants := make(map[string]struct{})
	var order []string

	var current *Message

	seal := func() {
		if current != nil {
			messages = append(messages, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p.diag.TotalLines++

		if m, pat := matchLine(messagePatterns, line); m != nil {
			seal()
			p.diag.MatchedMessages++

			author := strings.TrimSpace(m[3])
			content := strings.TrimSpace(m[4])
			isSystem := p.isSystemMessage(author, content)

			if !isSystem && p.isValidParticipant(author, content) {
				if _, ok := participants[author]; !ok {
					participants[author] = struct{}{}
					order = append(order, author)
				}
			}

			current = &Message{
				Timestamp:       p.timestampOrNow(m[1], m[2], pat.family),
				Author:          author,
				Content:         content,
				IsSystemMessage: isSystem,
			}
			continue
		}

		if m, pat := matchLine(systemPatterns, line); m != nil {
			seal()
			p.diag.MatchedSystem++

			current = &Message{
				Timestamp:       p.timestampOrNow(m[1], m[2], pat.family),
				Author:          SystemAuthor,
				Content:         strings.TrimSpace(m[3]),
				IsSystemMessage: true,
			}
			continue
		}

		if current != nil {
			// Continuation of a multi-line chat bubble.
			current.Content += "\n" + line
			p.diag.ContinuationLines++
			continue
		}

		p.diag.UnmatchedLines++
		if p.debugf != nil {
			p.debugf("unmatched line: %s", line)
		}
	}
	seal()

	// Stable: continuation-merged records keep their relative order when
	// timestamps tie.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	chat := ChatData{
		Messages:      messages,
		Participants:  order,
		TotalMessages: len(messages),
	}
	if len(messages) > 0 {
		chat.DateRange = DateRange{
			Start: messages[0].Timestamp,
			End:   messages[len(messages)-1].Timestamp,
		}
	} else {
		now := p.now()
		chat.DateRange = DateRange{Start: now, End: now}
	}
	return chat
}

// matchLine runs the ordered pattern list and returns the first match.
func matchLine(patterns []linePattern, line string) ([]string, *linePattern) {
	for i := range patterns {
		if m := patterns[i].re.FindStringSubmatch(line); m != nil {
			return m, &patterns[i]
		}
	}
	return nil, nil
}

func (p *Parser) timestampOrNow(dateTok, timeTok string, family dateFamily) time.Time {
	t := parseTimestamp(dateTok, timeTok, family)
	if t.IsZero() {
		p.diag.FallbackTimestamps++
		if p.debugf != nil {
			p.debugf("unparsable timestamp: %s %s", dateTok, timeTok)
		}
		return p.now()
	}
	return t
}

// Parse is the package-level convenience entry point with default options.
func Parse(text string) ChatData {
	return New().Parse(text)
}
