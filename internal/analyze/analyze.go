package analyze

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/tomerva/chatscope/internal/parse"
)

const topWordLimit = 50

// Analyzer computes derived statistics over a message sequence. The zero
// value uses the built-in English stop-word set; construct with New to
// inject extra stop words or a different word limit.
type Analyzer struct {
	stopWords map[string]struct{}
	topWords  int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStopWords appends extra lowercase stop words, e.g. for non-English
// transcripts where the built-in English list under-filters.
func WithStopWords(words []string) Option {
	return func(a *Analyzer) {
		for _, w := range words {
			a.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithTopWords overrides the word-frequency result size.
func WithTopWords(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topWords = n
		}
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		stopWords: make(map[string]struct{}, len(englishStopWords)),
		topWords:  topWordLimit,
	}
	for _, w := range englishStopWords {
		a.stopWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes all statistics over the chat, optionally restricted to a
// window. A nil window means "analyze everything". The call is a stateless
// pure transform; re-running it with the same inputs yields identical
// results, and every aggregation tolerates empty input.
func (a *Analyzer) Analyze(chat parse.ChatData, window *parse.DateRange) AnalyticsData {
	msgs := filterByWindow(chat.Messages, window)
	authored := authoredOnly(msgs)

	return AnalyticsData{
		MessagesByDay:         messagesByDay(authored),
		MessagesByHour:        messagesByHour(authored),
		MessagesByParticipant: messagesByParticipant(authored),
		WordFrequency:         a.wordFrequency(authored),
		AverageMessageLength:  averageMessageLength(authored),
		MostActiveDay:         mostActiveDay(messagesByDay(authored)),
		MostActiveHour:        mostActiveHour(messagesByHour(authored)),
		ResponseTimes:         responseTimes(authored),
		ConversationStarters:  conversationStarters(authored),
		EmojiAnalysis:         emojiAnalysis(authored),
		FilteredMessageCount:  len(authored),
		TotalMessageCount:     chat.TotalMessages,
	}
}

// Analyze runs with default options.
func Analyze(chat parse.ChatData, window *parse.DateRange) AnalyticsData {
	return New().Analyze(chat, window)
}

func filterByWindow(msgs []parse.Message, window *parse.DateRange) []parse.Message {
	if window == nil {
		return msgs
	}
	out := make([]parse.Message, 0, len(msgs))
	for _, m := range msgs {
		if window.Contains(m.Timestamp) {
			out = append(out, m)
		}
	}
	return out
}

func authoredOnly(msgs []parse.Message) []parse.Message {
	out := make([]parse.Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.IsSystemMessage {
			out = append(out, m)
		}
	}
	return out
}

func messagesByDay(msgs []parse.Message) []DayCount {
	byDay := make(map[string]int)
	for _, m := range msgs {
		byDay[m.Timestamp.Format("2006-01-02")]++
	}

	out := make([]DayCount, 0, len(byDay))
	for date, count := range byDay {
		out = append(out, DayCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func messagesByHour(msgs []parse.Message) []HourCount {
	var buckets [24]int
	for _, m := range msgs {
		buckets[m.Timestamp.Hour()]++
	}

	out := make([]HourCount, 24)
	for h, count := range buckets {
		out[h] = HourCount{Hour: h, Count: count}
	}
	return out
}

func messagesByParticipant(msgs []parse.Message) []ParticipantCount {
	byAuthor := make(map[string]int)
	for _, m := range msgs {
		byAuthor[m.Author]++
	}
	return sortedCounts(byAuthor)
}

// sortedCounts turns a name->count map into a count-descending slice with a
// name tiebreak so output is deterministic.
func sortedCounts(byName map[string]int) []ParticipantCount {
	out := make([]ParticipantCount, 0, len(byName))
	for name, count := range byName {
		out = append(out, ParticipantCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func (a *Analyzer) wordFrequency(msgs []parse.Message) []WordCount {
	counts := make(map[string]int)
	for _, m := range msgs {
		for _, word := range tokenize(m.Content) {
			if len(word) <= 2 {
				continue
			}
			if _, stop := a.stopWords[word]; stop {
				continue
			}
			counts[word]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Word < out[j].Word
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > a.topWords {
		out = out[:a.topWords]
	}
	return out
}

// tokenize lowercases, strips punctuation and splits on whitespace.
func tokenize(content string) []string {
	var tokens []string
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
		}
		sb.Reset()
	}
	for _, r := range content {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			flush()
		default:
			// punctuation is stripped, not treated as a separator
		}
	}
	flush()
	return tokens
}

func averageMessageLength(msgs []parse.Message) int {
	if len(msgs) == 0 {
		return 0
	}
	total := 0
	for _, m := range msgs {
		total += len([]rune(m.Content))
	}
	return int(math.Round(float64(total) / float64(len(msgs))))
}

func mostActiveDay(byDay []DayCount) string {
	best := DayCount{}
	for _, d := range byDay {
		if d.Count > best.Count {
			best = d
		}
	}
	return best.Date
}

func mostActiveHour(byHour []HourCount) int {
	best := HourCount{}
	for _, h := range byHour {
		if h.Count > best.Count {
			best = h
		}
	}
	return best.Hour
}
