package analyze

// DayCount is one bucket of the per-day histogram.
type DayCount struct {
	Date  string // yyyy-MM-dd, local time
	Count int
}

// HourCount is one bucket of the per-hour-of-day histogram.
type HourCount struct {
	Hour  int // 0-23
	Count int
}

// ParticipantCount pairs an author with a message (or emoji) count.
type ParticipantCount struct {
	Name  string
	Count int
}

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// ParticipantResponseTime aggregates one responder's reply gaps.
type ParticipantResponseTime struct {
	Name           string
	AverageMinutes float64
	Count          int
}

// ResponseTimeAnalysis summarizes reply latency across the chat.
type ResponseTimeAnalysis struct {
	ByParticipant    []ParticipantResponseTime // ascending by mean
	AverageMinutes   float64                   // mean over all gap samples
	FastestResponder string                    // "N/A" when no samples
	SlowestResponder string
}

// StarterCount attributes conversation starts to an author.
type StarterCount struct {
	Name       string
	Count      int
	Percentage int // round-half-up share of total starts
}

// EmojiCount pairs an emoji with its occurrence count.
type EmojiCount struct {
	Emoji string
	Count int
}

// EmojiAnalysis summarizes symbol usage.
type EmojiAnalysis struct {
	TotalEmojis   int
	TopEmojis     []EmojiCount // top 10 by count
	ByParticipant []ParticipantCount
}

// AnalyticsData is the derived statistics record. It is a pure function of
// (ChatData, window) and is never mutated after Analyze returns it.
type AnalyticsData struct {
	MessagesByDay         []DayCount
	MessagesByHour        []HourCount // always 24 buckets
	MessagesByParticipant []ParticipantCount
	WordFrequency         []WordCount
	AverageMessageLength  int
	MostActiveDay         string
	MostActiveHour        int
	ResponseTimes         ResponseTimeAnalysis
	ConversationStarters  []StarterCount
	EmojiAnalysis         EmojiAnalysis
	FilteredMessageCount  int // non-system messages inside the window
	TotalMessageCount     int // all messages in the source ChatData
}
