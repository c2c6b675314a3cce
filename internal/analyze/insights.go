package analyze

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tomerva/chatscope/internal/parse"
)

// Insight is a human-readable observation derived from the analytics.
type Insight struct {
	ID          string
	Title       string
	Description string
	Category    string // "activity", "social", "behavior", "time"
	Priority    int    // higher is more interesting
	Value       string
}

const maxInsights = 6

// GenerateInsights derives up to 6 prioritized observations from an
// analytics result. Empty analytics yield no insights.
func GenerateInsights(data AnalyticsData, chat parse.ChatData) []Insight {
	if data.FilteredMessageCount == 0 {
		return nil
	}

	var insights []Insight
	insights = append(insights, activityInsights(data)...)
	insights = append(insights, timeInsights(data, chat)...)
	insights = append(insights, socialInsights(data)...)
	insights = append(insights, behaviorInsights(data)...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func activityInsights(data AnalyticsData) []Insight {
	var insights []Insight

	if len(data.MessagesByParticipant) > 0 {
		top := data.MessagesByParticipant[0]
		pct := int(math.Round(float64(top.Count) / float64(data.FilteredMessageCount) * 100))
		var desc string
		switch {
		case pct > 70:
			desc = fmt.Sprintf("%s dominates the conversation with %d%% of messages - very one-sided", top.Name, pct)
		case pct > 60:
			desc = fmt.Sprintf("%s leads the conversation with %d%% of messages", top.Name, pct)
		case pct > 55:
			desc = fmt.Sprintf("%s is slightly more active with %d%% of messages - fairly balanced", top.Name, pct)
		default:
			desc = fmt.Sprintf("%s sent %d%% of messages - very balanced conversation", top.Name, pct)
		}
		insights = append(insights, Insight{
			ID:          "top-contributor",
			Title:       "Conversation Balance",
			Description: desc,
			Category:    "activity",
			Priority:    3,
			Value:       fmt.Sprintf("%d%%", pct),
		})
	}

	perDay := 0.0
	if len(data.MessagesByDay) > 0 {
		perDay = float64(data.FilteredMessageCount) / float64(len(data.MessagesByDay))
	}
	var desc, value string
	switch {
	case perDay > 200:
		desc = "Extremely active conversation, far above typical usage"
		value = "Top 5% activity level"
	case perDay > 100:
		desc = "Very active conversation, above average usage"
		value = "Above average activity"
	case perDay > 50:
		desc = "Steady conversation with typical activity levels"
		value = "Average activity level"
	case perDay > 20:
		desc = "Moderate conversation, quality over quantity"
		value = "Below average activity"
	default:
		desc = "Light conversation, minimal and meaningful"
		value = "Minimal activity level"
	}
	insights = append(insights, Insight{
		ID:          "conversation-volume",
		Title:       "Activity Level",
		Description: fmt.Sprintf("%s (%d messages/day vs ~30 typical)", desc, int(math.Round(perDay))),
		Category:    "activity",
		Priority:    2,
		Value:       value,
	})

	return insights
}

func timeInsights(data AnalyticsData, chat parse.ChatData) []Insight {
	var insights []Insight

	peak := data.MostActiveHour
	var persona string
	switch {
	case peak >= 6 && peak < 12:
		persona = "morning person"
	case peak >= 12 && peak < 17:
		persona = "afternoon chatter"
	case peak >= 17 && peak < 22:
		persona = "evening conversationalist"
	default:
		persona = "night owl"
	}
	insights = append(insights, Insight{
		ID:          "peak-time",
		Title:       "Peak Activity Time",
		Description: fmt.Sprintf("Most active around %s - a %s", formatHour12(peak), persona),
		Category:    "time",
		Priority:    3,
		Value:       formatHour12(peak),
	})

	weekend := 0
	for _, m := range chat.Messages {
		if m.IsSystemMessage {
			continue
		}
		switch m.Timestamp.Weekday() {
		case time.Saturday, time.Sunday:
			weekend++
		}
	}
	weekendPct := 0
	if data.FilteredMessageCount > 0 {
		weekendPct = int(math.Round(float64(weekend) / float64(data.FilteredMessageCount) * 100))
	}
	if weekendPct > 35 {
		insights = append(insights, Insight{
			ID:          "weekend-warrior",
			Title:       "Weekend Warrior",
			Description: fmt.Sprintf("%d%% of messages are sent during weekends", weekendPct),
			Category:    "time",
			Priority:    2,
			Value:       fmt.Sprintf("%d%%", weekendPct),
		})
	} else if weekendPct < 20 {
		insights = append(insights, Insight{
			ID:          "weekday-focused",
			Title:       "Weekday Focused",
			Description: fmt.Sprintf("Only %d%% of messages are on weekends", weekendPct),
			Category:    "time",
			Priority:    2,
			Value:       fmt.Sprintf("%d%%", weekendPct),
		})
	}

	return insights
}

func socialInsights(data AnalyticsData) []Insight {
	var insights []Insight

	avg := data.ResponseTimes.AverageMinutes
	var desc, value string
	switch {
	case avg < 5:
		desc = "Lightning fast responses, replies almost instantly"
		value = "Top 10% response speed"
	case avg < 15:
		desc = "Very quick responder, much faster than average"
		value = "Above average speed"
	case avg < 60:
		desc = "Good response time, replies within the hour"
		value = "Better than average"
	case avg < 180:
		desc = "Steady communicator with typical response times"
		value = "Average response time"
	default:
		desc = "Thoughtful responder who takes time to reply"
		value = "Slower than average"
	}
	insights = append(insights, Insight{
		ID:          "response-time",
		Title:       "Response Speed",
		Description: desc,
		Category:    "social",
		Priority:    3,
		Value:       value,
	})

	if len(data.ConversationStarters) > 0 {
		top := data.ConversationStarters[0]
		if top.Percentage > 60 {
			insights = append(insights, Insight{
				ID:          "conversation-initiator",
				Title:       "Conversation Initiator",
				Description: fmt.Sprintf("%s starts %d%% of conversations - a natural conversation leader", top.Name, top.Percentage),
				Category:    "social",
				Priority:    2,
				Value:       fmt.Sprintf("%d%%", top.Percentage),
			})
		}
	}

	return insights
}

func behaviorInsights(data AnalyticsData) []Insight {
	var insights []Insight

	perMessage := 0.0
	if data.FilteredMessageCount > 0 {
		perMessage = float64(data.EmojiAnalysis.TotalEmojis) / float64(data.FilteredMessageCount)
	}
	if perMessage > 0.5 {
		insights = append(insights, Insight{
			ID:          "emoji-enthusiast",
			Title:       "Emoji Enthusiast",
			Description: fmt.Sprintf("%d emojis used across the conversation", data.EmojiAnalysis.TotalEmojis),
			Category:    "behavior",
			Priority:    2,
			Value:       fmt.Sprintf("%d emojis", data.EmojiAnalysis.TotalEmojis),
		})
	} else if perMessage < 0.1 {
		insights = append(insights, Insight{
			ID:          "text-focused",
			Title:       "Text-Focused",
			Description: "Words over emojis, a classic text communicator",
			Category:    "behavior",
			Priority:    1,
			Value:       fmt.Sprintf("%d%% emoji rate", int(math.Round(perMessage*100))),
		})
	}

	if data.AverageMessageLength > 100 {
		insights = append(insights, Insight{
			ID:          "detailed-communicator",
			Title:       "Detailed Communicator",
			Description: fmt.Sprintf("Average of %d characters per message", data.AverageMessageLength),
			Category:    "behavior",
			Priority:    1,
			Value:       fmt.Sprintf("%d chars", data.AverageMessageLength),
		})
	} else if data.AverageMessageLength > 0 && data.AverageMessageLength < 30 {
		insights = append(insights, Insight{
			ID:          "concise-communicator",
			Title:       "Concise Communicator",
			Description: fmt.Sprintf("Short and sweet, %d characters per message on average", data.AverageMessageLength),
			Category:    "behavior",
			Priority:    1,
			Value:       fmt.Sprintf("%d chars", data.AverageMessageLength),
		})
	}

	return insights
}

func formatHour12(h int) string {
	switch {
	case h == 0:
		return "12AM"
	case h < 12:
		return fmt.Sprintf("%dAM", h)
	case h == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", h-12)
	}
}
