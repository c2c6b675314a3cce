package analyze

import (
	"math"
	"sort"
	"time"

	"github.com/tomerva/chatscope/internal/parse"
)

// maxResponseGapMinutes caps what still counts as a reply. Gaps longer than
// 7 days are context switches, not responses.
const maxResponseGapMinutes = 7 * 24 * 60

// Conversation-start thresholds, in hours. A long overnight gap is expected
// sleep, so turns beginning during night hours need a larger silence before
// they count as a deliberate new conversation.
const (
	dayStartThresholdHours   = 2.0
	nightStartThresholdHours = 8.0
	nightStartHour           = 22
	nightEndHour             = 8
)

// turn is a run of consecutive messages by the same author.
type turn struct {
	author string
	start  time.Time
	end    time.Time
}

// segmentTurns collapses consecutive same-author messages into turns.
// Input must be chronological, which Parse guarantees.
func segmentTurns(msgs []parse.Message) []turn {
	var turns []turn
	for _, m := range msgs {
		if n := len(turns); n > 0 && turns[n-1].author == m.Author {
			turns[n-1].end = m.Timestamp
			continue
		}
		turns = append(turns, turn{author: m.Author, start: m.Timestamp, end: m.Timestamp})
	}
	return turns
}

// responseTimes measures the gap between each turn transition and
// aggregates per responding author. Non-positive gaps and gaps over 7 days
// are discarded as non-responses.
func responseTimes(msgs []parse.Message) ResponseTimeAnalysis {
	turns := segmentTurns(msgs)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var allGaps []float64

	for i := 1; i < len(turns); i++ {
		gap := turns[i].start.Sub(turns[i-1].end).Minutes()
		if gap <= 0 || gap > maxResponseGapMinutes {
			continue
		}
		sums[turns[i].author] += gap
		counts[turns[i].author]++
		allGaps = append(allGaps, gap)
	}

	byParticipant := make([]ParticipantResponseTime, 0, len(counts))
	for author, count := range counts {
		byParticipant = append(byParticipant, ParticipantResponseTime{
			Name:           author,
			AverageMinutes: sums[author] / float64(count),
			Count:          count,
		})
	}
	sort.Slice(byParticipant, func(i, j int) bool {
		if byParticipant[i].AverageMinutes == byParticipant[j].AverageMinutes {
			return byParticipant[i].Name < byParticipant[j].Name
		}
		return byParticipant[i].AverageMinutes < byParticipant[j].AverageMinutes
	})

	out := ResponseTimeAnalysis{
		ByParticipant:    byParticipant,
		FastestResponder: "N/A",
		SlowestResponder: "N/A",
	}
	if len(byParticipant) > 0 {
		out.FastestResponder = byParticipant[0].Name
		out.SlowestResponder = byParticipant[len(byParticipant)-1].Name
	}
	if len(allGaps) > 0 {
		// Mean over individual samples: an author with many fast replies
		// pulls the global average down proportionally.
		total := 0.0
		for _, g := range allGaps {
			total += g
		}
		out.AverageMinutes = total / float64(len(allGaps))
	}
	return out
}

// conversationStarters attributes "who opened the conversation" using the
// same turn segmentation. The very first turn always counts; later turns
// count when the silence before them meets the day/night threshold.
func conversationStarters(msgs []parse.Message) []StarterCount {
	turns := segmentTurns(msgs)
	if len(turns) == 0 {
		return nil
	}

	starts := make(map[string]int)
	starts[turns[0].author]++
	total := 1

	for i := 1; i < len(turns); i++ {
		gapHours := turns[i].start.Sub(turns[i-1].end).Hours()
		if gapHours >= startThresholdHours(turns[i].start) {
			starts[turns[i].author]++
			total++
		}
	}

	out := make([]StarterCount, 0, len(starts))
	for author, count := range starts {
		out = append(out, StarterCount{
			Name:       author,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func startThresholdHours(start time.Time) float64 {
	h := start.Hour()
	if h >= nightStartHour || h < nightEndHour {
		return nightStartThresholdHours
	}
	return dayStartThresholdHours
}
