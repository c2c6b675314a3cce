package analyze

import (
	"sort"

	"github.com/tomerva/chatscope/internal/parse"
)

const topEmojiLimit = 10

// emojiRanges is the code-point table treated as emoji. Unicode assigns new
// blocks over time; this table is a versioned constant that needs a bump
// when new blocks ship, not a permanent truth.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F900, 0x1F9FF}, // supplemental symbols & pictographs
	{0x1FA70, 0x1FAFF}, // symbols & pictographs extended-A
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// emojiAnalysis scans message content for emoji code points and tracks the
// total, the top 10 and a per-participant breakdown.
func emojiAnalysis(msgs []parse.Message) EmojiAnalysis {
	byEmoji := make(map[rune]int)
	byAuthor := make(map[string]int)
	total := 0

	for _, m := range msgs {
		for _, r := range m.Content {
			if !isEmoji(r) {
				continue
			}
			byEmoji[r]++
			byAuthor[m.Author]++
			total++
		}
	}

	top := make([]EmojiCount, 0, len(byEmoji))
	for r, count := range byEmoji {
		top = append(top, EmojiCount{Emoji: string(r), Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count == top[j].Count {
			return top[i].Emoji < top[j].Emoji
		}
		return top[i].Count > top[j].Count
	})
	if len(top) > topEmojiLimit {
		top = top[:topEmojiLimit]
	}

	return EmojiAnalysis{
		TotalEmojis:   total,
		TopEmojis:     top,
		ByParticipant: sortedCounts(byAuthor),
	}
}
