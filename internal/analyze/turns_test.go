package analyze

import (
	"math"
	"testing"
	"time"
)

func TestResponseTimeSingleExchange(t *testing.T) {
	chat := chatWith(
		msg(base, "John", "hi"),
		msg(base.Add(10*time.Minute), "Jane", "hello"),
	)

	rt := Analyze(chat, nil).ResponseTimes

	if len(rt.ByParticipant) != 1 {
		t.Fatalf("ByParticipant = %v, want one entry", rt.ByParticipant)
	}
	p := rt.ByParticipant[0]
	if p.Name != "Jane" || p.Count != 1 || p.AverageMinutes != 10 {
		t.Errorf("entry = %+v, want Jane with one 10-minute sample", p)
	}
	if rt.AverageMinutes != 10 {
		t.Errorf("AverageMinutes = %v, want 10", rt.AverageMinutes)
	}
	if rt.FastestResponder != "Jane" || rt.SlowestResponder != "Jane" {
		t.Errorf("responders = %q/%q, want Jane/Jane", rt.FastestResponder, rt.SlowestResponder)
	}
}

func TestResponseTimeTurnCollapse(t *testing.T) {
	// John sends a burst of three, Jane replies once. The gap is measured
	// from John's last message, and John's intra-burst gaps are not samples.
	chat := chatWith(
		msg(base, "John", "one"),
		msg(base.Add(time.Minute), "John", "two"),
		msg(base.Add(2*time.Minute), "John", "three"),
		msg(base.Add(7*time.Minute), "Jane", "reply"),
	)

	rt := Analyze(chat, nil).ResponseTimes

	if len(rt.ByParticipant) != 1 {
		t.Fatalf("ByParticipant = %v, want only Jane", rt.ByParticipant)
	}
	if got := rt.ByParticipant[0].AverageMinutes; got != 5 {
		t.Errorf("AverageMinutes = %v, want 5 (measured from burst end)", got)
	}
}

func TestResponseTimeGapBounds(t *testing.T) {
	// Identical timestamps (gap 0) and gaps over seven days are discarded.
	chat := chatWith(
		msg(base, "John", "a"),
		msg(base, "Jane", "same instant"),
		msg(base.Add(8*24*time.Hour), "John", "a week later"),
	)

	rt := Analyze(chat, nil).ResponseTimes

	if len(rt.ByParticipant) != 0 {
		t.Errorf("ByParticipant = %v, want no samples", rt.ByParticipant)
	}
	if rt.FastestResponder != "N/A" || rt.SlowestResponder != "N/A" {
		t.Errorf("responders = %q/%q, want N/A", rt.FastestResponder, rt.SlowestResponder)
	}
	if rt.AverageMinutes != 0 {
		t.Errorf("AverageMinutes = %v, want 0", rt.AverageMinutes)
	}
}

func TestResponseTimeExactSevenDays(t *testing.T) {
	chat := chatWith(
		msg(base, "John", "a"),
		msg(base.Add(7*24*time.Hour), "Jane", "exactly the cap"),
	)

	rt := Analyze(chat, nil).ResponseTimes

	if len(rt.ByParticipant) != 1 {
		t.Fatalf("gap of exactly 7 days should still count, got %v", rt.ByParticipant)
	}
	if got := rt.ByParticipant[0].AverageMinutes; got != maxResponseGapMinutes {
		t.Errorf("AverageMinutes = %v, want %d", got, maxResponseGapMinutes)
	}
}

func TestResponseTimeGlobalMeanWeightsSamples(t *testing.T) {
	// Jane replies twice (2m, 4m), John once (12m). The global mean weights
	// each sample, not each participant: (2+4+12)/3 = 6.
	chat := chatWith(
		msg(base, "John", "a"),
		msg(base.Add(2*time.Minute), "Jane", "b"),
		msg(base.Add(14*time.Minute), "John", "c"),
		msg(base.Add(18*time.Minute), "Jane", "d"),
	)

	rt := Analyze(chat, nil).ResponseTimes

	if math.Abs(rt.AverageMinutes-6) > 1e-9 {
		t.Errorf("AverageMinutes = %v, want 6", rt.AverageMinutes)
	}
	if rt.FastestResponder != "Jane" {
		t.Errorf("FastestResponder = %q, want Jane", rt.FastestResponder)
	}
	if rt.SlowestResponder != "John" {
		t.Errorf("SlowestResponder = %q, want John", rt.SlowestResponder)
	}
}

func TestConversationStartersFirstTurn(t *testing.T) {
	chat := chatWith(
		msg(base, "John", "hi"),
		msg(base.Add(time.Minute), "Jane", "hello"),
	)

	starters := Analyze(chat, nil).ConversationStarters

	if len(starters) != 1 {
		t.Fatalf("starters = %v, want only John", starters)
	}
	if starters[0].Name != "John" || starters[0].Count != 1 || starters[0].Percentage != 100 {
		t.Errorf("starter = %+v, want John 1 100%%", starters[0])
	}
}

func TestConversationStarterDayThreshold(t *testing.T) {
	// Midday gaps: 2h meets the threshold, 1h59m does not.
	noon := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	chat := chatWith(
		msg(noon, "John", "morning thread"),
		msg(noon.Add(2*time.Hour), "Jane", "new conversation"),
		msg(noon.Add(2*time.Hour+119*time.Minute), "John", "still the same one"),
	)

	starters := Analyze(chat, nil).ConversationStarters

	got := map[string]int{}
	for _, s := range starters {
		got[s.Name] = s.Count
	}
	if got["John"] != 1 || got["Jane"] != 1 {
		t.Errorf("starter counts = %v, want John 1 Jane 1", got)
	}
}

func TestConversationStarterNightThreshold(t *testing.T) {
	// A turn beginning at 02:00 needs 8h of silence, not 2h.
	evening := time.Date(2024, 3, 15, 19, 0, 0, 0, time.Local)

	t.Run("seven hours is not enough at night", func(t *testing.T) {
		chat := chatWith(
			msg(evening, "John", "good night"),
			msg(evening.Add(7*time.Hour), "Jane", "2am, same thread"),
		)
		starters := Analyze(chat, nil).ConversationStarters
		if len(starters) != 1 || starters[0].Name != "John" {
			t.Errorf("starters = %v, want only John", starters)
		}
	})

	t.Run("exactly eight hours counts", func(t *testing.T) {
		chat := chatWith(
			msg(evening, "John", "good night"),
			msg(evening.Add(8*time.Hour), "Jane", "3am insomnia"),
		)
		starters := Analyze(chat, nil).ConversationStarters
		got := map[string]int{}
		for _, s := range starters {
			got[s.Name] = s.Count
		}
		if got["John"] != 1 || got["Jane"] != 1 {
			t.Errorf("starter counts = %v, want John 1 Jane 1", got)
		}
	})

	t.Run("three hours during the day counts", func(t *testing.T) {
		noon := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
		chat := chatWith(
			msg(noon, "John", "lunch"),
			msg(noon.Add(3*time.Hour), "Jane", "afternoon restart"),
		)
		starters := Analyze(chat, nil).ConversationStarters
		if len(starters) != 2 {
			t.Errorf("starters = %v, want both", starters)
		}
	})
}

func TestConversationStarterPercentagesRound(t *testing.T) {
	// Three starts: John 2, Jane 1. 66.67 rounds to 67, 33.33 to 33.
	noon := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	chat := chatWith(
		msg(noon, "John", "first"),
		msg(noon.Add(3*time.Hour), "Jane", "second"),
		msg(noon.Add(6*time.Hour), "John", "third"),
	)

	starters := Analyze(chat, nil).ConversationStarters

	if len(starters) != 2 {
		t.Fatalf("starters = %v", starters)
	}
	if starters[0].Name != "John" || starters[0].Percentage != 67 {
		t.Errorf("starters[0] = %+v, want John 67%%", starters[0])
	}
	if starters[1].Name != "Jane" || starters[1].Percentage != 33 {
		t.Errorf("starters[1] = %+v, want Jane 33%%", starters[1])
	}
}
