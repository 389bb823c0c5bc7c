// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"strings"
	"testing"

	"github.com/gilshw/politifeed/internal/match"
	"github.com/gilshw/politifeed/pkg/types"
)

var bibi = types.Entity{ID: "בנימין נתניהו", CanonicalName: "בנימין נתניהו", Aliases: []string{"נתניהו", "ביבי"}}

func testScorer() *Scorer {
	return New(match.New(), DefaultVocab())
}

func scoreOne(t *testing.T, s *Scorer, title, description, body string, e types.Entity) (types.Mention, bool) {
	t.Helper()
	out := s.Score(title, description, body, []types.Entity{e})
	if len(out) == 0 {
		return types.Mention{}, false
	}
	return out[0], true
}

func TestScoreTitleHit(t *testing.T) {
	s := testScorer()
	m, ok := scoreOne(t, s, "נתניהו בדרך לוושינגטון", "", "", bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if !m.Relevant {
		t.Error("title hit must be relevant")
	}
	if m.Score != 10 {
		t.Errorf("Score = %d, want 10", m.Score)
	}
}

func TestScoreTitleAndDescription(t *testing.T) {
	s := testScorer()
	m, ok := scoreOne(t, s, "נתניהו בדרך לוושינגטון", "ביבי ימריא הערב", "", bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if m.Score != 15 {
		t.Errorf("Score = %d, want 10+5", m.Score)
	}
	if m.Counts.Title != 1 || m.Counts.Description != 1 {
		t.Errorf("Counts = %+v", m.Counts)
	}
}

func TestScoreSingleBodyMentionIsBackground(t *testing.T) {
	s := testScorer()
	body := strings.Repeat("מילות רקע שונות וארוכות כאן ", 20) + "ובשולי הדברים הוזכר נתניהו פעם אחת"
	m, ok := scoreOne(t, s, "", "", body, bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if m.Relevant {
		t.Error("single unadorned body mention must be background")
	}
	if m.Score != 1 {
		t.Errorf("Score = %d, want tie-break score 1", m.Score)
	}
}

func TestScoreRepeatedBodyMentions(t *testing.T) {
	s := testScorer()
	filler := strings.Repeat("עוד מלל רב שאינו קשור לאיש ", 20)
	body := filler + "נתניהו הוזכר כאן. " + filler + "וגם נתניהו הוזכר שוב. " + filler
	m, ok := scoreOne(t, s, "", "", body, bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if !m.Relevant {
		t.Error("two body mentions must be relevant")
	}
	if m.Counts.Body != 2 {
		t.Errorf("Body count = %d, want 2", m.Counts.Body)
	}
}

func TestScoreEarlyBodyBonus(t *testing.T) {
	s := testScorer()
	body := "נתניהו פתח את הדיון. " + strings.Repeat("מלל נוסף על נושאים אחרים לגמרי ", 30)
	m, ok := scoreOne(t, s, "", "", body, bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if !m.Relevant {
		t.Error("early body mention must be relevant")
	}
	if m.Counts.EarlyBody != 1 {
		t.Errorf("EarlyBody = %d, want 1", m.Counts.EarlyBody)
	}
	if m.Score != 3 {
		t.Errorf("Score = %d, want early-body bonus 3", m.Score)
	}
}

func TestScoreNearQuote(t *testing.T) {
	s := testScorer()
	filler := strings.Repeat("פתיח ארוך שאינו מזכיר את האיש כלל ", 20)
	body := filler + `במסמך נכתב: "הכול גלוי", וכך הגיע נתניהו לדיון`
	m, ok := scoreOne(t, s, "", "", body, bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if !m.NearQuote {
		t.Error("NearQuote = false, want true")
	}
	if !m.Relevant || m.Score != 2 {
		t.Errorf("Relevant = %v, Score = %d, want relevant with quote weight 2", m.Relevant, m.Score)
	}
}

func TestScoreReactionContext(t *testing.T) {
	s := testScorer()
	filler := strings.Repeat("פתיח ארוך שאינו נוגע לעניין עצמו ", 20)
	body := filler + "בתוך כך אמר נתניהו כי הנושא ייבחן"
	m, ok := scoreOne(t, s, "", "", body, bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if !m.NearReaction {
		t.Error("NearReaction = false, want true")
	}
	if !m.Relevant || m.Score != 3 {
		t.Errorf("Relevant = %v, Score = %d, want relevant with reaction weight 3", m.Relevant, m.Score)
	}
}

func TestScoreVerbInsideLongerWordNotReaction(t *testing.T) {
	s := testScorer()
	lapid := types.Entity{ID: "יאיר לפיד", CanonicalName: "יאיר לפיד", Aliases: []string{"לפיד"}}
	filler := strings.Repeat("פתיח ארוך שאינו נוגע לעניין עצמו ", 20)
	// "במאמר" contains the verb "אמר" but is a noun; it must not turn a
	// lone background mention into reaction context.
	body := filler + "במאמר שפורסם הבוקר הוזכר לפיד בחטף"
	m, ok := scoreOne(t, s, "", "", body, lapid)
	if !ok {
		t.Fatal("no mention returned")
	}
	if m.NearReaction {
		t.Error("NearReaction = true for verb embedded in a longer word")
	}
	if m.Relevant || m.Score != 1 {
		t.Errorf("Relevant = %v, Score = %d, want background score 1", m.Relevant, m.Score)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	s := testScorer()
	filler := strings.Repeat("מלל רקע שאינו חשוב ", 30)
	one := filler + "נתניהו הוזכר. " + filler
	two := filler + "נתניהו הוזכר. " + filler + " נתניהו הוזכר שוב."

	m1, _ := scoreOne(t, s, "", "", one, bibi)
	m2, _ := scoreOne(t, s, "", "", two, bibi)
	if m2.Score < m1.Score {
		t.Errorf("extra body occurrence lowered score: %d -> %d", m1.Score, m2.Score)
	}

	// Moving an occurrence to the title must not lower the score.
	m3, _ := scoreOne(t, s, "נתניהו הוזכר", "", one, bibi)
	if m3.Score < m1.Score {
		t.Errorf("title occurrence lowered score: %d -> %d", m1.Score, m3.Score)
	}
}

func TestScoreAliasOverlapNotDoubleCounted(t *testing.T) {
	s := testScorer()
	m, ok := scoreOne(t, s, "בנימין נתניהו נואם הערב", "", "", bibi)
	if !ok {
		t.Fatal("no mention returned")
	}
	if m.Counts.Title != 1 {
		t.Errorf("Title count = %d, want 1 (alias inside canonical merged)", m.Counts.Title)
	}
}

func TestScoreSortedDescending(t *testing.T) {
	s := testScorer()
	lapid := types.Entity{ID: "יאיר לפיד", CanonicalName: "יאיר לפיד", Aliases: []string{"לפיד"}}
	title := "נתניהו בדרך לוושינגטון"
	body := strings.Repeat("מלל רקע ארוך למדי כאן ", 30) + "בשולי הדברים הוזכר לפיד"

	out := s.Score(title, "", body, []types.Entity{lapid, bibi})
	if len(out) != 2 {
		t.Fatalf("got %d mentions, want 2", len(out))
	}
	if out[0].EntityID != "בנימין נתניהו" || out[0].Score < out[1].Score {
		t.Errorf("order wrong: %+v", out)
	}
}

func TestScoreNoOccurrencesOmitted(t *testing.T) {
	s := testScorer()
	out := s.Score("כותרת על משהו אחר", "", "גוף על משהו אחר", []types.Entity{bibi})
	if len(out) != 0 {
		t.Fatalf("got %d mentions for absent entity, want 0", len(out))
	}
}
