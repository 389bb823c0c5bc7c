// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roles

import (
	"testing"

	"github.com/gilshw/politifeed/internal/match"
	"github.com/gilshw/politifeed/internal/registry"
	"github.com/gilshw/politifeed/pkg/types"
)

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	reg := registry.New([]types.Entity{
		{CanonicalName: "בנימין נתניהו", Role: "prime-minister", Aliases: []string{"ביבי"}},
		{CanonicalName: "ישראל כץ", Role: "defense-minister"},
	}, nil)
	return NewResolver(reg, DefaultTable(), match.New(), 0)
}

func TestResolveCurrentHolder(t *testing.T) {
	r := testResolver(t)
	got := r.Resolve("ראש הממשלה נתניהו הודיע הערב על המהלך", types.ZoneBody)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].EntityID != "בנימין נתניהו" {
		t.Errorf("EntityID = %s", got[0].EntityID)
	}
	if got[0].Via != types.ViaRole {
		t.Errorf("Via = %s, want role", got[0].Via)
	}
}

func TestResolveAbbreviatedPhrase(t *testing.T) {
	r := testResolver(t)
	got := r.Resolve(`רה"מ נתניהו אמר כי ההחלטה סופית`, types.ZoneBody)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
}

func TestResolveAliasCorroboration(t *testing.T) {
	r := testResolver(t)
	got := r.Resolve("ראש הממשלה ביבי אמר את דברו", types.ZoneBody)
	if len(got) != 1 {
		t.Fatalf("nickname corroboration failed: got %d candidates", len(got))
	}
}

func TestResolveBareRoleRejected(t *testing.T) {
	r := testResolver(t)
	got := r.Resolve("ראש הממשלה הודיע הערב על המהלך", types.ZoneBody)
	if len(got) != 0 {
		t.Fatalf("bare role without name fragment produced %d candidates", len(got))
	}
}

func TestResolveModifiedUsages(t *testing.T) {
	r := testResolver(t)
	tests := []struct {
		name string
		text string
	}{
		{"retrospective", "ראש הממשלה לשעבר נפגש אתמול עם נתניהו"},
		{"prospective", "ראש הממשלה הבא ייפגש עם נתניהו"},
		{"acting", "ראש הממשלה בפועל שוחח עם נתניהו"},
		{"possessive", "ראש הממשלה של המדינה השכנה בירך את נתניהו"},
		{"conditional", "מי שיהיה ראש הממשלה יצטרך להתמודד עם נתניהו"},
		{"foreign demonym", "ראש הממשלה הבריטי שוחח טלפונית עם נתניהו"},
		{"numbered government", "בימי הממשלה ה-34 שימש ראש הממשלה נתניהו בתפקיד"},
		{"era marker", "ראש הממשלה בממשלה הקודמת תקף את נתניהו"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.text, types.ZoneBody); len(got) != 0 {
				t.Errorf("modified usage produced %d candidates", len(got))
			}
		})
	}
}

func TestResolveUnheldRole(t *testing.T) {
	reg := registry.New([]types.Entity{
		{CanonicalName: "בנימין נתניהו", Role: "prime-minister"},
	}, nil)
	r := NewResolver(reg, DefaultTable(), match.New(), 0)

	got := r.Resolve("שר האוצר סמוטריץ' הציג את התקציב", types.ZoneBody)
	if len(got) != 0 {
		t.Fatalf("unheld role produced %d candidates", len(got))
	}
}

func TestResolveRepeatedPhrase(t *testing.T) {
	r := testResolver(t)
	text := "ראש הממשלה נתניהו פתח את הישיבה. בהמשך אמר ראש הממשלה כי נתניהו ימשיך בקו זה"
	got := r.Resolve(text, types.ZoneBody)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
}

func TestPartialNames(t *testing.T) {
	e := types.Entity{
		CanonicalName: "בנימין נתניהו",
		Aliases:       []string{"ביבי", "בנימין נתניהו המלך"},
	}
	got := partialNames(e)
	want := map[string]bool{"נתניהו": true, "ביבי": true}
	if len(got) != 2 {
		t.Fatalf("partialNames = %v, want last name and short alias only", got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected partial %q", p)
		}
	}
}
