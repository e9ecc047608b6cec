package match

import (
	"strings"
	"testing"
)

func TestScoreProfile_MissingProfile(t *testing.T) {
	v := testVocab()
	m := v.Score(v.Extract(scenarioResume), "Senior Backend Engineer", "", []string{"python", "docker"})

	tests := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The floor holds and the match result is ignored entirely.
			r := v.ScoreProfile(tt.ref, "Senior Backend Engineer", "", nil, m)
			if r.Score != 50 {
				t.Errorf("Score = %d, want the 50 floor", r.Score)
			}
			if !strings.Contains(r.Summary, "No professional profile") {
				t.Errorf("Summary = %q, want the missing-profile narrative", r.Summary)
			}
		})
	}
}

func TestScoreProfile_Signals(t *testing.T) {
	v := testVocab()

	tests := []struct {
		name string
		ref  string
		want int
	}{
		{"short ref, no path marker", "example.com/me", 50},
		{"path marker only", "x.co/in/me", 75},
		{"long ref only", "https://example.com/profiles/someone-with-a-long-slug", 75},
		{"both signals", "https://www.linkedin.com/in/someone-with-a-long-slug", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.ScoreProfile(tt.ref, "Engineer", "", nil, nil)
			if r.Score != tt.want {
				t.Errorf("Score = %d, want %d", r.Score, tt.want)
			}
		})
	}
}

func TestScoreProfile_BlendsMatchScore(t *testing.T) {
	v := testVocab()
	p := v.Extract(scenarioResume)
	m := v.Score(p, "Senior Backend Engineer", "", []string{"python", "docker", "kubernetes"})
	if m.Score != 64 {
		t.Fatalf("match score = %d, want 64 (see TestScore_Scenario)", m.Score)
	}

	r := v.ScoreProfile("https://www.linkedin.com/in/someone-with-a-long-slug", "Senior Backend Engineer", "", nil, m)

	// round((100 + 64) / 2) = 82.
	if r.Score != 82 {
		t.Errorf("Score = %d, want 82", r.Score)
	}
}

func TestScoreProfile_Headline(t *testing.T) {
	v := testVocab()
	m := v.Score(v.Extract("python and docker daily"), "Engineer", "", []string{"python", "docker"})

	tests := []struct {
		name  string
		title string
		match *Result
		want  string
	}{
		{"skills from match result", "Senior Backend Engineer", m, "Backend Engineer | python · docker"},
		{"no match result", "Senior Backend Engineer", nil, "Backend Engineer | Experienced Professional"},
		{"short title", "Engineer", nil, "Engineer | Experienced Professional"},
		{"empty title", "", nil, "Professional | Experienced Professional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.ScoreProfile("x.co/in/me", tt.title, "", nil, tt.match)
			if r.Headline != tt.want {
				t.Errorf("Headline = %q, want %q", r.Headline, tt.want)
			}
		})
	}
}

func TestScoreProfile_AdviceCaps(t *testing.T) {
	v := testVocab()
	m := v.Score(v.Extract("python docker kubernetes react daily"), "Engineer", "",
		[]string{"python", "docker", "kubernetes", "react"})

	withProfile := v.ScoreProfile("x.co/in/me", "Engineer", "", nil, m)
	if n := len(withProfile.Endorsements); n > 3 {
		t.Errorf("|Endorsements| = %d, cap is 3", n)
	}
	if n := len(withProfile.SkillGaps); n > 4 {
		t.Errorf("|SkillGaps| = %d, cap is 4", n)
	}
	if n := len(withProfile.Improvements); n == 0 || n > 4 {
		t.Errorf("|Improvements| = %d, want 1..4", n)
	}

	noProfile := v.ScoreProfile("", "Engineer", "", nil, nil)
	if len(noProfile.Improvements) != 4 {
		t.Fatalf("Improvements = %v, want 4 with the add-a-link tip first", noProfile.Improvements)
	}
	if !strings.Contains(noProfile.Improvements[0], "profile link") {
		t.Errorf("Improvements[0] = %q, want the add-a-link tip", noProfile.Improvements[0])
	}
}

func TestScoreProfile_Deterministic(t *testing.T) {
	v := testVocab()
	m := v.Score(v.Extract(scenarioResume), "Engineer", "", []string{"python"})

	a := v.ScoreProfile("x.co/in/me", "Engineer", "", nil, m)
	b := v.ScoreProfile("x.co/in/me", "Engineer", "", nil, m)

	if a.Score != b.Score || a.Headline != b.Headline || a.Summary != b.Summary {
		t.Errorf("repeated profile scoring differs: %+v vs %+v", a, b)
	}
}
