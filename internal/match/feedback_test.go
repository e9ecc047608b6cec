package match

import (
	"strings"
	"testing"
)

func TestFeedback_StrengthsOrderAndCap(t *testing.T) {
	v := testVocab()

	// All five strength triggers fire; the cap keeps the first four.
	p := v.Extract("Led and built Python, Docker, Kubernetes and React services, CKAD, cut costs 30%, saved $5,000, senior backend remote saas work")
	r := v.Score(p, "Senior Backend Engineer", "remote saas", []string{"python", "docker", "kubernetes", "react"})

	if len(r.Strengths) != 4 {
		t.Fatalf("Strengths = %v, want exactly 4", r.Strengths)
	}
	if !strings.Contains(r.Strengths[0], "4 of the skills") {
		t.Errorf("Strengths[0] = %q, want the skill-count message first", r.Strengths[0])
	}
	if !strings.Contains(r.Strengths[1], "quantifies impact") {
		t.Errorf("Strengths[1] = %q, want the metrics message second", r.Strengths[1])
	}
	if !strings.Contains(r.Strengths[2], "action verbs") {
		t.Errorf("Strengths[2] = %q, want the action-verb message third", r.Strengths[2])
	}
	if !strings.Contains(r.Strengths[3], "ckad") {
		t.Errorf("Strengths[3] = %q, want the certification message fourth", r.Strengths[3])
	}
}

func TestFeedback_ImprovementsAllFire(t *testing.T) {
	v := testVocab()

	// A bare resume against a demanding job trips every improvement rule.
	p := v.Extract("generalist, open to anything")
	r := v.Score(p, "Senior Backend Engineer", "remote saas role", []string{"python", "docker", "kubernetes", "react"})

	if len(r.Improvements) != 4 {
		t.Fatalf("Improvements = %v, want exactly 4", r.Improvements)
	}
	if !strings.Contains(r.Improvements[0], "python, docker, kubernetes, react") {
		t.Errorf("Improvements[0] = %q, want missing skills named first", r.Improvements[0])
	}
	if !strings.Contains(r.Improvements[1], "Quantify") {
		t.Errorf("Improvements[1] = %q, want the metrics nudge second", r.Improvements[1])
	}
	if !strings.Contains(r.Improvements[2], "action verbs") {
		t.Errorf("Improvements[2] = %q, want the action-verb nudge third", r.Improvements[2])
	}
	if !strings.Contains(r.Improvements[3], "genuinely apply") {
		t.Errorf("Improvements[3] = %q, want the keyword nudge fourth", r.Improvements[3])
	}
}

func TestFeedback_ImprovementsQuiet(t *testing.T) {
	v := testVocab()

	// A resume that covers everything only gets nudged where it is thin.
	p := v.Extract("Led and built python docker kubernetes react, senior backend remote saas, 30% and $4,000 improvements")
	r := v.Score(p, "Backend Engineer", "", []string{"python", "docker"})

	if len(r.Improvements) != 0 {
		t.Errorf("Improvements = %v, want none", r.Improvements)
	}
}

func TestFeedback_MetricSuggestions(t *testing.T) {
	v := testVocab()
	p := v.Extract("python")

	tests := []struct {
		name string
		desc string
		want []string // substring per expected suggestion, in order
	}{
		{
			name: "team and performance",
			desc: "lead a team, own performance tuning",
			want: []string{"teams you led", "performance numbers"},
		},
		{
			name: "all five topics capped at three",
			desc: "lead team performance revenue cost user customer project delivery",
			want: []string{"teams you led", "performance numbers", "business outcomes"},
		},
		{
			name: "no topical words",
			desc: "quiet maintenance position",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := v.Score(p, "Engineer", tt.desc, nil)
			if len(r.MetricSuggestions) != len(tt.want) {
				t.Fatalf("MetricSuggestions = %v, want %d entries", r.MetricSuggestions, len(tt.want))
			}
			for i, sub := range tt.want {
				if !strings.Contains(r.MetricSuggestions[i], sub) {
					t.Errorf("MetricSuggestions[%d] = %q, want substring %q", i, r.MetricSuggestions[i], sub)
				}
			}
		})
	}
}
