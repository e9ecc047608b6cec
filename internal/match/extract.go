package match

import "strings"

// Profile is the structured view of one free-text resume. All slice
// fields preserve vocabulary order except Metrics, which preserves
// pattern order with duplicates intact.
type Profile struct {
	RawText        string   `json:"-"`
	Skills         []string `json:"skills"`
	Keywords       []string `json:"keywords"`
	Metrics        []string `json:"metrics,omitempty"`
	Education      []string `json:"education,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Experience     []string `json:"experience,omitempty"`
}

// Extract scans raw resume text against the vocabulary and returns a
// Profile. It never fails: empty or unrecognized text yields a Profile
// with empty sets and RawText equal to the input.
func (v *Vocabulary) Extract(text string) *Profile {
	lower := strings.ToLower(text)

	p := &Profile{
		RawText:        text,
		Skills:         termHits(lower, v.Skills),
		Education:      termHits(lower, v.Education),
		Certifications: termHits(lower, v.Certifications),
		Experience:     termHits(lower, v.Experience),
	}
	p.Keywords = union(p.Skills, termHits(lower, v.ActionVerbs))

	// Metric patterns run over the original-case text. Overlapping spans
	// matched by more than one pattern are kept as-is; the score only
	// checks non-emptiness, and the raw list is what gets displayed.
	for _, re := range v.MetricPatterns {
		p.Metrics = append(p.Metrics, re.FindAllString(text, -1)...)
	}
	return p
}

// Extract runs the default vocabulary over text.
func Extract(text string) *Profile {
	return defaultVocab.Extract(text)
}

// termHits returns the vocabulary terms contained in lower, preserving
// vocabulary order. lower must already be lowercased.
func termHits(lower string, terms []string) []string {
	var hits []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

// union appends items of b not already present in a, preserving order.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	out := append([]string(nil), a...)
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
