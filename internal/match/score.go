package match

import (
	"math"
	"strings"
)

// Score weights. Skills dominate, keyword overlap is next, and the
// remaining 30 points reward quantified impact, demonstrated action,
// and credentials.
const (
	weightSkills      = 40.0
	weightKeywords    = 30.0
	weightMetrics     = 15.0
	weightActionVerbs = 10.0
	weightCerts       = 5.0
)

// Display caps. Ratios are computed over the full sets before these
// truncations apply.
const (
	maxMatchingKeywords = 10
	maxMissingKeywords  = 8
	maxMissingSkills    = 6
)

// Result is the outcome of scoring one profile against one job.
type Result struct {
	Score             int      `json:"score"`
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	MatchingKeywords  []string `json:"matching_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	MetricSuggestions []string `json:"metric_suggestions"`
	KeywordDensity    int      `json:"keyword_density"`
	Summary           string   `json:"summary"`
}

// Score computes a weighted 0–100 match between an extracted profile and
// a job given as (title, description, requirements). All inputs may be
// empty; an empty target degrades to the 0.5 neutral ratio rather than
// an error.
func (v *Vocabulary) Score(p *Profile, title, description string, requirements []string) *Result {
	targetText := strings.ToLower(title + " " + description + " " + strings.Join(requirements, " "))

	targetSkills := termHits(targetText, v.Skills)
	profileSkills := toSet(p.Skills)

	var matchingSkills, missingSkills []string
	for _, s := range targetSkills {
		if profileSkills[s] {
			matchingSkills = append(matchingSkills, s)
		} else {
			missingSkills = append(missingSkills, s)
		}
	}

	targetKW := v.extractKeywords(targetText)
	profileKW := toSet(v.extractKeywords(strings.ToLower(p.RawText)))

	var matchingKW, missingKW []string
	for _, kw := range targetKW {
		if profileKW[kw] {
			matchingKW = append(matchingKW, kw)
		} else {
			missingKW = append(missingKW, kw)
		}
	}

	skillRatio := neutralRatio
	if len(targetSkills) > 0 {
		skillRatio = float64(len(matchingSkills)) / float64(len(targetSkills))
	}
	keywordRatio := neutralRatio
	if len(targetKW) > 0 {
		keywordRatio = float64(len(matchingKW)) / float64(len(targetKW))
	}

	hasMetrics := len(p.Metrics) > 0
	hasVerbs := v.hasActionVerbs(p.RawText)
	hasCerts := len(p.Certifications) > 0

	raw := skillRatio*weightSkills + keywordRatio*weightKeywords
	if hasMetrics {
		raw += weightMetrics
	}
	if hasVerbs {
		raw += weightActionVerbs
	}
	if hasCerts {
		raw += weightCerts
	}

	r := &Result{
		Score:            clampScore(int(math.Round(raw))),
		MatchingSkills:   matchingSkills,
		MissingSkills:    truncate(missingSkills, maxMissingSkills),
		MatchingKeywords: truncate(matchingKW, maxMatchingKeywords),
		MissingKeywords:  truncate(missingKW, maxMissingKeywords),
		KeywordDensity:   clampScore(int(math.Round(keywordRatio * 100))),
	}
	r.Summary = scoreSummary(r.Score)

	fc := &feedbackInput{
		profile:        p,
		result:         r,
		targetText:     targetText,
		hasActionVerbs: hasVerbs,
	}
	r.Strengths = applyRules(strengthRules, fc, maxStrengths)
	r.Improvements = applyRules(improvementRules, fc, maxImprovements)
	r.MetricSuggestions = applyRules(metricSuggestionRules, fc, maxMetricSuggestions)

	return r
}

// Score runs the default vocabulary scorer.
func Score(p *Profile, title, description string, requirements []string) *Result {
	return defaultVocab.Score(p, title, description, requirements)
}

// neutralRatio stands in for a ratio whose target set is empty: absence
// of data is not evidence either way.
const neutralRatio = 0.5

// extractKeywords is the extended keyword pass used on both sides of the
// match: skill vocabulary plus the secondary role/business vocabulary,
// deduplicated, vocabulary order. lower must already be lowercased.
func (v *Vocabulary) extractKeywords(lower string) []string {
	return union(termHits(lower, v.Skills), termHits(lower, v.Keywords))
}

// hasActionVerbs reports whether any action verb appears in text.
func (v *Vocabulary) hasActionVerbs(text string) bool {
	lower := strings.ToLower(text)
	for _, verb := range v.ActionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[strings.ToLower(s)] = true
	}
	return set
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// scoreSummary maps a score to one of four fixed narrative bands.
func scoreSummary(score int) string {
	switch {
	case score >= 80:
		return "Excellent match. Your resume lines up with most of what this role asks for; tailor your summary line and apply."
	case score >= 60:
		return "Good match. You cover the core requirements; closing a few skill gaps would make you a strong candidate."
	case score >= 40:
		return "Moderate match. There is real overlap, but the posting emphasizes several areas your resume does not show yet."
	default:
		return "This role needs tailoring. Rework your resume to surface relevant experience before applying."
	}
}
