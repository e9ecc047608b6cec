package match

import (
	"fmt"
	"math"
	"strings"
)

// Profile completeness scoring constants. A caller with no profile link
// still gets the 50 floor, not zero: the band narrative handles the
// missing-profile case, and a zero would read as a scoring failure.
const (
	profileBaseScore   = 50
	profileSignalBonus = 25

	maxEndorsements        = 3
	maxProfileSkillGaps    = 4
	maxProfileImprovements = 4
)

// ProfileResult is the outcome of scoring an external profile reference
// (e.g. a LinkedIn URL) against a target role.
type ProfileResult struct {
	Score        int      `json:"score"`
	Headline     string   `json:"headline"`
	Endorsements []string `json:"endorsements,omitempty"`
	SkillGaps    []string `json:"skill_gaps,omitempty"`
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
}

// ScoreProfile rates how complete a profile reference looks for the
// target role. matchResult is optional; when present and a profile
// reference was supplied, the completeness score is blended 50/50 with
// the resume match score.
func (v *Vocabulary) ScoreProfile(profileRef, title, description string, requirements []string, matchResult *Result) *ProfileResult {
	ref := strings.TrimSpace(profileRef)
	hasProfile := ref != ""

	score := profileBaseScore
	if hasProfile {
		if strings.Contains(ref, "/in/") {
			score += profileSignalBonus
		}
		if len(ref) > 30 {
			score += profileSignalBonus
		}
		if score > 100 {
			score = 100
		}
		if matchResult != nil {
			score = int(math.Round(float64(score+matchResult.Score) / 2))
		}
	}

	r := &ProfileResult{
		Score:    clampScore(score),
		Headline: suggestHeadline(title, matchResult),
		Summary:  profileSummary(hasProfile, score),
	}

	if matchResult != nil {
		for _, skill := range truncate(matchResult.MatchingSkills, maxEndorsements) {
			r.Endorsements = append(r.Endorsements, fmt.Sprintf("Ask a colleague to endorse you for %s.", skill))
		}
		r.SkillGaps = truncate(matchResult.MissingSkills, maxProfileSkillGaps)
	}

	if !hasProfile {
		r.Improvements = append(r.Improvements, "Add a professional profile link to your application; most recruiters look for one before replying.")
	}
	r.Improvements = append(r.Improvements,
		"Mirror the role's headline keywords in your own headline.",
		"Keep your profile summary short, first person, and outcome focused.",
		"Link to work samples or projects that back up your top skills.",
	)
	r.Improvements = truncate(r.Improvements, maxProfileImprovements)

	return r
}

// ScoreProfile runs the default vocabulary profile scorer.
func ScoreProfile(profileRef, title, description string, requirements []string, matchResult *Result) *ProfileResult {
	return defaultVocab.ScoreProfile(profileRef, title, description, requirements, matchResult)
}

// suggestHeadline builds a headline from the last two words of the role
// title plus the candidate's top matching skills when known.
func suggestHeadline(title string, matchResult *Result) string {
	words := strings.Fields(title)
	if len(words) > 2 {
		words = words[len(words)-2:]
	}
	role := strings.Join(words, " ")
	if role == "" {
		role = "Professional"
	}

	if matchResult != nil && len(matchResult.MatchingSkills) > 0 {
		top := truncate(matchResult.MatchingSkills, 2)
		return fmt.Sprintf("%s | %s", role, strings.Join(top, " · "))
	}
	return fmt.Sprintf("%s | Experienced Professional", role)
}

// profileSummary mirrors the match score bands with profile-specific
// language. The missing-profile narrative takes priority over the bands.
func profileSummary(hasProfile bool, score int) string {
	if !hasProfile {
		return "No professional profile was provided. Adding one typically lifts recruiter response rates noticeably."
	}
	switch {
	case score >= 80:
		return "Your profile presents you as a strong, credible candidate for this role."
	case score >= 60:
		return "Your profile is solid; a few targeted updates would sharpen it for this role."
	case score >= 40:
		return "Your profile covers the basics but undersells you for this role."
	default:
		return "Your profile needs work before it will support this application."
	}
}
