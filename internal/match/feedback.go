package match

import (
	"fmt"
	"strings"
)

// Feedback caps, applied after all candidates for a category are
// generated. Rules are evaluated in table order; truncation keeps the
// earliest entries.
const (
	maxStrengths         = 4
	maxImprovements      = 4
	maxMetricSuggestions = 3
)

// feedbackInput is everything a feedback rule may look at. result holds
// the skill/keyword sets computed by the scorer; feedback never mutates it.
type feedbackInput struct {
	profile        *Profile
	result         *Result
	targetText     string
	hasActionVerbs bool
}

// feedbackRule pairs a trigger with a message renderer. Modeled as data
// so the ordered-then-capped contract stays visible and testable apart
// from the scoring arithmetic.
type feedbackRule struct {
	when   func(*feedbackInput) bool
	render func(*feedbackInput) string
}

// applyRules evaluates rules in order and collects messages for every
// rule whose trigger holds, truncated to max.
func applyRules(rules []feedbackRule, in *feedbackInput, max int) []string {
	var out []string
	for _, rule := range rules {
		if rule.when(in) {
			out = append(out, rule.render(in))
		}
	}
	return truncate(out, max)
}

var strengthRules = []feedbackRule{
	{
		when: func(in *feedbackInput) bool { return len(in.result.MatchingSkills) >= 3 },
		render: func(in *feedbackInput) string {
			return fmt.Sprintf("Strong skill alignment: %d of the skills this role asks for appear on your resume.", len(in.result.MatchingSkills))
		},
	},
	{
		when: func(in *feedbackInput) bool { return len(in.profile.Metrics) >= 2 },
		render: func(*feedbackInput) string {
			return "Your resume quantifies impact with concrete numbers, which recruiters and ATS scans reward."
		},
	},
	{
		when: func(in *feedbackInput) bool { return in.hasActionVerbs },
		render: func(*feedbackInput) string {
			return "Good use of action verbs to describe your accomplishments."
		},
	},
	{
		when: func(in *feedbackInput) bool { return len(in.profile.Certifications) >= 1 },
		render: func(in *feedbackInput) string {
			return fmt.Sprintf("Certifications strengthen your profile: %s.", strings.Join(in.profile.Certifications, ", "))
		},
	},
	{
		when: func(in *feedbackInput) bool { return len(in.result.MatchingKeywords) >= 5 },
		render: func(*feedbackInput) string {
			return "Your resume already speaks the language of this posting."
		},
	},
}

var improvementRules = []feedbackRule{
	{
		when: func(in *feedbackInput) bool { return len(in.result.MissingSkills) > 0 },
		render: func(in *feedbackInput) string {
			return fmt.Sprintf("Add experience with %s if you have it; the posting calls these out.", joinFirst(in.result.MissingSkills, 4))
		},
	},
	{
		when: func(in *feedbackInput) bool { return len(in.profile.Metrics) < 2 },
		render: func(*feedbackInput) string {
			return "Quantify your achievements: add numbers, percentages, or dollar amounts to your bullet points."
		},
	},
	{
		when: func(in *feedbackInput) bool { return !in.hasActionVerbs },
		render: func(*feedbackInput) string {
			return "Start bullet points with strong action verbs like \"led\", \"built\", or \"delivered\"."
		},
	},
	{
		when: func(in *feedbackInput) bool { return len(in.result.MissingKeywords) > 3 },
		render: func(in *feedbackInput) string {
			return fmt.Sprintf("Work these terms into your resume where they genuinely apply: %s.", joinFirst(in.result.MissingKeywords, 4))
		},
	},
}

// metricSuggestionRules key off topic words in the job text, not the
// resume: they tell the candidate which kind of number this employer
// will want to see.
var metricSuggestionRules = []feedbackRule{
	{
		when: targetMentions("team", "lead"),
		render: func(*feedbackInput) string {
			return "Mention the size of teams you led or worked with (e.g. \"led a team of 8 engineers\")."
		},
	},
	{
		when: targetMentions("performance", "optimization"),
		render: func(*feedbackInput) string {
			return "Include performance numbers such as latency or load-time improvements (e.g. \"cut page load 40%\")."
		},
	},
	{
		when: targetMentions("revenue", "cost"),
		render: func(*feedbackInput) string {
			return "Tie your work to business outcomes: revenue generated, costs saved, or budget managed."
		},
	},
	{
		when: targetMentions("user", "customer"),
		render: func(*feedbackInput) string {
			return "State how many users or customers your work reached."
		},
	},
	{
		when: targetMentions("project", "delivery"),
		render: func(*feedbackInput) string {
			return "Note how many projects you delivered and whether they shipped on time."
		},
	},
}

// targetMentions builds a trigger that fires when either word appears in
// the lowercased job text.
func targetMentions(a, b string) func(*feedbackInput) bool {
	return func(in *feedbackInput) bool {
		return strings.Contains(in.targetText, a) || strings.Contains(in.targetText, b)
	}
}

// joinFirst joins up to n items with commas.
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
