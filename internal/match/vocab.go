// Package match implements the resume/job scoring core: keyword and skill
// extraction over free text, a weighted 0–100 match score, and rule-based
// feedback generation. Everything here is deterministic (same inputs,
// same output) and free of I/O, so callers may invoke it concurrently
// without coordination.
package match

import "regexp"

// Vocabulary holds the fixed term lists the extractor and scorer run
// against. All matching is case-insensitive substring containment, so
// terms must be lowercase. Order matters: extraction results preserve
// vocabulary order, and tests rely on that.
//
// Production code uses DefaultVocabulary; tests substitute small
// vocabularies to keep assertions exact.
type Vocabulary struct {
	Skills         []string
	ActionVerbs    []string
	Keywords       []string // role/seniority/work-mode/business terms, beyond Skills
	Education      []string
	Certifications []string
	Experience     []string
	MetricPatterns []*regexp.Regexp
}

// defaultVocab backs the package-level convenience functions.
var defaultVocab = &Vocabulary{
	Skills: []string{
		"javascript", "typescript", "python", "java", "golang", "c++", "c#",
		"ruby", "php", "swift", "kotlin", "rust", "scala", "sql",
		"react", "angular", "vue", "next.js", "node.js", "express",
		"django", "flask", "spring", "rails", "graphql", "rest api",
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
		"jenkins", "ci/cd", "git", "linux",
		"postgresql", "mysql", "mongodb", "redis", "kafka", "elasticsearch",
		"machine learning", "data analysis", "figma", "agile", "scrum",
	},
	ActionVerbs: []string{
		"led", "managed", "developed", "built", "designed", "implemented",
		"created", "launched", "improved", "increased", "reduced",
		"optimized", "delivered", "architected", "automated", "mentored",
		"spearheaded", "streamlined", "coordinated", "negotiated",
	},
	Keywords: []string{
		"senior", "junior", "lead", "principal", "staff",
		"manager", "architect", "full-stack", "frontend", "backend",
		"devops", "remote", "hybrid", "onsite",
		"startup", "enterprise", "b2b", "saas", "fintech", "e-commerce",
		"healthcare", "security", "scalability", "microservices", "cloud",
		"analytics", "stakeholder", "cross-functional", "product", "mentorship",
	},
	Education: []string{
		"bachelor", "master", "phd", "b.s.", "m.s.", "mba",
		"degree", "university", "college", "computer science", "bootcamp",
	},
	Certifications: []string{
		"aws certified", "azure certified", "google cloud certified",
		"pmp", "cissp", "ckad", "cka", "scrum master", "comptia",
	},
	Experience: []string{
		"experience", "years of", "worked", "professional", "career", "employment",
	},
	MetricPatterns: []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$[\d,]+`),
		regexp.MustCompile(`\d+x`),
		regexp.MustCompile(`(?i)\d[\d,]*\+?\s*(?:users|customers|clients|employees|team members)`),
		regexp.MustCompile(`(?i)\d[\d,]*\+?\s*(?:years|months)`),
		regexp.MustCompile(`(?i)\d[\d,]*\+?\s*(?:projects|applications|systems|features)`),
	},
}

// DefaultVocabulary returns the built-in production vocabulary.
func DefaultVocabulary() *Vocabulary {
	return defaultVocab
}
