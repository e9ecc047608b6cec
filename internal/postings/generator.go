// Package postings fabricates job postings from fixed vocabularies.
// There is no job-board integration anywhere in this repo: every
// company, salary, and requirement below is invented, selected at
// random, and exists only to give the scorer something to chew on.
package postings

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Posting is one synthetic job posting.
type Posting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	JobType      string   `json:"job_type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Posted       string   `json:"posted"`
}

var companies = []string{
	"Lumenware", "Brightpath Labs", "Nimbus Stack", "Vantage Loop",
	"Cobalt Harbor", "Driftline", "Quanta Forge", "Meridian Grid",
	"Hollow Pine Software", "Arcfield Systems", "Tesselate", "Northbeam",
	"Signal Garden", "Ferrous Cloud", "Opaline Tech",
}

var locations = []string{
	"Remote", "San Francisco, CA", "New York, NY", "Austin, TX",
	"Seattle, WA", "Denver, CO", "Boston, MA", "Chicago, IL",
	"Remote (US)", "Toronto, ON",
}

var seniorities = []string{"", "Junior ", "Senior ", "Staff ", "Lead "}

var jobTypes = []string{"Full-time", "Full-time", "Full-time", "Contract", "Part-time"}

var postedAges = []string{
	"today", "yesterday", "2 days ago", "3 days ago", "5 days ago",
	"1 week ago", "2 weeks ago", "3 weeks ago",
}

// requirementPool is sampled per posting. Terms deliberately overlap
// the scorer's skill vocabulary so generated postings produce varied,
// non-trivial match scores.
var requirementPool = []string{
	"python", "javascript", "typescript", "java", "golang", "rust",
	"react", "vue", "node.js", "django", "spring", "graphql",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "ci/cd",
	"postgresql", "mongodb", "redis", "kafka", "elasticsearch",
	"sql", "machine learning", "agile",
}

var descriptionTemplates = []string{
	"%s is hiring a %s to join our %s team. You will own features end to end, from design through delivery, and help us scale our platform for a growing customer base.",
	"As a %s at %s, you will work cross-functional with product and design to ship user-facing improvements, optimize performance, and mentor junior engineers. (%s team)",
	"%s builds tooling for modern engineering teams. We are looking for a %s who cares about reliability and cost, enjoys ownership, and communicates clearly. %s team, lightweight process.",
	"Join %s as a %s. Our %s team runs a microservices platform serving millions of users; you will lead projects that directly move revenue and customer satisfaction.",
}

var teamNames = []string{"platform", "growth", "infrastructure", "product", "data"}

// Generator produces synthetic postings. A fixed seed yields a fixed
// sequence, which is how tests pin its output; production seeds from
// the clock. Not safe for concurrent use; give each request its own.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate fabricates n postings for the given role query. An empty
// query falls back to "Software Engineer"; an empty location draws from
// the location vocabulary per posting.
func (g *Generator) Generate(query, location string, n int) []Posting {
	role := strings.TrimSpace(query)
	if role == "" {
		role = "Software Engineer"
	}
	role = titleCase(role)

	out := make([]Posting, 0, n)
	for i := 0; i < n; i++ {
		title := g.pick(seniorities) + role
		company := g.pick(companies)
		loc := location
		if loc == "" {
			loc = g.pick(locations)
		}
		team := g.pick(teamNames)

		desc := g.pick(descriptionTemplates)
		// Template argument order varies; rotate company/title to match.
		var rendered string
		switch desc {
		case descriptionTemplates[1]:
			rendered = fmt.Sprintf(desc, title, company, team)
		default:
			rendered = fmt.Sprintf(desc, company, title, team)
		}

		out = append(out, Posting{
			ID:           uuid.NewString(),
			Title:        title,
			Company:      company,
			Location:     loc,
			Salary:       g.salary(),
			JobType:      g.pick(jobTypes),
			Description:  rendered,
			Requirements: g.requirements(),
			Posted:       g.pick(postedAges),
		})
	}
	return out
}

func (g *Generator) pick(items []string) string {
	return items[g.rng.Intn(len(items))]
}

// salary renders a plausible annual range in $5k steps.
func (g *Generator) salary() string {
	base := 70 + g.rng.Intn(23)*5  // 70k–180k
	spread := 20 + g.rng.Intn(9)*5 // 20k–60k
	return fmt.Sprintf("$%dk–$%dk", base, base+spread)
}

// requirements samples 3–6 distinct terms from the pool.
func (g *Generator) requirements() []string {
	count := 3 + g.rng.Intn(4)
	perm := g.rng.Perm(len(requirementPool))
	reqs := make([]string, 0, count)
	for _, idx := range perm[:count] {
		reqs = append(reqs, requirementPool[idx])
	}
	return reqs
}

// titleCase uppercases the first letter of each word, leaving the rest
// of the word as typed (so "iOS engineer" stays "iOS Engineer").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
