package jobserver

import (
	"github.com/j1lin0101/find-jobs-ai/internal/match"
	"github.com/j1lin0101/find-jobs-ai/internal/postings"
)

// JobSearchInput is the input for job_search.
type JobSearchInput struct {
	Query      string `json:"query" jsonschema:"Role to search for (e.g. backend engineer, data analyst)"`
	Resume     string `json:"resume,omitempty" jsonschema:"Plain-text resume content to score each posting against"`
	Location   string `json:"location,omitempty" jsonschema:"Preferred location (e.g. Remote, Berlin); empty picks per posting"`
	ProfileURL string `json:"profile_url,omitempty" jsonschema:"Optional professional profile URL to rate alongside each posting"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Number of postings to return (default from server config)"`
}

// ScoredPosting is one synthetic posting annotated with scorer output.
type ScoredPosting struct {
	postings.Posting
	Match   *match.Result        `json:"match"`
	Profile *match.ProfileResult `json:"profile,omitempty"`
}

// JobSearchOutput is the output for job_search.
type JobSearchOutput struct {
	Query    string          `json:"query"`
	Postings []ScoredPosting `json:"postings"`
	Summary  string          `json:"summary"`
}

// MatchScoreInput is the input for match_score.
type MatchScoreInput struct {
	Resume       string   `json:"resume" jsonschema:"Plain-text resume content"`
	Title        string   `json:"title" jsonschema:"Job title to score against"`
	Description  string   `json:"description,omitempty" jsonschema:"Job description text"`
	Requirements []string `json:"requirements,omitempty" jsonschema:"Job requirement lines"`
}

// ProfileScoreInput is the input for profile_score.
type ProfileScoreInput struct {
	ProfileURL   string   `json:"profile_url,omitempty" jsonschema:"Professional profile URL; empty still yields the baseline score"`
	Title        string   `json:"title" jsonschema:"Target job title"`
	Description  string   `json:"description,omitempty" jsonschema:"Target job description"`
	Requirements []string `json:"requirements,omitempty" jsonschema:"Target job requirement lines"`
	Resume       string   `json:"resume,omitempty" jsonschema:"Optional resume text; when present the match score is blended in"`
}
