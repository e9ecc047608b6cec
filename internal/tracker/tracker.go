// Package tracker persists postings the user wants to keep, with the
// match score they had when saved, in a local SQLite database.
package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Status is the application pipeline stage of a saved posting.
type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// SavedPosting is a single tracker entry.
type SavedPosting struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location,omitempty"`
	Salary     string `json:"salary,omitempty"`
	MatchScore int    `json:"match_score"`
	Status     Status `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// AddInput is the input for saving a posting.
type AddInput struct {
	Title      string `json:"title" jsonschema:"Job title of the posting to save"`
	Company    string `json:"company" jsonschema:"Company name"`
	Location   string `json:"location,omitempty" jsonschema:"Job location"`
	Salary     string `json:"salary,omitempty" jsonschema:"Salary range as shown in the posting"`
	MatchScore int    `json:"match_score,omitempty" jsonschema:"Match score (0-100) the posting had when saved"`
	Status     string `json:"status,omitempty" jsonschema:"Status: saved, applied, interview, offer, rejected (default saved)"`
	Notes      string `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

// ListInput filters the tracker listing.
type ListInput struct {
	Status string `json:"status,omitempty" jsonschema:"Only return postings with this status"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max entries to return (default 50)"`
}

// UpdateInput updates status and/or notes of a saved posting.
type UpdateInput struct {
	ID     int64  `json:"id" jsonschema:"Tracker entry id"`
	Status string `json:"status,omitempty" jsonschema:"New status: saved, applied, interview, offer, rejected"`
	Notes  string `json:"notes,omitempty" jsonschema:"Replacement notes"`
}

// Result is the output for add/update operations.
type Result struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListResult is the output for list operations.
type ListResult struct {
	Postings []SavedPosting `json:"postings"`
	Total    int            `json:"total"`
}

var (
	db     *sql.DB
	dbOnce sync.Once
	dbErr  error
)

// openDB opens (or creates) the SQLite tracker database.
func openDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		dir := filepath.Join(os.Getenv("HOME"), ".find-jobs-ai")
		if err := os.MkdirAll(dir, 0750); err != nil {
			dbErr = fmt.Errorf("tracker: mkdir %s: %w", dir, err)
			return
		}
		path := filepath.Join(dir, "tracker.db")
		d, err := sql.Open("sqlite", path)
		if err != nil {
			dbErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		d.SetMaxOpenConns(1) // SQLite: single writer
		if err := initSchema(d); err != nil {
			dbErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		db = d
	})
	return db, dbErr
}

func initSchema(d *sql.DB) error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS postings (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		company     TEXT NOT NULL,
		location    TEXT,
		salary      TEXT,
		match_score INTEGER NOT NULL DEFAULT 0,
		status      TEXT NOT NULL DEFAULT 'saved',
		notes       TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`)
	return err
}

func validStatus(s string) bool {
	switch Status(s) {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Add saves a posting to the tracker.
func Add(_ context.Context, input AddInput) (*Result, error) {
	if input.Title == "" || input.Company == "" {
		return nil, errors.New("tracker_add: title and company are required")
	}
	if input.MatchScore < 0 || input.MatchScore > 100 {
		return nil, fmt.Errorf("tracker_add: match_score %d out of range [0,100]", input.MatchScore)
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("tracker_add: invalid status %q (valid: saved, applied, interview, offer, rejected)", status)
	}

	d, err := openDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := d.Exec(
		`INSERT INTO postings (title, company, location, salary, match_score, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.Title, input.Company, input.Location, input.Salary,
		input.MatchScore, status, input.Notes, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &Result{
		ID:      id,
		Message: fmt.Sprintf("Posting '%s' at '%s' saved with status '%s' (id=%d)", input.Title, input.Company, status, id),
	}, nil
}

// List returns saved postings, newest update first, optionally filtered
// by status.
func List(_ context.Context, input ListInput) (*ListResult, error) {
	d, err := openDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("tracker_list: invalid status %q", status)
		}
		rows, err = d.Query(
			`SELECT id, title, company, location, salary, match_score, status, notes, created_at, updated_at
			 FROM postings WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = d.Query(
			`SELECT id, title, company, location, salary, match_score, status, notes, created_at, updated_at
			 FROM postings ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker_list: query: %w", err)
	}
	defer rows.Close()

	var saved []SavedPosting
	for rows.Next() {
		var p SavedPosting
		var location, salary, notes sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &location, &salary,
			&p.MatchScore, &p.Status, &notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			continue
		}
		p.Location = location.String
		p.Salary = salary.String
		p.Notes = notes.String
		saved = append(saved, p)
	}

	var total int
	if input.Status != "" {
		d.QueryRow(`SELECT COUNT(*) FROM postings WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		d.QueryRow(`SELECT COUNT(*) FROM postings`).Scan(&total) //nolint:errcheck
	}

	if saved == nil {
		saved = []SavedPosting{}
	}
	return &ListResult{Postings: saved, Total: total}, nil
}

// Update changes the status and/or notes of a saved posting.
func Update(_ context.Context, input UpdateInput) (*Result, error) {
	if input.ID <= 0 {
		return nil, errors.New("tracker_update: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("tracker_update: at least one of status or notes must be provided")
	}

	d, err := openDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch {
	case input.Status != "" && input.Notes != "":
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("tracker_update: invalid status %q", status)
		}
		_, err = d.Exec(`UPDATE postings SET status=?, notes=?, updated_at=? WHERE id=?`,
			status, input.Notes, now, input.ID)
	case input.Status != "":
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("tracker_update: invalid status %q", status)
		}
		_, err = d.Exec(`UPDATE postings SET status=?, updated_at=? WHERE id=?`,
			status, now, input.ID)
	default:
		_, err = d.Exec(`UPDATE postings SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("tracker_update: %w", err)
	}

	return &Result{
		ID:      input.ID,
		Message: fmt.Sprintf("Posting #%d updated", input.ID),
	}, nil
}
