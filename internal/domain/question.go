package domain

import "strconv"

// Default values substituted when a question record arrives without
// them (e.g. from a supplementary provider).
const (
	DefaultCategory   = "General"
	DefaultDifficulty = "Medium"
	DefaultType       = "Technical"
)

// SentinelCompany is the catch-all bucket of generic questions that
// every question database is expected to carry.
const SentinelCompany = "Popular Interview Questions"

// Question represents a single interview question record.
type Question struct {
	Question        string   `json:"question"`
	Answer          string   `json:"answer,omitempty"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	Type            string   `json:"type,omitempty"`
	DateAsked       string   `json:"date_asked,omitempty"`
	Source          string   `json:"source,omitempty"`
	Followup        string   `json:"followup,omitempty"`
	FollowupAnswer  string   `json:"followup_answer,omitempty"`
	CompanyReported []string `json:"company_reported,omitempty"`
}

// WithDefaults returns a copy of the question with empty category,
// difficulty and type fields replaced by their defaults. Retrieval
// never fails on a sparsely populated record.
func (q Question) WithDefaults() Question {
	if q.Category == "" {
		q.Category = DefaultCategory
	}
	if q.Difficulty == "" {
		q.Difficulty = DefaultDifficulty
	}
	if q.Type == "" {
		q.Type = DefaultType
	}
	return q
}

// ExperienceBracket partitions questions by seniority.
type ExperienceBracket string

const (
	BracketEntry  ExperienceBracket = "0-2"
	BracketMid    ExperienceBracket = "2-5"
	BracketSenior ExperienceBracket = "5+"
)

// Brackets lists all experience brackets in ascending order.
func Brackets() []ExperienceBracket {
	return []ExperienceBracket{BracketEntry, BracketMid, BracketSenior}
}

// BracketForYears maps years of experience onto a bracket.
func BracketForYears(years float64) ExperienceBracket {
	switch {
	case years <= 2:
		return BracketEntry
	case years <= 5:
		return BracketMid
	default:
		return BracketSenior
	}
}

// ParseExperience parses a free-text years-of-experience value and
// maps it onto a bracket. Unparseable input defaults to the entry
// bracket rather than erroring; invalid numeric input is an expected
// user condition.
func ParseExperience(s string) ExperienceBracket {
	years, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return BracketEntry
	}
	return BracketForYears(years)
}
