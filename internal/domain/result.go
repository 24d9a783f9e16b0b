package domain

// Status tags the outcome of a retrieval request.
//
// Error is reserved for structurally invalid input and company
// resolution failure. A valid request that finds nothing is Partial,
// never Error: "your input was invalid" and "the database has
// nothing" are different answers.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Filters carries the category/difficulty filter pair of a request.
// An empty field means the filter is not set.
type Filters struct {
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Suggestions holds the best-effort alternatives offered on a
// Partial result. Each sub-list is capped at two entries and is
// omitted when empty.
type Suggestions struct {
	SameCompany    []Question `json:"same_company,omitempty"`
	SameCategory   []Question `json:"same_category,omitempty"`
	SameDifficulty []Question `json:"same_difficulty,omitempty"`
	OtherCompanies []Question `json:"other_companies,omitempty"`
}

// Empty reports whether no sub-list has anything to offer.
func (s Suggestions) Empty() bool {
	return len(s.SameCompany) == 0 && len(s.SameCategory) == 0 &&
		len(s.SameDifficulty) == 0 && len(s.OtherCompanies) == 0
}

// RetrievalResult is the tagged result of a question lookup. All
// failure modes of the retrieval core are values of this type; the
// core never lets an error escape its public operations for expected
// no-match conditions.
type RetrievalResult struct {
	Status            Status            `json:"status"`
	Company           string            `json:"company,omitempty"`
	ExperienceBracket ExperienceBracket `json:"experience_bracket,omitempty"`
	Questions         []Question        `json:"questions,omitempty"`

	// FiltersRequested is what the caller asked for;
	// FiltersApplied is what actually narrowed the result. A
	// requested filter that would have zeroed the result set is
	// dropped and therefore absent from FiltersApplied.
	FiltersRequested Filters `json:"filters_requested"`
	FiltersApplied   Filters `json:"filters_applied"`

	Message string `json:"message,omitempty"`

	// ErrorCode classifies an Error result so transports can map it
	// without inspecting the payload. Empty on Success and Partial.
	ErrorCode ErrorCode `json:"error_code,omitempty"`

	// AvailableCompanies is populated on company-resolution
	// failure as a recovery aid.
	AvailableCompanies []string `json:"available_companies,omitempty"`

	// Suggestions is populated on Partial results.
	Suggestions *Suggestions `json:"suggestions,omitempty"`
}
