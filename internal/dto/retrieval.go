package dto

// QuestionsRequest carries the parameters of a question lookup.
type QuestionsRequest struct {
	Company string `json:"company" query:"company"`
	// Experience is free text, e.g. "2.5". Unparseable values fall
	// back to the entry bracket.
	Experience string `json:"experience" query:"experience"`
	Category   string `json:"category" query:"category"`
	Difficulty string `json:"difficulty" query:"difficulty"`
	// Role seeds supplementary question templates; empty means the
	// configured default role.
	Role string `json:"role" query:"role"`
}

// ResolveResponse is the outcome of a company name resolution.
type ResolveResponse struct {
	Input   string  `json:"input"`
	Match   string  `json:"match,omitempty"`
	Score   float64 `json:"score"`
	Matched bool    `json:"matched"`
}

// CompaniesResponse lists known companies in database order.
type CompaniesResponse struct {
	Companies []string `json:"companies"`
}

// CategoriesResponse lists categories with their topics.
type CategoriesResponse struct {
	Categories []string            `json:"categories"`
	Topics     map[string][]string `json:"topics"`
}

// CatalogResponse is a generic name-to-description listing, used for
// difficulty levels and question sources.
type CatalogResponse struct {
	Entries map[string]string `json:"entries"`
}

// LookupRecord is one persisted question lookup.
type LookupRecord struct {
	ID            string `json:"id"`
	Company       string `json:"company"`
	Bracket       string `json:"experience_bracket"`
	Category      string `json:"category,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	Status        string `json:"status"`
	QuestionCount int    `json:"question_count"`
	CreatedAt     string `json:"created_at"`
}

// HistoryResponse lists recent lookups, newest first.
type HistoryResponse struct {
	Lookups []LookupRecord `json:"lookups"`
}

// ReloadResponse reports the outcome of an admin database reload.
type ReloadResponse struct {
	Reloaded  bool `json:"reloaded"`
	Companies int  `json:"companies"`
}
