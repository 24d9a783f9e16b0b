package service

import (
	"context"
	"fmt"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/matcher"
	"interview-prep/internal/store"

	"go.uber.org/zap"
)

// suggestionLimit caps each alternative sub-list on a Partial result.
const suggestionLimit = 2

// RetrievalService defines the interface for question retrieval
// operations. All expected no-match conditions come back as tagged
// RetrievalResult values, never as errors.
type RetrievalService interface {
	// Resolve maps a free-text company name onto a database key.
	Resolve(company string) (match string, score float64, ok bool)
	// GetQuestions runs the full retrieval pipeline: resolve
	// company, derive experience bracket, filter, merge
	// supplementary questions, deduplicate.
	GetQuestions(ctx context.Context, req *dto.QuestionsRequest) *domain.RetrievalResult
	// ListCompanies returns company names in database order.
	ListCompanies() []string
	// ListCategories returns category names in database order with
	// their topic lists.
	ListCategories() *dto.CategoriesResponse
	// DifficultyLevels returns the difficulty level descriptions.
	DifficultyLevels() map[string]string
	// Sources returns the question source descriptions.
	Sources() map[string]string
	// ReloadDatabase swaps in a freshly loaded database snapshot.
	ReloadDatabase() error
}

// retrievalService implements RetrievalService over an immutable
// store snapshot. It never mutates the store.
type retrievalService struct {
	store       *store.Store
	threshold   float64
	provider    domain.SupplementaryProvider // nil when search is disabled
	maxResults  int
	defaultRole string
}

// NewRetrievalService creates a new retrieval service. provider may
// be nil, in which case results are served from the local database
// only.
func NewRetrievalService(st *store.Store, threshold float64, provider domain.SupplementaryProvider, maxResults int, defaultRole string) RetrievalService {
	if threshold <= 0 {
		threshold = matcher.DefaultThreshold
	}
	return &retrievalService{
		store:       st,
		threshold:   threshold,
		provider:    provider,
		maxResults:  maxResults,
		defaultRole: defaultRole,
	}
}

func (s *retrievalService) ListCompanies() []string {
	return s.store.Companies()
}

func (s *retrievalService) ListCategories() *dto.CategoriesResponse {
	return &dto.CategoriesResponse{
		Categories: s.store.CategoryNames(),
		Topics:     s.store.Categories(),
	}
}

func (s *retrievalService) DifficultyLevels() map[string]string {
	return s.store.DifficultyLevels()
}

func (s *retrievalService) Sources() map[string]string {
	return s.store.Sources()
}

func (s *retrievalService) ReloadDatabase() error {
	return s.store.Reload()
}

// Resolve maps company onto a database key. An exact key match
// (case-insensitive) is authoritative and bypasses the fuzzy
// threshold entirely; otherwise the matcher decides.
func (s *retrievalService) Resolve(company string) (string, float64, bool) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", 0, false
	}
	for _, name := range s.store.Companies() {
		if strings.EqualFold(name, company) {
			return name, 1.0, true
		}
	}
	return matcher.FindClosestMatch(company, s.store.Companies(), s.threshold)
}

func (s *retrievalService) GetQuestions(ctx context.Context, req *dto.QuestionsRequest) *domain.RetrievalResult {
	requested := domain.Filters{
		Category:   strings.TrimSpace(req.Category),
		Difficulty: strings.TrimSpace(req.Difficulty),
	}

	input := strings.TrimSpace(req.Company)
	if input == "" {
		return &domain.RetrievalResult{
			Status:           domain.StatusError,
			ErrorCode:        domain.ErrInvalidInput,
			Message:          "Company name is required",
			FiltersRequested: requested,
		}
	}

	company, score, ok := s.Resolve(input)
	if !ok {
		return &domain.RetrievalResult{
			Status:    domain.StatusError,
			ErrorCode: domain.ErrCompanyNotFound,
			Message: fmt.Sprintf("No matching company found for '%s'. Available companies: %s",
				input, strings.Join(s.store.Companies(), ", ")),
			FiltersRequested:   requested,
			AvailableCompanies: s.store.Companies(),
		}
	}

	bracket := domain.ParseExperience(req.Experience)
	bucket := s.store.Bucket(company, bracket)

	if len(bucket) == 0 {
		return s.partialResult(company, bracket, requested)
	}

	questions, applied := applyFilters(bucket, requested)

	if s.provider != nil {
		questions = append(questions, s.fetchSupplementary(ctx, company, req.Role, requested.Category)...)
	}
	questions = dedupe(questions)

	result := &domain.RetrievalResult{
		Status:            domain.StatusSuccess,
		Company:           company,
		ExperienceBracket: bracket,
		Questions:         questions,
		FiltersRequested:  requested,
		FiltersApplied:    applied,
	}
	if !strings.EqualFold(company, input) && score < 1.0 {
		result.Message = fmt.Sprintf("Using '%s' as the closest match for '%s'", company, input)
	}
	return result
}

// applyFilters narrows questions by category then difficulty. A
// filter that would eliminate every remaining candidate is skipped
// and the pre-filter set is kept: filters narrow opportunistically
// but never zero out the result.
func applyFilters(questions []domain.Question, requested domain.Filters) ([]domain.Question, domain.Filters) {
	var applied domain.Filters
	out := questions
	if requested.Category != "" {
		if filtered := filterByCategory(out, requested.Category); len(filtered) > 0 {
			out = filtered
			applied.Category = requested.Category
		}
	}
	if requested.Difficulty != "" {
		if filtered := filterByDifficulty(out, requested.Difficulty); len(filtered) > 0 {
			out = filtered
			applied.Difficulty = requested.Difficulty
		}
	}
	return out, applied
}

func filterByCategory(questions []domain.Question, category string) []domain.Question {
	var out []domain.Question
	for _, q := range questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

func filterByDifficulty(questions []domain.Question, difficulty string) []domain.Question {
	var out []domain.Question
	for _, q := range questions {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// dedupe removes questions with identical question text, keeping the
// first occurrence in its original position.
func dedupe(questions []domain.Question) []domain.Question {
	seen := make(map[string]struct{}, len(questions))
	out := questions[:0:0]
	for _, q := range questions {
		if _, dup := seen[q.Question]; dup {
			continue
		}
		seen[q.Question] = struct{}{}
		out = append(out, q)
	}
	return out
}

func (s *retrievalService) fetchSupplementary(ctx context.Context, company, role, category string) []domain.Question {
	if role == "" {
		role = s.defaultRole
	}
	fetched, err := s.provider.FetchSupplementary(ctx, company, role, category, s.maxResults)
	if err != nil {
		logger.Get().Warn("Supplementary question fetch failed",
			zap.String("company", company),
			zap.Error(err),
		)
		return nil
	}
	// Provider output is untrusted; normalize sparse records.
	out := make([]domain.Question, 0, len(fetched))
	for _, q := range fetched {
		if q.Question == "" {
			continue
		}
		out = append(out, q.WithDefaults())
	}
	return out
}

// partialResult builds the diagnostic answer for a company+bracket
// that holds no questions at all. It offers best-effort alternatives
// instead of a question list.
func (s *retrievalService) partialResult(company string, bracket domain.ExperienceBracket, requested domain.Filters) *domain.RetrievalResult {
	bucket := s.store.Bucket(company, bracket)

	suggestions := &domain.Suggestions{
		SameCompany: capped(bucket, suggestionLimit),
	}
	if requested.Category != "" {
		suggestions.SameCategory = capped(filterByCategory(bucket, requested.Category), suggestionLimit)
	}
	if requested.Difficulty != "" {
		suggestions.SameDifficulty = capped(filterByDifficulty(bucket, requested.Difficulty), suggestionLimit)
	}
	suggestions.OtherCompanies = s.otherCompanyQuestions(company, bracket, requested)

	return &domain.RetrievalResult{
		Status:            domain.StatusPartial,
		Company:           company,
		ExperienceBracket: bracket,
		FiltersRequested:  requested,
		Message:           partialMessage(company, bracket, requested, suggestions),
		Suggestions:       suggestions,
	}
}

// otherCompanyQuestions scans the remaining companies' buckets under
// the same bracket, with the requested filters applied strictly, in
// database order.
func (s *retrievalService) otherCompanyQuestions(company string, bracket domain.ExperienceBracket, requested domain.Filters) []domain.Question {
	var out []domain.Question
	for _, other := range s.store.Companies() {
		if other == company {
			continue
		}
		candidates := s.store.Bucket(other, bracket)
		if requested.Category != "" {
			candidates = filterByCategory(candidates, requested.Category)
		}
		if requested.Difficulty != "" {
			candidates = filterByDifficulty(candidates, requested.Difficulty)
		}
		out = append(out, candidates...)
		if len(out) >= suggestionLimit {
			return out[:suggestionLimit]
		}
	}
	return out
}

func capped(questions []domain.Question, n int) []domain.Question {
	if len(questions) > n {
		return questions[:n]
	}
	return questions
}

func partialMessage(company string, bracket domain.ExperienceBracket, requested domain.Filters, suggestions *domain.Suggestions) string {
	var filters []string
	if requested.Category != "" {
		filters = append(filters, fmt.Sprintf("category '%s'", requested.Category))
	}
	if requested.Difficulty != "" {
		filters = append(filters, fmt.Sprintf("difficulty '%s'", requested.Difficulty))
	}
	filterMsg := ""
	if len(filters) > 0 {
		filterMsg = " with " + strings.Join(filters, " and ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "No exact matches found for %s with %s years experience range%s.\n", company, bracket, filterMsg)

	if len(suggestions.SameCompany) > 0 {
		fmt.Fprintf(&b, "\nOther questions from %s (%s years):\n", company, bracket)
		for _, q := range suggestions.SameCompany {
			fmt.Fprintf(&b, "- %s (Category: %s, Difficulty: %s)\n", q.Question, q.Category, q.Difficulty)
		}
	}
	if len(suggestions.SameCategory) > 0 {
		fmt.Fprintf(&b, "\nQuestions with category '%s' but different difficulty:\n", requested.Category)
		for _, q := range suggestions.SameCategory {
			fmt.Fprintf(&b, "- %s (Difficulty: %s)\n", q.Question, q.Difficulty)
		}
	}
	if len(suggestions.SameDifficulty) > 0 {
		fmt.Fprintf(&b, "\nQuestions with difficulty '%s' but different category:\n", requested.Difficulty)
		for _, q := range suggestions.SameDifficulty {
			fmt.Fprintf(&b, "- %s (Category: %s)\n", q.Question, q.Category)
		}
	}
	if len(suggestions.OtherCompanies) > 0 {
		b.WriteString("\nSimilar questions from other companies:\n")
		for _, q := range suggestions.OtherCompanies {
			fmt.Fprintf(&b, "- %s\n", q.Question)
		}
	}

	b.WriteString("\nTip: Try adjusting the filters or selecting a different experience range for more results.")
	return b.String()
}
