package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockSupplementaryProvider struct {
	mock.Mock
}

func (m *MockSupplementaryProvider) FetchSupplementary(ctx context.Context, company, role, category string, max int) ([]domain.Question, error) {
	args := m.Called(ctx, company, role, category, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(filepath.Join("testdata", "questions.json"))
	require.NoError(t, s.Load())
	return s
}

func newTestService(t *testing.T, provider domain.SupplementaryProvider) RetrievalService {
	t.Helper()
	return NewRetrievalService(newTestStore(t), 0.7, provider, 5, "automation tester")
}

func TestGetQuestions_CategoryFilterApplied(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
		Category:   "Selenium",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "Acme", result.Company)
	assert.Equal(t, domain.BracketEntry, result.ExperienceBracket)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "Selenium", result.Questions[0].Category)
	assert.Equal(t, "Selenium", result.FiltersApplied.Category)
	assert.Equal(t, "Selenium", result.FiltersRequested.Category)
}

func TestGetQuestions_FilterSkippedWhenItWouldZeroResults(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
		Category:   "API",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	// Nothing matches "API", so the filter is dropped and the full
	// bucket is kept.
	assert.Len(t, result.Questions, 3)
	assert.Empty(t, result.FiltersApplied.Category)
	assert.Equal(t, "API", result.FiltersRequested.Category)
}

func TestGetQuestions_FiltersApplyCategoryThenDifficulty(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
		Category:   "Selenium",
		Difficulty: "Advanced",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	// Category narrows to the one Selenium question; the Advanced
	// difficulty filter would zero that out, so it is skipped.
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "Selenium", result.FiltersApplied.Category)
	assert.Empty(t, result.FiltersApplied.Difficulty)
	assert.Equal(t, "Advanced", result.FiltersRequested.Difficulty)
}

func TestGetQuestions_EmptyBucketIsPartialWithSuggestions(t *testing.T) {
	svc := newTestService(t, nil)

	// Acme has no 2-5 bucket; Beta Corp and the sentinel do.
	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "4",
	})

	assert.Equal(t, domain.StatusPartial, result.Status)
	assert.Equal(t, domain.BracketMid, result.ExperienceBracket)
	assert.Empty(t, result.Questions)
	assert.NotEmpty(t, result.Message)
	require.NotNil(t, result.Suggestions)
	require.Len(t, result.Suggestions.OtherCompanies, 2)
	assert.Equal(t, "How do you keep Selenium suites stable in CI?", result.Suggestions.OtherCompanies[0].Question)
	assert.Contains(t, result.Message, "Similar questions from other companies")
}

func TestGetQuestions_PartialRespectsFiltersOnOtherCompanies(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "4",
		Category:   "Framework Design",
	})

	assert.Equal(t, domain.StatusPartial, result.Status)
	require.NotNil(t, result.Suggestions)
	require.Len(t, result.Suggestions.OtherCompanies, 1)
	assert.Equal(t, "Framework Design", result.Suggestions.OtherCompanies[0].Category)
}

func TestGetQuestions_EmptyCompanyIsError(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "   ",
		Experience: "2",
	})

	assert.Equal(t, domain.StatusError, result.Status)
	assert.Equal(t, domain.ErrInvalidInput, result.ErrorCode)
	assert.Empty(t, result.AvailableCompanies)
}

func TestGetQuestions_UnresolvableCompanyIsErrorWithCompanyList(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "zzzzzzzz",
		Experience: "2",
	})

	assert.Equal(t, domain.StatusError, result.Status)
	assert.Equal(t, domain.ErrCompanyNotFound, result.ErrorCode)
	assert.Equal(t, []string{"Acme", "Beta Corp", "Popular Interview Questions"}, result.AvailableCompanies)
	assert.Contains(t, result.Message, "No matching company found")
}

func TestGetQuestions_FuzzyResolutionNotesTheMatch(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "acmee",
		Experience: "1",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "Acme", result.Company)
	assert.Contains(t, result.Message, "closest match")
}

func TestGetQuestions_InvalidExperienceDefaultsToEntryBracket(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "not-a-number",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, domain.BracketEntry, result.ExperienceBracket)
	assert.Len(t, result.Questions, 3)
}

func TestGetQuestions_SupplementaryMergedDeduplicatedAndNormalized(t *testing.T) {
	provider := new(MockSupplementaryProvider)
	// One duplicate of a local question, one sparse new record.
	provider.On("FetchSupplementary", mock.Anything, "Acme", "automation tester", "", 5).
		Return([]domain.Question{
			{Question: "How do you locate a dynamic element with Selenium?"},
			{Question: "What is your approach to exploratory testing?"},
		}, nil)

	svc := newTestService(t, provider)
	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	require.Len(t, result.Questions, 4)
	// The duplicate keeps its original position and fields.
	assert.Equal(t, "How do you locate a dynamic element with Selenium?", result.Questions[0].Question)
	assert.Equal(t, "Selenium", result.Questions[0].Category)
	// The sparse record is normalized to defaults.
	supplementary := result.Questions[3]
	assert.Equal(t, "What is your approach to exploratory testing?", supplementary.Question)
	assert.Equal(t, domain.DefaultCategory, supplementary.Category)
	assert.Equal(t, domain.DefaultDifficulty, supplementary.Difficulty)
	provider.AssertExpectations(t)
}

func TestGetQuestions_ProviderFailureIsIgnored(t *testing.T) {
	provider := new(MockSupplementaryProvider)
	provider.On("FetchSupplementary", mock.Anything, "Acme", "automation tester", "", 5).
		Return(nil, errors.New("search backend down"))

	svc := newTestService(t, provider)
	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
	})

	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Len(t, result.Questions, 3)
}

func TestResolve_ExactKeyBypassesThreshold(t *testing.T) {
	// Even with an impossible threshold an exact key match wins.
	svc := NewRetrievalService(newTestStore(t), 0.999, nil, 5, "automation tester")

	match, score, ok := svc.Resolve("acme")
	assert.True(t, ok)
	assert.Equal(t, "Acme", match)
	assert.Equal(t, 1.0, score)
}

func TestResolve_EmptyInput(t *testing.T) {
	svc := newTestService(t, nil)
	_, _, ok := svc.Resolve("  ")
	assert.False(t, ok)
}

func TestListCompaniesAndCategories(t *testing.T) {
	svc := newTestService(t, nil)

	assert.Equal(t, []string{"Acme", "Beta Corp", "Popular Interview Questions"}, svc.ListCompanies())

	categories := svc.ListCategories()
	assert.Equal(t, []string{"Selenium", "SQL", "Framework Design"}, categories.Categories)
	assert.Equal(t, []string{"Locators", "Waits"}, categories.Topics["Selenium"])

	assert.Contains(t, svc.DifficultyLevels(), "Basic")
	assert.Contains(t, svc.Sources(), "Glassdoor")
}

func TestGetQuestionsAgainstEmptyDatabase(t *testing.T) {
	// A store whose document failed to load serves an empty
	// database; every lookup becomes an unresolvable company.
	s := store.New(filepath.Join(t.TempDir(), "missing.json"))
	_ = s.Load()
	svc := NewRetrievalService(s, 0.7, nil, 5, "automation tester")

	result := svc.GetQuestions(context.Background(), &dto.QuestionsRequest{
		Company:    "Acme",
		Experience: "1",
	})
	assert.Equal(t, domain.StatusError, result.Status)
	// Still classified as a resolution failure even though there are
	// no companies to offer.
	assert.Equal(t, domain.ErrCompanyNotFound, result.ErrorCode)
	assert.Empty(t, result.AvailableCompanies)
}
