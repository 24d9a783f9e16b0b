package handler

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RetrievalHandler handles question retrieval HTTP requests
type RetrievalHandler struct {
	service service.RetrievalService
	history service.HistoryService // nil when history is disabled
}

// NewRetrievalHandler creates a new RetrievalHandler instance
func NewRetrievalHandler(svc service.RetrievalService, history service.HistoryService) *RetrievalHandler {
	return &RetrievalHandler{
		service: svc,
		history: history,
	}
}

// GetQuestions godoc
// @Summary Get interview questions
// @Description Returns filtered interview questions for a company and experience level
// @Tags questions
// @Accept json
// @Produce json
// @Param company query string true "Company name (fuzzy matched)"
// @Param experience query string false "Years of experience, e.g. 2.5"
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Param role query string false "Role for supplementary questions"
// @Success 200 {object} domain.RetrievalResult
// @Failure 400 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *RetrievalHandler) GetQuestions(c *fiber.Ctx) error {
	req := &dto.QuestionsRequest{
		Company:    c.Query("company"),
		Experience: c.Query("experience"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Role:       c.Query("role"),
	}

	result := h.service.GetQuestions(c.UserContext(), req)

	if h.history != nil && result.Status != domain.StatusError {
		h.history.RecordLookup(c.UserContext(), result)
	}

	// Expected no-match conditions come back as tagged results with
	// HTTP 200; only Error results map to error statuses, by kind.
	status := fiber.StatusOK
	if result.Status == domain.StatusError {
		switch result.ErrorCode {
		case domain.ErrCompanyNotFound:
			status = fiber.StatusNotFound
		default:
			status = fiber.StatusBadRequest
		}
	}
	return c.Status(status).JSON(result)
}

// ResolveCompany godoc
// @Summary Resolve a company name
// @Description Maps a free-text company name onto the closest known company
// @Tags companies
// @Produce json
// @Param name query string true "Company name to resolve"
// @Success 200 {object} dto.ResolveResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /companies/resolve [get]
func (h *RetrievalHandler) ResolveCompany(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return domain.NewInvalidInputError("Query parameter 'name' is required")
	}

	match, score, ok := h.service.Resolve(name)
	return c.JSON(dto.ResolveResponse{
		Input:   name,
		Match:   match,
		Score:   score,
		Matched: ok,
	})
}

// ListCompanies godoc
// @Summary List companies
// @Description Returns all known companies in database order
// @Tags companies
// @Produce json
// @Success 200 {object} dto.CompaniesResponse
// @Router /companies [get]
func (h *RetrievalHandler) ListCompanies(c *fiber.Ctx) error {
	return c.JSON(dto.CompaniesResponse{Companies: h.service.ListCompanies()})
}

// ListCategories godoc
// @Summary List categories
// @Description Returns all question categories with their topics
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *RetrievalHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCategories())
}

// ListDifficulties godoc
// @Summary List difficulty levels
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /difficulties [get]
func (h *RetrievalHandler) ListDifficulties(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{Entries: h.service.DifficultyLevels()})
}

// ListSources godoc
// @Summary List question sources
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /sources [get]
func (h *RetrievalHandler) ListSources(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{Entries: h.service.Sources()})
}

// GetHistory godoc
// @Summary Recent lookups
// @Description Returns recently recorded question lookups, newest first
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} dto.HistoryResponse
// @Router /history [get]
func (h *RetrievalHandler) GetHistory(c *fiber.Ctx) error {
	if h.history == nil {
		return domain.NewNotFoundError("Lookup history is not enabled")
	}
	resp, err := h.history.RecentLookups(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReloadDatabase godoc
// @Summary Reload question database
// @Description Re-reads the question database and swaps in the new snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ReloadResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /admin/reload [post]
func (h *RetrievalHandler) ReloadDatabase(c *fiber.Ctx) error {
	if err := h.service.ReloadDatabase(); err != nil {
		logger.Get().Error("Database reload failed", zap.Error(err))
		return err
	}
	return c.JSON(dto.ReloadResponse{
		Reloaded:  true,
		Companies: len(h.service.ListCompanies()),
	})
}
