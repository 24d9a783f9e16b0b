package service

import (
	"context"
	"database/sql"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/repository"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

// HistoryService records question lookups and serves them back,
// newest first. Recording is best effort: a storage failure is
// logged and swallowed so it can never affect a retrieval response.
type HistoryService interface {
	RecordLookup(ctx context.Context, result *domain.RetrievalResult)
	RecentLookups(ctx context.Context, limit int) (*dto.HistoryResponse, error)
}

type historyService struct {
	repo repository.LookupRepository
}

// NewHistoryService creates a new instance of historyService.
func NewHistoryService(repo repository.LookupRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) RecordLookup(ctx context.Context, result *domain.RetrievalResult) {
	lookup := &models.Lookup{
		ID:            util.NewULID(),
		Company:       result.Company,
		Bracket:       string(result.ExperienceBracket),
		Category:      nullable(result.FiltersRequested.Category),
		Difficulty:    nullable(result.FiltersRequested.Difficulty),
		Status:        string(result.Status),
		QuestionCount: len(result.Questions),
		CreatedAt:     time.Now(),
	}
	if err := s.repo.SaveLookup(ctx, lookup); err != nil {
		logger.Get().Warn("Failed to record lookup",
			zap.String("company", result.Company),
			zap.Error(err),
		)
	}
}

func (s *historyService) RecentLookups(ctx context.Context, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	lookups, err := s.repo.RecentLookups(ctx, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch lookup history", err)
	}

	resp := &dto.HistoryResponse{Lookups: make([]dto.LookupRecord, 0, len(lookups))}
	for _, l := range lookups {
		resp.Lookups = append(resp.Lookups, dto.LookupRecord{
			ID:            l.ID,
			Company:       l.Company,
			Bracket:       l.Bracket,
			Category:      l.Category.String,
			Difficulty:    l.Difficulty.String,
			Status:        l.Status,
			QuestionCount: l.QuestionCount,
			CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
