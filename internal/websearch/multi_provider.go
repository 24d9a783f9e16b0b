package websearch

import (
	"context"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MultiProvider fans a fetch out to several providers concurrently
// and concatenates their results in provider order, so the merged
// sequence stays deterministic. A failing provider is logged and
// contributes nothing.
type MultiProvider struct {
	providers []domain.SupplementaryProvider
}

// NewMultiProvider creates a MultiProvider over the given providers.
func NewMultiProvider(providers ...domain.SupplementaryProvider) *MultiProvider {
	return &MultiProvider{providers: providers}
}

// FetchSupplementary implements domain.SupplementaryProvider.
func (m *MultiProvider) FetchSupplementary(ctx context.Context, company, role, category string, max int) ([]domain.Question, error) {
	if len(m.providers) == 0 {
		return nil, nil
	}

	results := make([][]domain.Question, len(m.providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range m.providers {
		g.Go(func() error {
			questions, err := p.FetchSupplementary(gctx, company, role, category, max)
			if err != nil {
				logger.Get().Warn("Supplementary provider failed",
					zap.Int("provider", i),
					zap.String("company", company),
					zap.Error(err),
				)
				return nil
			}
			results[i] = questions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Question
	for _, r := range results {
		out = append(out, r...)
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out, nil
}
