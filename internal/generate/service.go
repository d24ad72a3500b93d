package generate

import (
	"context"
	"fmt"
	"log/slog"

	"floorplan-server/internal/layout"
	"floorplan-server/internal/program"
	"floorplan-server/internal/shared/errors"
)

// panicMessageLimit caps how much of a recovered panic is surfaced to
// clients.
const panicMessageLimit = 50

// Service composes the program extractor and footprint partitioner into the
// full generation pipeline, with a best-effort response cache and optional
// history recording around the pure core.
type Service struct {
	repo   *Repository // nil when the database is not configured
	cache  *Cache
	logger *slog.Logger
}

func NewService(repo *Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Generate runs extraction and partitioning for a validated request. The
// pipeline is deterministic and has no expected failure mode; a panic from
// the core is recovered here and reported once as an internal error with a
// truncated message. It is never retried, since recomputation would
// reproduce the same failure.
func (s *Service) Generate(ctx context.Context, req Request) (result *Result, err error) {
	logger := s.logger.With("component", "generate_service", "operation", "generate")

	if cached, ok := s.cache.Get(ctx, req); ok {
		logger.Debug("Serving layout from cache",
			"width", req.Width, "depth", req.Depth)
		return cached, nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Layout generation panicked",
				"panic", rec, "prompt_length", len(req.Prompt),
				"width", req.Width, "depth", req.Depth)
			result = nil
			err = errors.WrapInternal("layout generation failed",
				fmt.Errorf("%s", truncate(fmt.Sprint(rec), panicMessageLimit)))
		}
	}()

	housingProgram := program.Extract(req.Prompt)
	rooms := layout.Partition(req.Width, req.Depth, housingProgram)

	result = &Result{
		Footprint: layout.Footprint{
			Width:  req.Width,
			Depth:  req.Depth,
			Height: layout.RoomHeight,
		},
		Rooms: rooms,
		Meta: Meta{
			Program: housingProgram,
			Note:    LayoutNote,
		},
	}

	logger.Debug("Layout generated",
		"rooms", len(rooms),
		"bedrooms", housingProgram.Bedrooms,
		"bathrooms", housingProgram.Bathrooms,
		"style", housingProgram.Style,
	)

	s.cache.Set(ctx, req, result)
	s.record(ctx, req, result)

	return result, nil
}

// History returns the most recent recorded generations, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Record, error) {
	if s.repo == nil {
		return nil, errors.External("generation history requires a configured database")
	}
	return s.repo.ListRecent(ctx, limit)
}

// PurgeHistory deletes all recorded generations and returns the count.
func (s *Service) PurgeHistory(ctx context.Context) (int64, error) {
	if s.repo == nil {
		return 0, errors.External("generation history requires a configured database")
	}

	deleted, err := s.repo.PurgeAll(ctx)
	if err != nil {
		return 0, errors.WrapInternal("failed to purge generation history", err)
	}

	s.logger.Info("Generation history purged",
		"component", "generate_service", "deleted", deleted)
	return deleted, nil
}

// record persists a generation when the database is configured. Recording
// is best-effort and never fails the request.
func (s *Service) record(ctx context.Context, req Request, result *Result) {
	if s.repo == nil {
		return
	}

	if _, err := s.repo.RecordGeneration(ctx, req, result); err != nil {
		s.logger.Warn("Failed to record generation",
			"component", "generate_service", "error", err)
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
