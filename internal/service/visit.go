package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
)

type VisitStore interface {
	Insert(ctx context.Context, dto database.InsertVisitDTO) (model.ID, error)
	End(ctx context.Context, id model.ID, end time.Time) error
	Delete(ctx context.Context, id model.ID) error
}

type Visits struct {
	logger *slog.Logger
	store  VisitStore
	now    func() time.Time
}

func NewVisits(logger *slog.Logger, store VisitStore) *Visits {
	return &Visits{
		logger: logger.With("service", "visits"),
		store:  store,
		now:    time.Now,
	}
}

// Start registers a new visit, stamping the start time.
func (s *Visits) Start(ctx context.Context, client model.ID, box int) (model.ID, error) {
	return s.store.Insert(ctx, database.InsertVisitDTO{
		Client: client,
		Start:  s.now().UTC(),
		Box:    box,
	})
}

// End closes an open visit.
func (s *Visits) End(ctx context.Context, id model.ID) error {
	return s.store.End(ctx, id, s.now().UTC())
}

func (s *Visits) Delete(ctx context.Context, id model.ID) error {
	return s.store.Delete(ctx, id)
}
