package service

import (
	"context"
	"log/slog"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
)

type SeasonTicketStore interface {
	Find(ctx context.Context) ([]model.SeasonTicket, error)
	Get(ctx context.Context, id model.ID) (model.SeasonTicket, error)
	Insert(ctx context.Context, dto database.InsertSeasonTicketDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateSeasonTicketDTO) error
	Delete(ctx context.Context, id model.ID) error
}

type SeasonTickets struct {
	logger *slog.Logger
	store  SeasonTicketStore
}

func NewSeasonTickets(logger *slog.Logger, store SeasonTicketStore) *SeasonTickets {
	return &SeasonTickets{
		logger: logger.With("service", "seasonTickets"),
		store:  store,
	}
}

func (s *SeasonTickets) All(ctx context.Context) ([]model.SeasonTicket, error) {
	return s.store.Find(ctx)
}

func (s *SeasonTickets) Get(ctx context.Context, id model.ID) (model.SeasonTicket, error) {
	return s.store.Get(ctx, id)
}

// Add persists a new season ticket. A dangling client reference surfaces as
// model.ErrNotFound from the store.
func (s *SeasonTickets) Add(ctx context.Context, dto database.InsertSeasonTicketDTO) (model.ID, error) {
	return s.store.Insert(ctx, dto)
}

func (s *SeasonTickets) Update(ctx context.Context, id model.ID, dto database.UpdateSeasonTicketDTO) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}

	return s.store.Update(ctx, id, dto)
}

func (s *SeasonTickets) Delete(ctx context.Context, id model.ID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}
