package service

import (
	"context"
	"log/slog"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
)

type ClientStore interface {
	Find(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id model.ID) (model.Client, error)
	Insert(ctx context.Context, dto database.InsertClientDTO) (model.ID, error)
	Update(ctx context.Context, id model.ID, dto database.UpdateClientDTO) error
	Delete(ctx context.Context, id model.ID) error
}

type Clients struct {
	logger *slog.Logger
	store  ClientStore
}

func NewClients(logger *slog.Logger, store ClientStore) *Clients {
	return &Clients{
		logger: logger.With("service", "clients"),
		store:  store,
	}
}

func (s *Clients) All(ctx context.Context) ([]model.Client, error) {
	return s.store.Find(ctx)
}

func (s *Clients) Get(ctx context.Context, id model.ID) (model.Client, error) {
	return s.store.Get(ctx, id)
}

func (s *Clients) Add(ctx context.Context, dto database.InsertClientDTO) (model.ID, error) {
	return s.store.Insert(ctx, dto)
}

func (s *Clients) Update(ctx context.Context, id model.ID, dto database.UpdateClientDTO) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}

	return s.store.Update(ctx, id, dto)
}

func (s *Clients) Delete(ctx context.Context, id model.ID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}
