package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/club-manager/internal/metrics"
	"github.com/protomem/club-manager/internal/model"
)

type SeasonTicketDAO struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	*DB
}

func NewSeasonTicketDAO(logger *slog.Logger, m *metrics.Metrics, db *DB) *SeasonTicketDAO {
	return &SeasonTicketDAO{
		Logger:  logger.With("dao", "seasonTicket"),
		Metrics: m,
		DB:      db,
	}
}

// Find returns all season tickets ordered by expiry.
func (dao *SeasonTicketDAO) Find(ctx context.Context) (tickets []model.SeasonTicket, err error) {
	logger := dao.Logger.With("query", "find")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_season_tickets", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("season_tickets").
		OrderBy("expires_at ASC").
		ToSql()
	if err != nil {
		return []model.SeasonTicket{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	tickets = make([]model.SeasonTicket, 0)
	if err = dao.SelectContext(ctx, &tickets, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.SeasonTicket{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.SeasonTicket{}, err
	}

	return tickets, nil
}

func (dao *SeasonTicketDAO) Get(ctx context.Context, id model.ID) (ticket model.SeasonTicket, err error) {
	logger := dao.Logger.With("query", "get")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_season_ticket", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("season_tickets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.SeasonTicket{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.StructScan(&ticket); err != nil {
		if IsNoRows(err) {
			err = model.NewError("season ticket", model.ErrNotFound)
			return model.SeasonTicket{}, err
		}

		logger.Warn("failed query execute", "error", err)

		return model.SeasonTicket{}, err
	}

	return ticket, nil
}

type InsertSeasonTicketDTO struct {
	Client    model.ID
	Type      string
	ExpiresAt time.Time
}

func (dao *SeasonTicketDAO) Insert(ctx context.Context, dto InsertSeasonTicketDTO) (id model.ID, err error) {
	logger := dao.Logger.With("query", "insert")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("insert_season_ticket", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Insert("season_tickets").
		Columns("client_id", "type", "expires_at").
		Values(dto.Client, dto.Type, dto.ExpiresAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.ID{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsForeignKeyViolation(err) {
			err = fmt.Errorf("client with id=%s: %w", dto.Client, model.ErrNotFound)
			return model.ID{}, err
		}

		return model.ID{}, err
	}

	return id, nil
}

type UpdateSeasonTicketDTO struct {
	Client    *model.ID
	Type      *string
	ExpiresAt *time.Time
}

func (dao *SeasonTicketDAO) Update(ctx context.Context, id model.ID, dto UpdateSeasonTicketDTO) (err error) {
	logger := dao.Logger.With("query", "update")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("update_season_ticket", start, err)
	}(time.Now())

	data := make(map[string]any, 3)
	if dto.Client != nil {
		data["client_id"] = *dto.Client
	}
	if dto.Type != nil {
		data["type"] = *dto.Type
	}
	if dto.ExpiresAt != nil {
		data["expires_at"] = *dto.ExpiresAt
	}

	if len(data) == 0 {
		return nil
	}

	query, args, err := dao.Builder.
		Update("season_tickets").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsForeignKeyViolation(err) && dto.Client != nil {
			err = fmt.Errorf("client with id=%s: %w", *dto.Client, model.ErrNotFound)
		}

		return err
	}

	return nil
}

func (dao *SeasonTicketDAO) Delete(ctx context.Context, id model.ID) (err error) {
	logger := dao.Logger.With("query", "delete")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("delete_season_ticket", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Delete("season_tickets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	return nil
}
