package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/club-manager/internal/metrics"
	"github.com/protomem/club-manager/internal/model"
)

type VisitDAO struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	*DB
}

func NewVisitDAO(logger *slog.Logger, m *metrics.Metrics, db *DB) *VisitDAO {
	return &VisitDAO{
		Logger:  logger.With("dao", "visit"),
		Metrics: m,
		DB:      db,
	}
}

func (dao *VisitDAO) Get(ctx context.Context, id model.ID) (visit model.Visit, err error) {
	logger := dao.Logger.With("query", "get")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_visit", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("visits").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Visit{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.StructScan(&visit); err != nil {
		if IsNoRows(err) {
			err = model.NewError("visit", model.ErrNotFound)
			return model.Visit{}, err
		}

		logger.Warn("failed query execute", "error", err)

		return model.Visit{}, err
	}

	return visit, nil
}

type InsertVisitDTO struct {
	Client model.ID
	Start  time.Time
	Box    int
}

func (dao *VisitDAO) Insert(ctx context.Context, dto InsertVisitDTO) (id model.ID, err error) {
	logger := dao.Logger.With("query", "insert")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("insert_visit", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Insert("visits").
		Columns("client_id", "visit_start", "box").
		Values(dto.Client, dto.Start, dto.Box).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.ID{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		return model.ID{}, err
	}

	return id, nil
}

// End closes the visit by stamping visit_end once.
func (dao *VisitDAO) End(ctx context.Context, id model.ID, end time.Time) (err error) {
	logger := dao.Logger.With("query", "end")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("update_visit_end", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Update("visits").
		SetMap(map[string]any{
			"visit_end": end,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	result, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return model.NewError("visit", model.ErrNotFound)
	}

	return nil
}

func (dao *VisitDAO) Delete(ctx context.Context, id model.ID) (err error) {
	logger := dao.Logger.With("query", "delete")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("delete_visit", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Delete("visits").
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
