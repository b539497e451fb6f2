package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/club-manager/internal/metrics"
	"github.com/protomem/club-manager/internal/model"
)

type UserDAO struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	*DB
}

func NewUserDAO(logger *slog.Logger, m *metrics.Metrics, db *DB) *UserDAO {
	return &UserDAO{
		Logger:  logger.With("dao", "user"),
		Metrics: m,
		DB:      db,
	}
}

func (dao *UserDAO) Get(ctx context.Context, id model.ID) (user model.User, err error) {
	logger := dao.Logger.With("query", "get")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_user", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			err = model.NewError("user", model.ErrNotFound)
			return model.User{}, err
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	return user, nil
}

func (dao *UserDAO) GetByUsername(ctx context.Context, username string) (user model.User, err error) {
	logger := dao.Logger.With("query", "getByUsername")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_user_by_username", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			err = model.NewError("user", model.ErrNotFound)
			return model.User{}, err
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	return user, nil
}

type InsertUserDTO struct {
	Username string
	Password string
	Email    *string
}

func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (id model.ID, err error) {
	logger := dao.Logger.With("query", "insert")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("insert_user", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Insert("users").
		Columns("username", "password", "email").
		Values(dto.Username, dto.Password, dto.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.ID{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			conflict := &model.ConflictError{Entity: "user"}
			conflict.Column, conflict.Value, _ = UniqueViolationColumn(err)
			err = conflict
			return model.ID{}, err
		}

		return model.ID{}, err
	}

	return id, nil
}

func (dao *UserDAO) UpdateRefreshToken(ctx context.Context, id model.ID, refreshToken string) (err error) {
	logger := dao.Logger.With("query", "updateRefreshToken")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("update_user_refresh_token", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Update("users").
		SetMap(map[string]any{
			"refresh_token": refreshToken,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			err = model.NewError("user", model.ErrExists)
		}

		return err
	}

	return nil
}
