package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/club-manager/internal/metrics"
	"github.com/protomem/club-manager/internal/model"
)

type ClientDAO struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	*DB
}

func NewClientDAO(logger *slog.Logger, m *metrics.Metrics, db *DB) *ClientDAO {
	return &ClientDAO{
		Logger:  logger.With("dao", "client"),
		Metrics: m,
		DB:      db,
	}
}

// Find returns all clients ordered alphabetically by surname.
func (dao *ClientDAO) Find(ctx context.Context) (clients []model.Client, err error) {
	logger := dao.Logger.With("query", "find")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_clients", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("clients").
		OrderBy("surname ASC").
		ToSql()
	if err != nil {
		return []model.Client{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	clients = make([]model.Client, 0)
	if err = dao.SelectContext(ctx, &clients, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.Client{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Client{}, err
	}

	logger.Debug("success query execute", "countClients", len(clients))

	return clients, nil
}

func (dao *ClientDAO) Get(ctx context.Context, id model.ID) (client model.Client, err error) {
	logger := dao.Logger.With("query", "get")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("select_client", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Select("*").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Client{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	row := dao.QueryRowxContext(ctx, query, args...)
	if err = row.StructScan(&client); err != nil {
		if IsNoRows(err) {
			err = model.NewError("client", model.ErrNotFound)
			return model.Client{}, err
		}

		logger.Warn("failed query execute", "error", err)

		return model.Client{}, err
	}

	return client, nil
}

type InsertClientDTO struct {
	Name       string
	Surname    string
	Patronymic string
	Sex        bool
	Email      *string
	Phone      string
	PhotoURL   *string
}

func (dao *ClientDAO) Insert(ctx context.Context, dto InsertClientDTO) (id model.ID, err error) {
	logger := dao.Logger.With("query", "insert")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("insert_client", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Insert("clients").
		Columns("name", "surname", "patronymic", "sex", "email", "phone", "photo_url").
		Values(dto.Name, dto.Surname, dto.Patronymic, dto.Sex, dto.Email, dto.Phone, dto.PhotoURL).
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
			conflict := &model.ConflictError{Entity: "client"}
			conflict.Column, conflict.Value, _ = UniqueViolationColumn(err)
			err = conflict
			return model.ID{}, err
		}

		return model.ID{}, err
	}

	return id, nil
}

type UpdateClientDTO struct {
	Name       *string
	Surname    *string
	Patronymic *string
	Sex        *bool
	Email      *string
	Phone      *string
	PhotoURL   *string
}

func (dao *ClientDAO) Update(ctx context.Context, id model.ID, dto UpdateClientDTO) (err error) {
	logger := dao.Logger.With("query", "update")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("update_client", start, err)
	}(time.Now())

	data := make(map[string]any, 7)
	if dto.Name != nil {
		data["name"] = *dto.Name
	}
	if dto.Surname != nil {
		data["surname"] = *dto.Surname
	}
	if dto.Patronymic != nil {
		data["patronymic"] = *dto.Patronymic
	}
	if dto.Sex != nil {
		data["sex"] = *dto.Sex
	}
	if dto.Email != nil {
		data["email"] = *dto.Email
	}
	if dto.Phone != nil {
		data["phone"] = *dto.Phone
	}
	if dto.PhotoURL != nil {
		data["photo_url"] = *dto.PhotoURL
	}

	if len(data) == 0 {
		return nil
	}

	query, args, err := dao.Builder.
		Update("clients").
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			conflict := &model.ConflictError{Entity: "client"}
			conflict.Column, conflict.Value, _ = UniqueViolationColumn(err)
			err = conflict
		}

		return err
	}

	return nil
}

func (dao *ClientDAO) Delete(ctx context.Context, id model.ID) (err error) {
	logger := dao.Logger.With("query", "delete")
	defer func(start time.Time) {
		dao.Metrics.ObserveDB("delete_client", start, err)
	}(time.Now())

	query, args, err := dao.Builder.
		Delete("clients").
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
