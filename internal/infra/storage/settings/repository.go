package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	"github.com/avlebedev/SBS-BookingWeb/pkg/dbtx"
	"github.com/avlebedev/SBS-BookingWeb/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками бронирования
// Таблица booking_settings содержит ровно одну строку
type Repository struct {
	db dbtx.Executor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbtx.Executor) *Repository {
	return &Repository{db: db}
}

// Get получает единственную строку настроек
// Возвращает ErrSettingsNotFound, если строка отсутствует
func (r *Repository) Get(ctx context.Context) (*domain.BookingSettings, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"end_time",
		"period_minutes",
		"booking_enabled",
		"updated_at",
	).
		From("booking_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BookingSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StartTime,
		&s.EndTime,
		&s.PeriodMinutes,
		&s.BookingEnabled,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Update обновляет единственную строку настроек
func (r *Repository) Update(ctx context.Context, s *domain.BookingSettings) (*domain.BookingSettings, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_settings").
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("period_minutes", s.PeriodMinutes).
		Set("booking_enabled", s.BookingEnabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return s, nil
}
