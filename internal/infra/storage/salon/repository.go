package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/glameo/glameo-backend/internal/domain"
	"github.com/glameo/glameo-backend/pkg/dbmetrics"
	"github.com/glameo/glameo-backend/pkg/psqlbuilder"
)

var salonColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"rating",
	"review_count",
	"image_url",
	"gallery_images",
	"specialties",
	"is_verified",
	"category",
	"free_until_hours",
	"late_cancel_fee_percent",
	"no_show_fee_percent",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает салон вместе с его услугами
// Идемпотентно: существующий салон не перезаписывается (ON CONFLICT DO
// NOTHING), поэтому повторный запуск сидинга каталога ничего не меняет
func (r *Repository) Create(ctx context.Context, s *domain.Salon) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salons").
		Columns(
			"id",
			"owner_id",
			"name",
			"description",
			"address",
			"rating",
			"review_count",
			"image_url",
			"gallery_images",
			"specialties",
			"is_verified",
			"category",
			"free_until_hours",
			"late_cancel_fee_percent",
			"no_show_fee_percent",
		).
		Values(
			s.ID,
			s.OwnerID,
			s.Name,
			s.Description,
			s.Address,
			s.Rating,
			s.ReviewCount,
			s.ImageURL,
			pq.Array(s.GalleryImages),
			pq.Array(s.Specialties),
			s.IsVerified,
			s.Category,
			s.CancellationPolicy.FreeUntilHours,
			s.CancellationPolicy.LateCancelFeePercent,
			s.CancellationPolicy.NoShowFeePercent,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	for i := range s.Services {
		if err := r.createService(ctx, s.ID, &s.Services[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) createService(ctx context.Context, salonID string, svc *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "salon_id", "name", "description", "duration_minutes", "buffer_minutes", "price").
		Values(svc.ID, salonID, svc.Name, svc.Description, svc.DurationMinutes, svc.BufferMinutes, svc.Price).
		Suffix("ON CONFLICT (salon_id, id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: createService - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: createService - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает салон по ID вместе с его услугами
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	salon, err := r.scanSalon(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	services, err := r.servicesForSalon(ctx, id)
	if err != nil {
		return nil, err
	}
	salon.Services = services

	return salon, nil
}

// List получает все салоны каталога, опционально фильтруя по категории
// Пустой каталог - пустой список, не ошибка
func (r *Repository) List(ctx context.Context, category *domain.SalonCategory) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salonColumns...).
		From("salons").
		OrderBy("id ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		salon, err := r.scanSalonRow(rows)
		if err != nil {
			return nil, err
		}
		salons = append(salons, salon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	for _, salon := range salons {
		services, err := r.servicesForSalon(ctx, salon.ID)
		if err != nil {
			return nil, err
		}
		salon.Services = services
	}

	return salons, nil
}

// UpdateSettings обновляет настройки салона. Обновляются только переданные
// поля. Возвращает ErrSalonNotFound, если салон не существует
func (r *Repository) UpdateSettings(ctx context.Context, id string, update domain.SalonSettingsUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("salons").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Address != nil {
		updateBuilder = updateBuilder.Set("address", *update.Address)
	}
	if update.Specialties != nil {
		updateBuilder = updateBuilder.Set("specialties", pq.Array(update.Specialties))
	}
	if update.CancellationPolicy != nil {
		updateBuilder = updateBuilder.
			Set("free_until_hours", update.CancellationPolicy.FreeUntilHours).
			Set("late_cancel_fee_percent", update.CancellationPolicy.LateCancelFeePercent).
			Set("no_show_fee_percent", update.CancellationPolicy.NoShowFeePercent)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSettings - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

// UpdateRating обновляет агрегат рейтинга салона после нового отзыва
func (r *Repository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salons").
		Set("rating", rating).
		Set("review_count", reviewCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

func (r *Repository) servicesForSalon(ctx context.Context, salonID string) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "salon_id", "name", "description", "duration_minutes", "buffer_minutes", "price",
	).
		From("services").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: servicesForSalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: servicesForSalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(
			&svc.ID,
			&svc.SalonID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.BufferMinutes,
			&svc.Price,
		); err != nil {
			return nil, fmt.Errorf("%w: servicesForSalon - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: servicesForSalon - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSalon(row *sql.Row) (*domain.Salon, error) {
	salon, err := scanSalonFrom(row)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanSalon - scan salon: %v", ErrScanRow, err)
	}
	return salon, nil
}

func (r *Repository) scanSalonRow(rows *sql.Rows) (*domain.Salon, error) {
	salon, err := scanSalonFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: scanSalonRow - scan salon: %v", ErrScanRow, err)
	}
	return salon, nil
}

func scanSalonFrom(scanner rowScanner) (*domain.Salon, error) {
	var salon domain.Salon
	var gallery, specialties pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := scanner.Scan(
		&salon.ID,
		&salon.OwnerID,
		&salon.Name,
		&salon.Description,
		&salon.Address,
		&salon.Rating,
		&salon.ReviewCount,
		&salon.ImageURL,
		&gallery,
		&specialties,
		&salon.IsVerified,
		&salon.Category,
		&salon.CancellationPolicy.FreeUntilHours,
		&salon.CancellationPolicy.LateCancelFeePercent,
		&salon.CancellationPolicy.NoShowFeePercent,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	salon.GalleryImages = gallery
	salon.Specialties = specialties
	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}
