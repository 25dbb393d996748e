package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/glameo/glameo-backend/internal/domain"
	"github.com/glameo/glameo-backend/pkg/dbmetrics"
	"github.com/glameo/glameo-backend/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с отзывами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв. Повторный отзыв на то же бронирование
// отклоняется уникальным ограничением на booking_id
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	review.ID = "rv-" + uuid.NewString()

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("id", "salon_id", "booking_id", "client_id", "client_name", "rating", "comment", "is_verified").
		Values(review.ID, review.SalonID, review.BookingID, review.ClientID, review.ClientName,
			review.Rating, review.Comment, review.IsVerified).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&review.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ListBySalon получает отзывы салона, новые первыми
func (r *Repository) ListBySalon(ctx context.Context, salonID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "salon_id", "booking_id", "client_id", "client_name", "rating", "comment", "is_verified", "created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.SalonID,
			&review.BookingID,
			&review.ClientID,
			&review.ClientName,
			&review.Rating,
			&review.Comment,
			&review.IsVerified,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AggregateForSalon возвращает средний рейтинг и количество отзывов салона
func (r *Repository) AggregateForSalon(ctx context.Context, salonID string) (float64, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AggregateForSalon - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg, &count); err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("%w: AggregateForSalon - scan aggregate: %v", ErrScanRow, err)
	}

	return avg, count, nil
}
