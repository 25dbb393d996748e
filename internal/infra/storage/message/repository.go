package message

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/glameo/glameo-backend/internal/domain"
	"github.com/glameo/glameo-backend/pkg/dbmetrics"
	"github.com/glameo/glameo-backend/pkg/psqlbuilder"
)

var messageColumns = []string{
	"id",
	"sender_id",
	"receiver_id",
	"text",
	"sent_at",
	"is_read",
	"booking_id",
}

// Repository репозиторий для работы с сообщениями
// Лог append-only: сообщения никогда не изменяются и не удаляются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое сообщение
// Идентификатор msg-<uuid> назначается здесь, отметка времени - базой,
// сообщение создается непрочитанным
func (r *Repository) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	msg.ID = "msg-" + uuid.NewString()
	msg.IsRead = false

	query, args, err := psqlbuilder.Insert("messages").
		Columns("id", "sender_id", "receiver_id", "text", "is_read", "booking_id").
		Values(msg.ID, msg.SenderID, msg.ReceiverID, msg.Text, msg.IsRead, msg.BookingID).
		Suffix("RETURNING sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.SentAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// GetConversation получает переписку между двумя участниками
// Пара неупорядоченная: GetConversation(A, B) == GetConversation(B, A)
// Сортировка по возрастанию отметки времени
func (r *Repository) GetConversation(ctx context.Context, partyA, partyB string) ([]*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(messageColumns...).
		From("messages").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"sender_id": partyA},
				squirrel.Eq{"receiver_id": partyB},
			},
			squirrel.And{
				squirrel.Eq{"sender_id": partyB},
				squirrel.Eq{"receiver_id": partyA},
			},
		}).
		OrderBy("sent_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConversation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConversation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMessages(rows)
}

// ListPartners получает множество собеседников пользователя
// Каждый контрагент встречается ровно один раз независимо от числа сообщений
func (r *Repository) ListPartners(ctx context.Context, userID string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS partner_id",
	).
		From("messages").
		Where(squirrel.Or{
			squirrel.Eq{"sender_id": userID},
			squirrel.Eq{"receiver_id": userID},
		}).
		OrderBy("partner_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPartners - build select query: %v", ErrBuildQuery, err)
	}

	// Подставляем userID для CASE-выражения первым аргументом
	args = append([]interface{}{userID}, args...)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPartners - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	partners := make([]string, 0)
	for rows.Next() {
		var partnerID string
		if err := rows.Scan(&partnerID); err != nil {
			return nil, fmt.Errorf("%w: ListPartners - scan partner_id: %v", ErrScanRow, err)
		}
		partners = append(partners, partnerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPartners - rows error: %v", ErrScanRow, err)
	}

	return partners, nil
}

// MarkConversationRead помечает прочитанными входящие сообщения пользователя
// от указанного собеседника
func (r *Repository) MarkConversationRead(ctx context.Context, userID, partnerID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"receiver_id": userID, "sender_id": partnerID, "is_read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkConversationRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkConversationRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanMessages(rows *sql.Rows) ([]*domain.Message, error) {
	messages := make([]*domain.Message, 0)

	for rows.Next() {
		var msg domain.Message
		var bookingID sql.NullString

		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Text,
			&msg.SentAt,
			&msg.IsRead,
			&bookingID,
		); err != nil {
			return nil, fmt.Errorf("%w: scanMessages - scan row: %v", ErrScanRow, err)
		}

		if bookingID.Valid {
			msg.BookingID = &bookingID.String
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMessages - rows error: %v", ErrScanRow, err)
	}

	return messages, nil
}
