package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Authorization результат авторизации платежа
type Authorization struct {
	Reference    string
	Amount       float64
	AuthorizedAt time.Time
}

// Client мок-эквайринг. Реальный платежный шлюз не подключен:
// авторизация всегда успешна, задержка имитирует латентность внешнего
// провайдера. Суммовые проверки сохранены, чтобы контракт не ослабевал
// при замене на настоящего провайдера
type Client struct {
	delay time.Duration
	log   Logger
}

// NewClient создает мок-клиент платежей
func NewClient(delay time.Duration, log Logger) *Client {
	return &Client{delay: delay, log: log}
}

// Authorize авторизует списание. Уважает отмену контекста во время
// имитируемой задержки
func (c *Client) Authorize(ctx context.Context, clientID string, amount float64) (*Authorization, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	if c.delay > 0 {
		timer := time.NewTimer(c.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	auth := &Authorization{
		Reference:    "pay-" + uuid.NewString(),
		Amount:       amount,
		AuthorizedAt: time.Now(),
	}

	c.log.Info("Authorize: mock payment authorized for client=%s amount=%.2f ref=%s",
		clientID, amount, auth.Reference)

	return auth, nil
}
