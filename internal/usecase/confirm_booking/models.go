package confirm_booking

import (
	"time"
)

// Request модель запроса на подтверждение и оплату записи
type Request struct {
	UserID         string    // ID клиента из сессии
	ClientName     string    // Имя клиента для истории
	SalonID        string    // ID салона
	ServiceID      string    // ID услуги
	ScheduledAt    time.Time // Дата и время записи
	PromoCode      string    // Промокод (опционально)
	PolicyAccepted bool      // Клиент принял политику отмены
}

// Response модель ответа с подтвержденной записью
type Response struct {
	ID               string    // ID созданной записи
	SalonID          string    // ID салона
	ServiceID        string    // ID услуги
	ClientID         string    // ID клиента
	ScheduledAt      time.Time // Дата и время записи
	Status           string    // Статус записи (confirmed)
	PaymentStatus    string    // Статус оплаты (paid)
	PaymentReference string    // Ссылка на платеж
	ServiceName      string    // Название услуги
	ServicePrice     float64   // Цена услуги до скидки
	PromoApplied     bool      // Применен ли промокод
	TotalPrice       float64   // Итоговая сумма
	CreatedAt        time.Time // Время создания
}
