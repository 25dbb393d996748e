package payments

import "errors"

var (
	// ErrPaymentDeclined возвращается при отказе в авторизации платежа
	ErrPaymentDeclined = errors.New("payments: payment declined")

	// ErrInvalidAmount возвращается при некорректной сумме
	ErrInvalidAmount = errors.New("payments: invalid amount")
)
