package domain

import "strings"

// Promo pricing rules. A promo code is accepted when its trimmed length
// exceeds MinPromoCodeLength and reduces the total by a flat discount,
// floored at zero. GLAMEO10 is the canonical referral code.
const (
	PromoDiscount      = 10.0
	MinPromoCodeLength = 3
)

// IsPromoCodeValid проверяет промокод
// Демо-правило: принимается любой код длиннее MinPromoCodeLength символов
func IsPromoCodeValid(code string) bool {
	return len(strings.TrimSpace(code)) > MinPromoCodeLength
}

// ComputeTotal computes the booking total from the service price.
// With a promo applied: max(0, price - PromoDiscount); otherwise the
// price unmodified.
func ComputeTotal(servicePrice float64, promoApplied bool) float64 {
	if !promoApplied {
		return servicePrice
	}
	total := servicePrice - PromoDiscount
	if total < 0 {
		return 0
	}
	return total
}
