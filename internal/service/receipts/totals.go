package receipts

import "github.com/glameo/glameo-backend/internal/domain"

// Totals суммы чека: квебекские налоги начисляются на итог бронирования
type Totals struct {
	Subtotal float64
	TPS      float64
	TVQ      float64
	Total    float64
}

// ComputeTotals вычисляет налоги и итог чека от суммы бронирования
func ComputeTotals(subtotal float64) Totals {
	tps := subtotal * domain.TPSRate
	tvq := subtotal * domain.TVQRate
	return Totals{
		Subtotal: subtotal,
		TPS:      tps,
		TVQ:      tvq,
		Total:    subtotal + tps + tvq,
	}
}
