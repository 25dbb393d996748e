package receipts

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/glameo/glameo-backend/internal/domain"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
)

// Service генерирует PDF-чеки по оплаченным бронированиям
type Service struct {
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса чеков
func NewService(bookingRepo BookingRepository, salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		salonRepo:   salonRepo,
		logger:      logger,
	}
}

// Generate формирует PDF-чек для бронирования
// Доступно клиенту бронирования и владельцу салона, только для оплаченных
func (s *Service) Generate(ctx context.Context, bookingID string, userID string) ([]byte, error) {
	s.logger.Info("Generate: receipt for booking=%s by user=%s", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Generate: booking=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Generate: fetch booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - fetch booking: %v", ErrInternal, err)
	}

	salon, err := s.salonRepo.GetByID(ctx, booking.SalonID)
	if err != nil {
		if errors.Is(err, salonRepoPkg.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Generate: fetch salon=%s: %v", booking.SalonID, err)
		return nil, fmt.Errorf("%w: Generate - fetch salon: %v", ErrInternal, err)
	}

	if booking.ClientID != userID && salon.OwnerID != userID {
		s.logger.Warn("Generate: access denied for user=%s to booking=%s", userID, bookingID)
		return nil, ErrAccessDenied
	}

	if booking.PaymentStatus != domain.PaymentPaid {
		s.logger.Warn("Generate: booking=%s is %s, no receipt", bookingID, booking.PaymentStatus)
		return nil, ErrNotPayable
	}

	pdf, err := s.render(booking, salon)
	if err != nil {
		s.logger.Error("Generate: render failed for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - render: %v", ErrInternal, err)
	}

	s.logger.Info("Generate: receipt ready for booking=%s, %d bytes", bookingID, len(pdf))
	return pdf, nil
}

// render рисует чек: фирменная шапка, реквизиты салона и клиента,
// строка услуги и блок сумм с квебекскими налогами
func (s *Service) render(booking *domain.Booking, salon *domain.Salon) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Шапка бренда
	pdf.SetFillColor(15, 23, 42)
	pdf.Rect(0, 0, pageWidth, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.Text(20, 25, "GLAMEO")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 32, tr("VOTRE ÉCLAT AU QUOTIDIEN"))

	// Реквизиты салона
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 55, tr(salon.Name))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 62, tr(salon.Address))

	// Номер чека и дата
	pdf.SetFont("Helvetica", "B", 10)
	textRight(pdf, pageWidth-20, 55, fmt.Sprintf("REÇU # : %s", booking.ID), tr)
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, pageWidth-20, 62, fmt.Sprintf("Date : %s", booking.ScheduledAt.Format(domain.DateFormat)), tr)

	pdf.SetDrawColor(241, 245, 249)
	pdf.Line(20, 75, pageWidth-20, 75)

	// Клиент
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, 85, "CLIENT :")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(40, 85, tr(booking.ClientName))

	// Строка услуги
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(20, 95, pageWidth-40, 10, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(25, 101.5, tr("DÉSIGNATION DU SOIN"))
	textRight(pdf, pageWidth-25, 101.5, "PRIX", tr)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(25, 115, tr(booking.ServiceName))
	textRight(pdf, pageWidth-25, 115, fmt.Sprintf("%.2f $", booking.ServicePrice), tr)

	// Блок сумм
	totals := ComputeTotals(booking.TotalPrice)
	startX := pageWidth - 90
	startY := 135.0

	pdf.Text(startX, startY, "Sous-total :")
	textRight(pdf, pageWidth-25, startY, fmt.Sprintf("%.2f $", totals.Subtotal), tr)
	pdf.Text(startX, startY+7, "TPS (5%) :")
	textRight(pdf, pageWidth-25, startY+7, fmt.Sprintf("%.2f $", totals.TPS), tr)
	pdf.Text(startX, startY+14, "TVQ (9.975%) :")
	textRight(pdf, pageWidth-25, startY+14, fmt.Sprintf("%.2f $", totals.TVQ), tr)

	pdf.SetFillColor(234, 88, 12)
	pdf.Rect(startX-5, startY+20, 75, 12, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(startX, startY+28, "TOTAL :")
	textRight(pdf, pageWidth-25, startY+28, fmt.Sprintf("%.2f $", totals.Total), tr)

	// Подвал
	pdf.SetTextColor(148, 163, 184)
	pdf.SetFont("Helvetica", "I", 8)
	textCenter(pdf, pageWidth/2, 280, "Merci de faire confiance aux artisans de la beauté Glameo.", tr)
	textCenter(pdf, pageWidth/2, 285, "Ce document est un reçu officiel généré numériquement.", tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string, tr func(string) string) {
	t := tr(s)
	pdf.Text(x-pdf.GetStringWidth(t), y, t)
}

func textCenter(pdf *gofpdf.Fpdf, x, y float64, s string, tr func(string) string) {
	t := tr(s)
	pdf.Text(x-pdf.GetStringWidth(t)/2, y, t)
}
