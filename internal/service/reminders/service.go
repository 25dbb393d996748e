package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/glameo/glameo-backend/internal/domain"
)

// Service ежедневная рассылка SMS-напоминаний о завтрашних записях
// Ошибки доставки логируются и не затрагивают состояние бронирований
type Service struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	notifier     Notifier
	notifyNumber string
	timeProvider TimeProvider
	logger       Logger

	cron *cron.Cron
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	notifier Notifier,
	notifyNumber string,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		notifier:     notifier,
		notifyNumber: notifyNumber,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start запускает планировщик по cron-расписанию
func (s *Service) Start(cronSpec string) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(cronSpec, func() {
		s.Sweep(context.Background())
	})
	if err != nil {
		return fmt.Errorf("reminders: invalid cron spec %q: %w", cronSpec, err)
	}

	s.cron.Start()
	s.logger.Info("Start: reminder scheduler started, spec=%q", cronSpec)
	return nil
}

// Stop останавливает планировщик, дожидаясь выполняющихся задач
func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.logger.Info("Stop: reminder scheduler stopped")
	}
}

// Sweep отправляет напоминания по завтрашним подтвержденным записям
// Возвращает число успешно отправленных SMS
func (s *Service) Sweep(ctx context.Context) int {
	now := s.timeProvider.Now()
	tomorrow := now.AddDate(0, 0, 1)
	from := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	s.logger.Info("Sweep: collecting confirmed bookings for %s", from.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListConfirmedBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("Sweep: repository error: %v", err)
		return 0
	}

	sent := 0
	for _, booking := range bookings {
		if err := s.remind(ctx, booking); err != nil {
			s.logger.Error("Sweep: reminder for booking=%s failed: %v", booking.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("Sweep: sent %d of %d reminders", sent, len(bookings))
	return sent
}

func (s *Service) remind(ctx context.Context, booking *domain.Booking) error {
	salonName := booking.SalonID
	if salon, err := s.salonRepo.GetByID(ctx, booking.SalonID); err == nil {
		salonName = salon.Name
	} else {
		s.logger.Warn("remind: salon=%s lookup failed: %v", booking.SalonID, err)
	}

	body := fmt.Sprintf(
		"Glameo: rappel pour %s - %s chez %s le %s à %s.",
		booking.ClientName,
		booking.ServiceName,
		salonName,
		booking.ScheduledAt.Format(domain.DateFormat),
		booking.ScheduledAt.Format(domain.TimeFormat),
	)

	return s.notifier.Send(s.notifyNumber, body)
}
