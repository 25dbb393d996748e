package catalog

import (
	"context"
	"fmt"

	"github.com/glameo/glameo-backend/internal/domain"
)

// defaultPolicy стандартная политика отмены для новых салонов
var defaultPolicy = domain.CancellationPolicy{
	FreeUntilHours:       24,
	LateCancelFeePercent: 50,
	NoShowFeePercent:     100,
}

// seedServices базовые услуги каталога
var seedServices = []domain.Service{
	{ID: "s1", Name: "Coupe Femme", Description: "Shampoing, coupe et mise en plis.", DurationMinutes: 45, BufferMinutes: 15, Price: 45},
	{ID: "s2", Name: "Coupe Homme", Description: "Coupe classique aux ciseaux ou tondeuse.", DurationMinutes: 30, BufferMinutes: 10, Price: 25},
	{ID: "s3", Name: "Coloration complète", Description: "Coloration racines et pointes.", DurationMinutes: 120, BufferMinutes: 20, Price: 85},
	{ID: "s4", Name: "Balayage", Description: "Éclaircissement naturel pour un effet soleil.", DurationMinutes: 150, BufferMinutes: 20, Price: 110},
}

// seedSalons стартовый каталог. Вставка идемпотентна - существующие
// записи не перезаписываются
func seedSalons() []*domain.Salon {
	services := make([]domain.Service, len(seedServices))
	copy(services, seedServices)
	for i := range services {
		services[i].SalonID = "1"
	}

	barberService := seedServices[1]
	barberService.SalonID = "2"

	barberPolicy := defaultPolicy
	barberPolicy.LateCancelFeePercent = 30

	return []*domain.Salon{
		{
			ID:          "1",
			OwnerID:     "p1",
			Name:        "L’Atelier Coiffure Montréal",
			Description: "Un salon moderne au cœur du Plateau, spécialisé dans les techniques de coloration avant-gardistes.",
			Address:     "1234 Rue Mont-Royal, Montréal",
			Rating:      4.8,
			ReviewCount: 154,
			ImageURL:    "https://images.unsplash.com/photo-1562322140-8baeececf3df?auto=format&fit=crop&w=800&q=80",
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1521590832167-7bcbfaa6381f?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1633681926022-84c23e8cb2d6?auto=format&fit=crop&w=800&q=80",
			},
			Specialties:        []string{"Coloration", "Balayage"},
			IsVerified:         true,
			Category:           domain.CategoryCoiffure,
			Services:           services,
			CancellationPolicy: defaultPolicy,
		},
		{
			ID:          "2",
			OwnerID:     "p2",
			Name:        "Le Barbier du Mile-End",
			Description: "Le rendez-vous incontournable pour une barbe parfaite et une coupe précise.",
			Address:     "5678 Boulevard Saint-Laurent, Montréal",
			Rating:      4.9,
			ReviewCount: 89,
			ImageURL:    "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&w=800&q=80",
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1599351431202-1e0f0137899a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1512690196252-7c762506e23b?auto=format&fit=crop&w=800&q=80",
			},
			Specialties:        []string{"Barbe", "Taille de précision"},
			Category:           domain.CategoryBarbier,
			Services:           []domain.Service{barberService},
			CancellationPolicy: barberPolicy,
		},
	}
}

// Initialize заполняет каталог стартовыми салонами при первом запуске
func (s *Service) Initialize(ctx context.Context) error {
	s.logger.Info("Initialize: seeding catalog")

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, salon := range seedSalons() {
			if err := s.salonRepo.Create(ctx, salon); err != nil {
				return fmt.Errorf("seed salon id=%s: %w", salon.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Initialize: seeding failed: %v", err)
		return fmt.Errorf("%w: Initialize - %v", ErrInternal, err)
	}

	s.logger.Info("Initialize: catalog ready")
	return nil
}
