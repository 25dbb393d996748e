package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancellationPolicy_FeePercentAt(t *testing.T) {
	policy := CancellationPolicy{
		FreeUntilHours:       24,
		LateCancelFeePercent: 50,
		NoShowFeePercent:     100,
	}
	scheduledAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"well before the free window closes", scheduledAt.Add(-48 * time.Hour), 0},
		{"just before the free window closes", scheduledAt.Add(-25 * time.Hour), 0},
		{"inside the late-cancel window", scheduledAt.Add(-23 * time.Hour), 50},
		{"one minute before the appointment", scheduledAt.Add(-time.Minute), 50},
		{"exactly at the appointment time", scheduledAt, 100},
		{"after the appointment has passed", scheduledAt.Add(2 * time.Hour), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, policy.FeePercentAt(scheduledAt, tt.now))
		})
	}
}

func TestCancellationPolicy_FeeAmount(t *testing.T) {
	policy := CancellationPolicy{
		FreeUntilHours:       24,
		LateCancelFeePercent: 30,
		NoShowFeePercent:     80,
	}
	scheduledAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	// Бесплатное окно
	assert.Equal(t, 0.0, policy.FeeAmount(45, scheduledAt, scheduledAt.Add(-48*time.Hour)))
	// Поздняя отмена: 30% от 45
	assert.InDelta(t, 13.5, policy.FeeAmount(45, scheduledAt, scheduledAt.Add(-time.Hour)), 0.001)
	// No-show: 80% от 45
	assert.InDelta(t, 36.0, policy.FeeAmount(45, scheduledAt, scheduledAt.Add(time.Hour)), 0.001)
}

func TestSalon_ServiceByID(t *testing.T) {
	salon := &Salon{
		ID: "1",
		Services: []Service{
			{ID: "s1", Name: "Coupe Femme", Price: 45},
			{ID: "s2", Name: "Coupe Homme", Price: 25},
		},
	}

	svc, ok := salon.ServiceByID("s2")
	assert.True(t, ok)
	assert.Equal(t, "Coupe Homme", svc.Name)

	_, ok = salon.ServiceByID("s99")
	assert.False(t, ok)
}

func TestSalon_IsBookable(t *testing.T) {
	assert.False(t, (&Salon{}).IsBookable())
	assert.True(t, (&Salon{Services: []Service{{ID: "s1"}}}).IsBookable())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Coiffure"))
	assert.True(t, IsValidCategory("Barbier"))
	assert.False(t, IsValidCategory("Garage"))
	assert.False(t, IsValidCategory(""))
}
