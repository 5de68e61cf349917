package models_test

import (
	"testing"
	"time"

	"professionals-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJobOffer_VisibleAt(t *testing.T) {
	now := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		offer    models.JobOffer
		expected bool
	}{
		{"Published and active", models.JobOffer{Status: models.OfferStatusPublished, IsActive: true}, true},
		{"Closes later", models.JobOffer{Status: models.OfferStatusPublished, IsActive: true, ClosesAt: &future}, true},
		{"Closed date passed", models.JobOffer{Status: models.OfferStatusPublished, IsActive: true, ClosesAt: &past}, false},
		{"Closes exactly now", models.JobOffer{Status: models.OfferStatusPublished, IsActive: true, ClosesAt: &now}, false},
		{"Deactivated", models.JobOffer{Status: models.OfferStatusPublished, IsActive: false}, false},
		{"Draft", models.JobOffer{Status: models.OfferStatusDraft, IsActive: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.offer.VisibleAt(now))
		})
	}
}
