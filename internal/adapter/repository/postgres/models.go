// Package postgres implements the tour catalog on PostgreSQL via GORM.
package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
)

// TourModel is the database row shape of a tour.
type TourModel struct {
	ID            int64          `gorm:"primaryKey"`
	Name          string         `gorm:"size:255;not null"`
	Slug          string         `gorm:"size:255;uniqueIndex;not null"`
	Summary       *string        `gorm:"type:text"`
	CoverImage    *string        `gorm:"size:512"`
	Location      *string        `gorm:"size:255;index"`
	DurationDays  int            `gorm:"not null"`
	PriceAdult    float64        `gorm:"not null"`
	PriceChild    float64        `gorm:"not null"`
	Difficulty    *string        `gorm:"size:32"`
	RatingAverage float64        `gorm:"not null;default:0"`
	ReviewCount   int            `gorm:"not null;default:0"`
	Status        string         `gorm:"size:32;not null;index"`
	Featured      bool           `gorm:"not null;default:false;index"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the GORM default.
func (TourModel) TableName() string {
	return "tours"
}

// ScheduleModel is the database row shape of a tour departure.
type ScheduleModel struct {
	ID        int64     `gorm:"primaryKey"`
	TourID    int64     `gorm:"not null;index"`
	StartDate time.Time `gorm:"not null;index"`
	Capacity  int       `gorm:"not null"`
	Status    string    `gorm:"size:32;not null"`
}

// TableName overrides the GORM default.
func (ScheduleModel) TableName() string {
	return "schedules"
}

// ToDomain converts the row to a domain tour.
func (m *TourModel) ToDomain() domain.Tour {
	tour := domain.Tour{
		ID:            m.ID,
		Name:          m.Name,
		Slug:          m.Slug,
		DurationDays:  m.DurationDays,
		PriceAdult:    m.PriceAdult,
		PriceChild:    m.PriceChild,
		RatingAverage: m.RatingAverage,
		ReviewCount:   m.ReviewCount,
		Status:        domain.TourStatus(m.Status),
		Featured:      m.Featured,
		CreatedAt:     m.CreatedAt,
	}
	if m.Summary != nil {
		tour.Summary = *m.Summary
	}
	if m.CoverImage != nil {
		tour.CoverImage = *m.CoverImage
	}
	if m.Location != nil {
		tour.Location = *m.Location
	}
	if m.Difficulty != nil {
		tour.Difficulty = domain.Difficulty(*m.Difficulty)
	}
	if m.DeletedAt.Valid {
		deletedAt := m.DeletedAt.Time
		tour.DeletedAt = &deletedAt
	}
	return tour
}

// ToDomain converts the row to a domain schedule.
func (m *ScheduleModel) ToDomain() domain.Schedule {
	return domain.Schedule{
		ID:        m.ID,
		TourID:    m.TourID,
		StartDate: m.StartDate,
		Capacity:  m.Capacity,
		Status:    domain.ScheduleStatus(m.Status),
	}
}
