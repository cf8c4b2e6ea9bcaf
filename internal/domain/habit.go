package domain

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// ValidFrequency reports whether f is one of the known habit frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

const HabitStatusActive = "ACTIVE"

type Habit struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name       string    `json:"name" gorm:"not null"`
	Completed  int       `json:"completed" gorm:"default:0"`
	ToComplete int       `json:"to_complete" gorm:"default:1"`
	Status     string    `json:"status" gorm:"default:'ACTIVE'"`
	Freq       Frequency `json:"freq" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClampCompleted enforces the progress invariant: completed never
// exceeds the target.
func (h *Habit) ClampCompleted() {
	if h.Completed > h.ToComplete {
		h.Completed = h.ToComplete
	}
}
