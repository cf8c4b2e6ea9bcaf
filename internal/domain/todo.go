package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DateFormat is the wire format for todo dates.
const DateFormat = "2006-01-02"

type Todo struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name        string         `json:"name" gorm:"not null"`
	Date        datatypes.Date `json:"-" gorm:"not null"`
	IsCompleted bool           `json:"is_completed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DateString renders the todo date in wire format.
func (t *Todo) DateString() string {
	return time.Time(t.Date).Format(DateFormat)
}
