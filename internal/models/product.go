package models

import "time"

// Product statuses. Any other value is rejected at validation time.
const (
	StatusForSale = "FOR_SALE"
	StatusSoldOut = "SOLD_OUT"
)

// Product represents a catalog item.
// The password authorizes mutations on the record and is never serialized.
// Timestamps are managed by the service layer rather than by GORM because
// UpdatedAt must stay null until the first update.
type Product struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string     `json:"name" gorm:"uniqueIndex;type:varchar(10)"`
	Description string     `json:"description" gorm:"type:varchar(100)"`
	Manager     string     `json:"manager" gorm:"type:varchar(10)"`
	Password    string     `json:"-" gorm:"type:varchar(15)"`
	Status      string     `json:"status" gorm:"type:varchar(10);default:FOR_SALE"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt   *time.Time `json:"updatedAt" gorm:"autoUpdateTime:false"`
}
