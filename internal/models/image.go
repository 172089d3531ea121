package models

import "time"

type Image struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	HomeID uint   `gorm:"index;not null" json:"home_id"`
	URL    string `gorm:"size:512;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
