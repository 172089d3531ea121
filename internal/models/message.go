package models

import "time"

// Message is a buyer-to-realtor inquiry about a home. RealtorID is copied
// from the home at write time so listing a home's inquiries never joins
// through homes. Rows are immutable once created.
type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HomeID uint `gorm:"index;not null" json:"home_id"`
	Home   Home `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	RealtorID uint `gorm:"index;not null" json:"realtor_id"`
	Realtor   User `gorm:"foreignKey:RealtorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BuyerID uint `gorm:"index;not null" json:"buyer_id"`
	Buyer   User `gorm:"foreignKey:BuyerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
