package dto

import "github.com/homevista/realtor-api/internal/models"

// MessageDTO exposes the inquiry body plus the buyer's contact details.
// The realtor's identity is deliberately not re-exposed here.
type MessageDTO struct {
	ID         uint   `json:"id"`
	Message    string `json:"message"`
	BuyerName  string `json:"buyer_name"`
	BuyerPhone string `json:"buyer_phone"`
	BuyerEmail string `json:"buyer_email"`
}

func NewMessage(m *models.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID,
		Message:    m.Body,
		BuyerName:  m.Buyer.Name,
		BuyerPhone: m.Buyer.Phone,
		BuyerEmail: m.Buyer.Email,
	}
}
