package dto

import (
	"time"

	"exodus_backend/internals/features/public/newsletter/model"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SubscriptionResponse struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func FromModelSubscription(m *model.NewsletterSubscriptionModel) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           m.ID,
		Email:        m.Email,
		SubscribedAt: m.SubscribedAt,
	}
}
