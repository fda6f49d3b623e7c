package model

import "time"

type NewsletterSubscriptionModel struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
