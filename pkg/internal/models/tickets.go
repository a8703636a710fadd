package models

import "time"

// AuthTicket is a bearer session token bound to an account.
type AuthTicket struct {
	BaseModel

	Token     string    `json:"token" gorm:"uniqueIndex"`
	ExpiredAt time.Time `json:"expired_at"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

func (v AuthTicket) IsExpired() bool {
	return v.ExpiredAt.Before(time.Now())
}
