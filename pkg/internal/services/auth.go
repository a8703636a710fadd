package services

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	localCache "github.com/lumenpress/lumen/pkg/internal/cache"
	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/spf13/viper"
)

func ticketCacheKey(token string) string {
	return fmt.Sprintf("auth-ticket#%s", token)
}

// GrantTicket issues a fresh bearer ticket for a signed-in account.
func GrantTicket(account models.Account) (models.AuthTicket, error) {
	lifetime := viper.GetDuration("security.ticket_lifetime")
	if lifetime <= 0 {
		lifetime = 14 * 24 * time.Hour
	}

	ticket := models.AuthTicket{
		Token:     uuid.NewString(),
		ExpiredAt: time.Now().Add(lifetime),
		AccountID: account.ID,
	}

	if err := database.C.Create(&ticket).Error; err != nil {
		return ticket, err
	}

	ticket.Account = account
	return ticket, nil
}

// Authenticate resolves a bearer token into the account it belongs to,
// consulting the in-process cache before the database.
func Authenticate(token string) (models.Account, error) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, ticketCacheKey(token), new(models.AuthTicket)); err == nil {
		ticket := hit.(*models.AuthTicket)
		if !ticket.IsExpired() {
			return ticket.Account, nil
		}
	}

	var ticket models.AuthTicket
	if err := database.C.
		Where("token = ?", token).
		Preload("Account").
		First(&ticket).Error; err != nil {
		return models.Account{}, fmt.Errorf("invalid auth ticket")
	}

	if ticket.IsExpired() {
		return models.Account{}, fmt.Errorf("auth ticket has expired")
	}

	_ = marshal.Set(
		ctx,
		ticketCacheKey(token),
		ticket,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"auth-ticket", fmt.Sprintf("user#%d", ticket.AccountID)}),
	)

	return ticket.Account, nil
}

// RevokeTicket drops the ticket so the token stops working after sign-out.
func RevokeTicket(token string) error {
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Delete(context.Background(), ticketCacheKey(token))

	return database.C.Where("token = ?", token).Delete(&models.AuthTicket{}).Error
}
