package services

import (
	"fmt"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func ListAccount(take int, offset int) ([]models.Account, int64, error) {
	if take > 100 {
		take = 100
	}

	var count int64
	if err := database.C.Model(&models.Account{}).Count(&count).Error; err != nil {
		return nil, count, err
	}

	var accounts []models.Account
	err := database.C.
		Order("created_at ASC").
		Limit(take).Offset(offset).
		Find(&accounts).Error

	return accounts, count, err
}

func NewAccount(name, email, password string) (models.Account, error) {
	var holder models.Account
	if err := database.C.
		Where("name = ? OR email = ?", name, email).
		First(&holder).Error; err == nil {
		return holder, fmt.Errorf("account name or email has already been taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:     name,
		Nick:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleReader,
	}

	err = database.C.Create(&account).Error
	return account, err
}

func AuthenticateWithPassword(email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err != nil {
		return account, fmt.Errorf("account was not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}

type AccountProfileChanges struct {
	Nick        *string
	Description *string
	Avatar      *string
	Location    *string
	Website     *string
}

func EditAccountProfile(account models.Account, changes AccountProfileChanges) (models.Account, error) {
	account.Nick = lo.FromPtrOr(changes.Nick, account.Nick)
	account.Description = lo.FromPtrOr(changes.Description, account.Description)
	account.Avatar = lo.FromPtrOr(changes.Avatar, account.Avatar)
	account.Location = lo.FromPtrOr(changes.Location, account.Location)
	account.Website = lo.FromPtrOr(changes.Website, account.Website)

	err := database.C.Save(&account).Error
	return account, err
}

func SetAccountRole(account models.Account, role string) (models.Account, error) {
	account.Role = role
	err := database.C.Save(&account).Error

	return account, err
}

// DeleteAccount removes the account together with everything it owns.
func DeleteAccount(account models.Account) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		var postIds []uint
		if err := tx.Model(&models.Post{}).
			Where("author_id = ?", account.ID).
			Pluck("id", &postIds).Error; err != nil {
			return err
		}

		if len(postIds) > 0 {
			for _, dependent := range []any{&models.Comment{}, &models.Like{}, &models.SavedPost{}} {
				if err := tx.Where("post_id IN ?", postIds).Delete(dependent).Error; err != nil {
					return err
				}
			}
			if err := tx.Exec("DELETE FROM post_tags WHERE post_id IN ?", postIds).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIds).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		for _, owned := range []any{
			&models.Comment{}, &models.Like{}, &models.SavedPost{}, &models.AuthTicket{},
		} {
			if err := tx.Where("account_id = ?", account.ID).Delete(owned).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&account).Error
	})
}
