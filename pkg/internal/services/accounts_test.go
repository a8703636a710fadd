package services

import (
	"testing"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountAndPasswordLogin(t *testing.T) {
	setupTestDatabase(t)

	account, err := NewAccount("alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, account.Role)
	assert.NotEqual(t, "correct horse battery", account.Password, "password must be hashed")

	_, err = NewAccount("alice2", "alice@example.com", "another password")
	assert.Error(t, err, "duplicate email is rejected")

	signedIn, err := AuthenticateWithPassword("alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, account.ID, signedIn.ID)

	_, err = AuthenticateWithPassword("alice@example.com", "wrong password")
	assert.Error(t, err)
	_, err = AuthenticateWithPassword("nobody@example.com", "whatever")
	assert.Error(t, err)
}

func TestSetAccountRole(t *testing.T) {
	setupTestDatabase(t)

	account := createTestAccount(t, "bob", models.RoleReader)
	account, err := SetAccountRole(account, models.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, account.Role)

	reloaded, err := GetAccount(account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, reloaded.Role)
}

func TestDeleteAccountCascades(t *testing.T) {
	setupTestDatabase(t)
	author := createTestAccount(t, "alice", models.RoleEditor)
	reader := createTestAccount(t, "bob", models.RoleReader)

	item, err := NewPost(author, models.Post{
		Title:     "Post By A Doomed Account",
		Content:   "The author account is about to be removed.",
		Published: true,
		Tags:      []models.Tag{{Name: "farewell"}},
	})
	require.NoError(t, err)

	_, err = NewComment(reader, item, "Goodbye!")
	require.NoError(t, err)
	_, err = ToggleLikePost(reader, item)
	require.NoError(t, err)

	require.NoError(t, DeleteAccount(author))

	countRows := func(model any, where string, args ...any) int64 {
		var count int64
		require.NoError(t, database.C.Model(model).Where(where, args...).Count(&count).Error)
		return count
	}

	assert.Zero(t, countRows(&models.Account{}, "id = ?", author.ID))
	assert.Zero(t, countRows(&models.Post{}, "author_id = ?", author.ID))
	assert.Zero(t, countRows(&models.Comment{}, "post_id = ?", item.ID), "comments on the author's posts go too")
	assert.Zero(t, countRows(&models.Like{}, "post_id = ?", item.ID))

	// The commenter survives untouched.
	assert.EqualValues(t, 1, countRows(&models.Account{}, "id = ?", reader.ID))
}

func TestAuthTicketRoundtrip(t *testing.T) {
	setupTestDatabase(t)
	account := createTestAccount(t, "alice", models.RoleEditor)

	ticket, err := GrantTicket(account)
	require.NoError(t, err)
	require.NotEmpty(t, ticket.Token)

	resolved, err := Authenticate(ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, resolved.ID)
	assert.Equal(t, account.Role, resolved.Role)

	_, err = Authenticate("not-a-real-token")
	assert.Error(t, err)

	require.NoError(t, RevokeTicket(ticket.Token))
	_, err = Authenticate(ticket.Token)
	assert.Error(t, err)
}
