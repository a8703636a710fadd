package security_test

import (
	"testing"

	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/lumenpress/lumen/pkg/internal/security"
	"github.com/stretchr/testify/assert"
)

func account(id uint, role string) *models.Account {
	account := &models.Account{Role: role}
	account.ID = id
	return account
}

func post(authorId uint) models.Post {
	return models.Post{AuthorID: authorId}
}

func TestCanPerformAnonymous(t *testing.T) {
	actions := []security.Action{
		security.ActionCreatePost,
		security.ActionUpdatePost,
		security.ActionDeletePost,
		security.ActionTogglePublish,
		security.ActionCreateComment,
		security.ActionUpdateComment,
		security.ActionDeleteComment,
		security.ActionLikePost,
		security.ActionSavePost,
		security.ActionManageUsers,
	}

	for _, action := range actions {
		err := security.CanPerform(nil, action, post(1))
		assert.ErrorIs(t, err, security.ErrAuthenticationRequired, "action %s", action)
		assert.NotErrorIs(t, err, security.ErrAuthorizationDenied, "action %s", action)
	}
}

func TestCanPerformCreatePost(t *testing.T) {
	assert.ErrorIs(t,
		security.CanPerform(account(1, models.RoleReader), security.ActionCreatePost),
		security.ErrAuthorizationDenied,
	)
	assert.NoError(t, security.CanPerform(account(1, models.RoleEditor), security.ActionCreatePost))
	assert.NoError(t, security.CanPerform(account(1, models.RoleAdmin), security.ActionCreatePost))
}

func TestCanPerformDeletePostOwnership(t *testing.T) {
	owner := account(1, models.RoleEditor)
	otherEditor := account(2, models.RoleEditor)
	reader := account(3, models.RoleReader)
	admin := account(4, models.RoleAdmin)
	item := post(1)

	assert.NoError(t, security.CanPerform(owner, security.ActionDeletePost, item))
	assert.ErrorIs(t,
		security.CanPerform(otherEditor, security.ActionDeletePost, item),
		security.ErrAuthorizationDenied,
	)
	assert.ErrorIs(t,
		security.CanPerform(reader, security.ActionDeletePost, item),
		security.ErrAuthorizationDenied,
	)
	assert.NoError(t, security.CanPerform(admin, security.ActionDeletePost, item))
}

func TestCanPerformDeletePostProperty(t *testing.T) {
	roles := []string{models.RoleReader, models.RoleEditor, models.RoleAdmin}
	for _, role := range roles {
		for actorId := uint(1); actorId <= 3; actorId++ {
			for authorId := uint(1); authorId <= 3; authorId++ {
				actor := account(actorId, role)
				err := security.CanPerform(actor, security.ActionDeletePost, post(authorId))

				expected := actorId == authorId || role == models.RoleAdmin
				assert.Equal(t, expected, err == nil,
					"role=%s actor=%d author=%d", role, actorId, authorId)
			}
		}
	}
}

func TestCanPerformTogglePublish(t *testing.T) {
	item := post(1)

	assert.ErrorIs(t,
		security.CanPerform(account(2, models.RoleReader), security.ActionTogglePublish, item),
		security.ErrAuthorizationDenied,
	)
	assert.NoError(t, security.CanPerform(account(1, models.RoleEditor), security.ActionTogglePublish, item))
	assert.NoError(t, security.CanPerform(account(9, models.RoleAdmin), security.ActionTogglePublish, item))
}

func TestCanPerformCommentOwnership(t *testing.T) {
	comment := models.Comment{AccountID: 7}

	assert.NoError(t, security.CanPerform(account(7, models.RoleReader), security.ActionUpdateComment, comment))
	assert.NoError(t, security.CanPerform(account(1, models.RoleAdmin), security.ActionDeleteComment, comment))
	assert.ErrorIs(t,
		security.CanPerform(account(8, models.RoleEditor), security.ActionDeleteComment, comment),
		security.ErrAuthorizationDenied,
	)
}

func TestCanPerformAnyAuthenticated(t *testing.T) {
	for _, action := range []security.Action{
		security.ActionCreateComment,
		security.ActionLikePost,
		security.ActionSavePost,
	} {
		assert.NoError(t, security.CanPerform(account(5, models.RoleReader), action), "action %s", action)
	}
}

func TestCanPerformManageUsers(t *testing.T) {
	assert.ErrorIs(t,
		security.CanPerform(account(1, models.RoleEditor), security.ActionManageUsers),
		security.ErrAuthorizationDenied,
	)
	assert.NoError(t, security.CanPerform(account(2, models.RoleAdmin), security.ActionManageUsers))
}
