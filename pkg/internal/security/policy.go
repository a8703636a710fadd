package security

import (
	"errors"

	"github.com/lumenpress/lumen/pkg/internal/models"
)

type Action string

const (
	ActionCreatePost    = Action("create_post")
	ActionUpdatePost    = Action("update_post")
	ActionDeletePost    = Action("delete_post")
	ActionTogglePublish = Action("toggle_publish")
	ActionCreateComment = Action("create_comment")
	ActionUpdateComment = Action("update_comment")
	ActionDeleteComment = Action("delete_comment")
	ActionLikePost      = Action("like")
	ActionSavePost      = Action("save")
	ActionManageUsers   = Action("manage_users")
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("insufficient privilege to perform this action")
)

// Owned is any resource with a single owning account.
type Owned interface {
	OwnerID() uint
}

// CanPerform is the single authorization decision point. It never touches the
// database; callers resolve the resource first so that an absent resource can
// be reported before a privilege failure.
func CanPerform(actor *models.Account, action Action, resource ...Owned) error {
	if actor == nil {
		return ErrAuthenticationRequired
	}

	switch action {
	case ActionCreatePost:
		if actor.CanAuthor() {
			return nil
		}
	case ActionUpdatePost, ActionDeletePost, ActionTogglePublish,
		ActionUpdateComment, ActionDeleteComment:
		if actor.IsAdmin() {
			return nil
		}
		if len(resource) > 0 && resource[0].OwnerID() == actor.ID {
			return nil
		}
	case ActionCreateComment, ActionLikePost, ActionSavePost:
		return nil
	case ActionManageUsers:
		if actor.IsAdmin() {
			return nil
		}
	}

	return ErrAuthorizationDenied
}
