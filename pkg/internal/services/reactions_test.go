package services

import (
	"testing"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeCount(t *testing.T, postId uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.C.Model(&models.Like{}).Where("post_id = ?", postId).Count(&count).Error)
	return count
}

func TestToggleLikePost(t *testing.T) {
	setupTestDatabase(t)
	author := createTestAccount(t, "alice", models.RoleEditor)
	reader := createTestAccount(t, "bob", models.RoleReader)

	item, err := NewPost(author, models.Post{
		Title:     "A Likeable Post",
		Content:   "Readers cannot help but press the heart.",
		Published: true,
	})
	require.NoError(t, err)
	require.Zero(t, likeCount(t, item.ID))

	liked, err := ToggleLikePost(reader, item)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, likeCount(t, item.ID))

	// Toggling again returns to the original state, never a duplicate row.
	liked, err = ToggleLikePost(reader, item)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, likeCount(t, item.ID))
}

func TestToggleSavePostIndependentOfLike(t *testing.T) {
	setupTestDatabase(t)
	author := createTestAccount(t, "alice", models.RoleEditor)
	reader := createTestAccount(t, "bob", models.RoleReader)

	item, err := NewPost(author, models.Post{
		Title:     "A Post Worth Keeping",
		Content:   "Save it for later, like it or not.",
		Published: true,
	})
	require.NoError(t, err)

	saved, err := ToggleSavePost(reader, item)
	require.NoError(t, err)
	assert.True(t, saved)

	// Saving leaves the like state untouched.
	assert.Zero(t, likeCount(t, item.ID))

	items, err := ListSavedPost(reader, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].PostID)
	assert.Equal(t, item.Slug, items[0].Post.Slug)

	saved, err = ToggleSavePost(reader, item)
	require.NoError(t, err)
	assert.False(t, saved)

	items, err = ListSavedPost(reader, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}
