package services

import (
	"testing"
	"time"

	"github.com/lumenpress/lumen/pkg/internal/database"
	"github.com/lumenpress/lumen/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	setupTestDatabase(t)
	author := createTestAccount(t, "alice", models.RoleEditor)
	reader := createTestAccount(t, "bob", models.RoleReader)

	item, err := NewPost(author, models.Post{
		Title:     "Open For Discussion",
		Content:   "Tell me what you think in the comments.",
		Published: true,
	})
	require.NoError(t, err)

	first, err := NewComment(reader, item, "First!")
	require.NoError(t, err)
	assert.Equal(t, reader.ID, first.AccountID)

	// Force distinct timestamps so the ordering assertion is meaningful.
	require.NoError(t, database.C.Model(&first).
		Update("created_at", time.Now().Add(-time.Minute)).Error)

	second, err := NewComment(author, item, "Thanks for reading.")
	require.NoError(t, err)

	items, err := ListComment(item.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest comment comes first")
	assert.Equal(t, "bob", items[1].Account.Name)

	count, err := CountComment(item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	edited, err := EditComment(first, "First! (edited)")
	require.NoError(t, err)
	assert.Equal(t, "First! (edited)", edited.Content)

	require.NoError(t, DeleteComment(edited))

	count, err = CountComment(item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = GetComment(first.ID)
	assert.Error(t, err)
}
