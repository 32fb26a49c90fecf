package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wuddevdet/internal/models"
)

func TestMemoryBoardRepository_InsertPrependsAndReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBoardRepository(Seed{})

	require.NoError(t, repo.InsertPost(ctx, models.Post{ID: "1", Title: "first"}))
	require.NoError(t, repo.InsertPost(ctx, models.Post{ID: "2", Title: "second"}))

	posts, err := repo.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "2", posts[0].ID)
	assert.Equal(t, "1", posts[1].ID)

	posts[0].Title = "mutated"
	posts[0].Comments = append(posts[0].Comments, models.Comment{ID: "x"})

	again, err := repo.GetPost(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "second", again.Title)
	assert.Empty(t, again.Comments)
}

func TestMemoryBoardRepository_PostMutations(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBoardRepository(Seed{Posts: []models.Post{{ID: "1"}, {ID: "2"}}})

	ok, err := repo.TogglePin(ctx, "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TogglePin(ctx, "404")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.AppendComment(ctx, "2", models.Comment{ID: "a"}))
	require.NoError(t, repo.AppendComment(ctx, "2", models.Comment{ID: "b"}))
	assert.ErrorIs(t, repo.AppendComment(ctx, "404", models.Comment{ID: "c"}), ErrPostNotFound)

	post, err := repo.GetPost(ctx, "2")
	require.NoError(t, err)
	assert.True(t, post.IsPinned)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "a", post.Comments[0].ID)
	assert.Equal(t, "b", post.Comments[1].ID)

	ok, err = repo.DeletePost(ctx, "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeletePost(ctx, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repo.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = repo.GetPost(ctx, "1")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestMemoryBoardRepository_GuestMessages(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBoardRepository(Seed{GuestMessages: []models.GuestMessage{{ID: "g1"}}})

	require.NoError(t, repo.InsertGuestMessage(ctx, models.GuestMessage{ID: "g2", CreatedAt: time.Now()}))

	ok, err := repo.ToggleGuestMessageResponded(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ToggleGuestMessageResponded(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	messages, err := repo.ListGuestMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "g2", messages[0].ID)
	assert.True(t, messages[1].IsResponded)

	count, err := repo.CountGuestMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryBoardRepository_ConcurrentComments(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBoardRepository(Seed{Posts: []models.Post{{ID: "1"}}})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.AppendComment(ctx, "1", models.Comment{ID: "c"}))
		}()
	}
	wg.Wait()

	post, err := repo.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, post.Comments, 50)
}

func TestMemoryProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	_, err := repo.GetAvatar(ctx, "currentUser")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	previous, err := repo.SetAvatar(ctx, "currentUser", "http://cdn/one.png")
	require.NoError(t, err)
	assert.Empty(t, previous)

	previous, err = repo.SetAvatar(ctx, "currentUser", "http://cdn/two.png")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/one.png", previous)

	avatar, err := repo.GetAvatar(ctx, "currentUser")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/two.png", avatar)
}
