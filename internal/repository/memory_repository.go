package repository

import (
	"context"
	"sync"

	"wuddevdet/internal/models"
)

type memoryBoardRepository struct {
	mu       sync.RWMutex
	posts    []models.Post
	messages []models.GuestMessage
}

// NewMemoryBoardRepository keeps the board in process memory. Nothing
// survives a restart; the seed is the whole starting state.
func NewMemoryBoardRepository(seed Seed) BoardRepository {
	r := &memoryBoardRepository{
		posts:    make([]models.Post, 0, len(seed.Posts)),
		messages: make([]models.GuestMessage, 0, len(seed.GuestMessages)),
	}
	for _, p := range seed.Posts {
		r.posts = append(r.posts, p.Clone())
	}
	r.messages = append(r.messages, seed.GuestMessages...)
	return r
}

func (r *memoryBoardRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.Post, len(r.posts))
	for i, p := range r.posts {
		posts[i] = p.Clone()
	}
	return posts, nil
}

func (r *memoryBoardRepository) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOfPost(postID)
	if i < 0 {
		return nil, ErrPostNotFound
	}
	post := r.posts[i].Clone()
	return &post, nil
}

func (r *memoryBoardRepository) CountPosts(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}

func (r *memoryBoardRepository) InsertPost(ctx context.Context, post models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post = post.Clone()
	r.posts = append([]models.Post{post}, r.posts...)
	return nil
}

func (r *memoryBoardRepository) DeletePost(ctx context.Context, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfPost(postID)
	if i < 0 {
		return false, nil
	}
	r.posts = append(r.posts[:i:i], r.posts[i+1:]...)
	return true, nil
}

func (r *memoryBoardRepository) TogglePin(ctx context.Context, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfPost(postID)
	if i < 0 {
		return false, nil
	}
	r.posts[i].IsPinned = !r.posts[i].IsPinned
	return true, nil
}

func (r *memoryBoardRepository) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOfPost(postID)
	if i < 0 {
		return ErrPostNotFound
	}
	r.posts[i].Comments = append(r.posts[i].Comments, comment)
	return nil
}

func (r *memoryBoardRepository) ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]models.GuestMessage, len(r.messages))
	copy(messages, r.messages)
	return messages, nil
}

func (r *memoryBoardRepository) CountGuestMessages(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}

func (r *memoryBoardRepository) InsertGuestMessage(ctx context.Context, msg models.GuestMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append([]models.GuestMessage{msg}, r.messages...)
	return nil
}

func (r *memoryBoardRepository) ToggleGuestMessageResponded(ctx context.Context, messageID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.messages {
		if r.messages[i].ID == messageID {
			r.messages[i].IsResponded = !r.messages[i].IsResponded
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryBoardRepository) Ping(ctx context.Context) error {
	return nil
}

// indexOfPost must be called with mu held.
func (r *memoryBoardRepository) indexOfPost(postID string) int {
	for i := range r.posts {
		if r.posts[i].ID == postID {
			return i
		}
	}
	return -1
}

type memoryProfileRepository struct {
	mu      sync.RWMutex
	avatars map[string]string
}

func NewMemoryProfileRepository() ProfileRepository {
	return &memoryProfileRepository{avatars: make(map[string]string)}
}

func (r *memoryProfileRepository) GetAvatar(ctx context.Context, userID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	avatar, ok := r.avatars[userID]
	if !ok {
		return "", ErrProfileNotFound
	}
	return avatar, nil
}

func (r *memoryProfileRepository) SetAvatar(ctx context.Context, userID, avatarURL string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.avatars[userID]
	r.avatars[userID] = avatarURL
	return previous, nil
}
