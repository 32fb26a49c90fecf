package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"wuddevdet/internal/models"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// BoardRepository stores the posts and guest messages of the community
// board. Listing order is storage order (newest insert first); callers
// apply their own display ordering.
type BoardRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CountPosts(ctx context.Context) (int, error)
	InsertPost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, postID string) (bool, error)
	TogglePin(ctx context.Context, postID string) (bool, error)
	AppendComment(ctx context.Context, postID string, comment models.Comment) error

	ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error)
	CountGuestMessages(ctx context.Context) (int, error)
	InsertGuestMessage(ctx context.Context, msg models.GuestMessage) error
	ToggleGuestMessageResponded(ctx context.Context, messageID string) (bool, error)

	Ping(ctx context.Context) error
}

type ProfileRepository interface {
	GetAvatar(ctx context.Context, userID string) (string, error)
	SetAvatar(ctx context.Context, userID, avatarURL string) (previous string, err error)
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	Board   BoardRepository
	Profile ProfileRepository
	Tables  TablesRepository
}

// NewRepository backs every repository with postgres.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Board:   NewPostgresBoardRepository(db),
		Profile: NewProfileRepository(db),
		Tables:  NewTablesRepository(db),
	}
}

// NewMemoryRepository keeps everything in process memory, starting from seed.
// It has no tables to count, so Tables stays nil.
func NewMemoryRepository(seed Seed) *Repository {
	return &Repository{
		Board:   NewMemoryBoardRepository(seed),
		Profile: NewMemoryProfileRepository(),
	}
}
