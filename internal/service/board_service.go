package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"wuddevdet/internal/models"
	"wuddevdet/internal/repository"
	"wuddevdet/internal/task"
)

var (
	ErrEmptyComment = errors.New("comment is empty")
	ErrPostNotFound = repository.ErrPostNotFound
)

type BoardService interface {
	CreatePost(ctx context.Context, input models.PostInput, author models.Author) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	TogglePin(ctx context.Context, postID string) error
	AddComment(ctx context.Context, postID, content string, author models.Author) (models.Comment, error)
	ToggleGuestMessageResponded(ctx context.Context, messageID string) error
	SubmitGuestMessage(ctx context.Context, input models.GuestInput) *task.Task[GuestReceipt]
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error)
	View(ctx context.Context, session models.Session, tab string) (BoardView, error)
	Ping(ctx context.Context) error
}

// GuestReceipt is what a finished guest submission reports back: the form
// cleared for the next message and the acknowledgement to show.
type GuestReceipt struct {
	MessageID       string            `json:"messageId"`
	Form            models.GuestInput `json:"form"`
	Acknowledgement string            `json:"acknowledgement"`
}

// GuestInbox receives submitted guest messages.
type GuestInbox interface {
	Deliver(ctx context.Context, msg models.GuestMessage) error
}

type simulatedInbox struct{}

// NewSimulatedInbox accepts messages without storing them anywhere.
func NewSimulatedInbox() GuestInbox {
	return simulatedInbox{}
}

func (simulatedInbox) Deliver(ctx context.Context, msg models.GuestMessage) error {
	log.Printf("Guest message %s from %s <%s> delivered", msg.ID, msg.Name, msg.Email)
	return nil
}

type repositoryInbox struct {
	repo repository.BoardRepository
}

// NewRepositoryInbox adds delivered messages to the board's guest messages.
func NewRepositoryInbox(repo repository.BoardRepository) GuestInbox {
	return &repositoryInbox{repo: repo}
}

func (i *repositoryInbox) Deliver(ctx context.Context, msg models.GuestMessage) error {
	if err := i.repo.InsertGuestMessage(ctx, msg); err != nil {
		return fmt.Errorf("error storing guest message: %w", err)
	}
	return nil
}

type boardService struct {
	repo        repository.BoardRepository
	inbox       GuestInbox
	ids         IDGenerator
	submitDelay time.Duration
	now         func() time.Time
}

func NewBoardService(repo repository.BoardRepository, inbox GuestInbox, ids IDGenerator, submitDelay time.Duration) BoardService {
	return &boardService{
		repo:        repo,
		inbox:       inbox,
		ids:         ids,
		submitDelay: submitDelay,
		now:         time.Now,
	}
}

func (b *boardService) CreatePost(ctx context.Context, input models.PostInput, author models.Author) (models.Post, error) {
	count, err := b.repo.CountPosts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:        b.ids.PostID(count),
		Title:     input.Title,
		Content:   input.Content,
		EventDate: input.EventDate,
		Location:  input.Location,
		Author:    author,
		IsPinned:  false,
		CreatedAt: b.now(),
		Comments:  []models.Comment{},
	}

	if err := b.repo.InsertPost(ctx, post); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (b *boardService) DeletePost(ctx context.Context, postID string) error {
	deleted, err := b.repo.DeletePost(ctx, postID)
	if err != nil {
		return err
	}
	if !deleted {
		log.Printf("Delete of unknown post %s ignored", postID)
	}
	return nil
}

func (b *boardService) TogglePin(ctx context.Context, postID string) error {
	_, err := b.repo.TogglePin(ctx, postID)
	return err
}

// AddComment stores content as entered; the trim only decides emptiness.
func (b *boardService) AddComment(ctx context.Context, postID, content string, author models.Author) (models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return models.Comment{}, ErrEmptyComment
	}

	comment := models.Comment{
		ID:        b.ids.CommentID(),
		Content:   content,
		Author:    author,
		CreatedAt: b.now(),
	}

	if err := b.repo.AppendComment(ctx, postID, comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

func (b *boardService) ToggleGuestMessageResponded(ctx context.Context, messageID string) error {
	_, err := b.repo.ToggleGuestMessageResponded(ctx, messageID)
	return err
}

// SubmitGuestMessage hands the message to the inbox after the configured
// delay. The returned task finishes exactly once whether or not anyone waits.
func (b *boardService) SubmitGuestMessage(ctx context.Context, input models.GuestInput) *task.Task[GuestReceipt] {
	return task.Run(func(ctx context.Context) (GuestReceipt, error) {
		if err := task.Sleep(ctx, b.submitDelay); err != nil {
			return GuestReceipt{}, err
		}

		msg := models.GuestMessage{
			ID:        b.ids.MessageID(),
			Name:      input.Name,
			Email:     input.Email,
			Message:   input.Message,
			CreatedAt: b.now(),
		}

		if err := b.inbox.Deliver(ctx, msg); err != nil {
			return GuestReceipt{}, err
		}

		return GuestReceipt{
			MessageID:       msg.ID,
			Form:            models.GuestInput{},
			Acknowledgement: fmt.Sprintf("We'll get back to you at %s", input.Email),
		}, nil
	})
}

func (b *boardService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := b.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	SortPosts(posts)
	return posts, nil
}

func (b *boardService) ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error) {
	messages, err := b.repo.ListGuestMessages(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (b *boardService) Ping(ctx context.Context) error {
	return b.repo.Ping(ctx)
}

// SortPosts puts pinned posts first and orders each group newest first.
// Posts with equal keys keep their relative order.
func SortPosts(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
