package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"wuddevdet/internal/models"
)

type BoardRepositoryImpl struct {
	DB *sqlx.DB
}

type postRow struct {
	PostID      string    `db:"post_id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	EventDate   time.Time `db:"event_date"`
	Location    string    `db:"location"`
	AuthorID    string    `db:"author_id"`
	AuthorName  string    `db:"author_name"`
	AuthorImage string    `db:"author_image"`
	IsPinned    bool      `db:"is_pinned"`
	CreatedAt   time.Time `db:"created_at"`
}

type commentRow struct {
	CommentID   string    `db:"comment_id"`
	PostID      string    `db:"post_id"`
	Content     string    `db:"content"`
	AuthorID    string    `db:"author_id"`
	AuthorName  string    `db:"author_name"`
	AuthorImage string    `db:"author_image"`
	CreatedAt   time.Time `db:"created_at"`
}

type guestMessageRow struct {
	ID          string    `db:"message_id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Message     string    `db:"message"`
	CreatedAt   time.Time `db:"created_at"`
	IsResponded bool      `db:"is_responded"`
}

func NewPostgresBoardRepository(db *sqlx.DB) *BoardRepositoryImpl {
	return &BoardRepositoryImpl{DB: db}
}

func (row postRow) toModel(comments []models.Comment) models.Post {
	if comments == nil {
		comments = []models.Comment{}
	}
	return models.Post{
		ID:        row.PostID,
		Title:     row.Title,
		Content:   row.Content,
		EventDate: row.EventDate,
		Location:  row.Location,
		Author:    models.Author{ID: row.AuthorID, Name: row.AuthorName, Avatar: row.AuthorImage},
		IsPinned:  row.IsPinned,
		CreatedAt: row.CreatedAt,
		Comments:  comments,
	}
}

func (row commentRow) toModel() models.Comment {
	return models.Comment{
		ID:        row.CommentID,
		Content:   row.Content,
		Author:    models.Author{ID: row.AuthorID, Name: row.AuthorName, Avatar: row.AuthorImage},
		CreatedAt: row.CreatedAt,
	}
}

func (r *BoardRepositoryImpl) ListPosts(ctx context.Context) ([]models.Post, error) {
	var rows []postRow
	err := r.DB.SelectContext(ctx, &rows, `
		SELECT post_id, title, content, event_date, location,
		       author_id, author_name, author_image, is_pinned, created_at
		FROM posts
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	var commentRows []commentRow
	err = r.DB.SelectContext(ctx, &commentRows, `
		SELECT comment_id, post_id, content, author_id, author_name, author_image, created_at
		FROM comments
		ORDER BY post_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}

	byPost := make(map[string][]models.Comment)
	for _, c := range commentRows {
		byPost[c.PostID] = append(byPost[c.PostID], c.toModel())
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toModel(byPost[row.PostID]))
	}
	return posts, nil
}

func (r *BoardRepositoryImpl) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	var row postRow
	err := r.DB.GetContext(ctx, &row, `
		SELECT post_id, title, content, event_date, location,
		       author_id, author_name, author_image, is_pinned, created_at
		FROM posts
		WHERE post_id = $1
	`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	var commentRows []commentRow
	err = r.DB.SelectContext(ctx, &commentRows, `
		SELECT comment_id, post_id, content, author_id, author_name, author_image, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY position
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("error getting comments: %w", err)
	}

	comments := make([]models.Comment, 0, len(commentRows))
	for _, c := range commentRows {
		comments = append(comments, c.toModel())
	}

	post := row.toModel(comments)
	return &post, nil
}

func (r *BoardRepositoryImpl) CountPosts(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}
	return count, nil
}

func (r *BoardRepositoryImpl) InsertPost(ctx context.Context, post models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, title, content, event_date, location, author_id, author_name, author_image, is_pinned, created_at)
        VALUES
        (:post_id, :title, :content, :event_date, :location, :author_id, :author_name, :author_image, :is_pinned, :created_at)
    `

	row := postRow{
		PostID:      post.ID,
		Title:       post.Title,
		Content:     post.Content,
		EventDate:   post.EventDate,
		Location:    post.Location,
		AuthorID:    post.Author.ID,
		AuthorName:  post.Author.Name,
		AuthorImage: post.Author.Avatar,
		IsPinned:    post.IsPinned,
		CreatedAt:   post.CreatedAt,
	}

	if _, err := r.DB.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	for _, c := range post.Comments {
		if err := r.AppendComment(ctx, post.ID, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *BoardRepositoryImpl) DeletePost(ctx context.Context, postID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return false, fmt.Errorf("error deleting post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking deleted rows: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *BoardRepositoryImpl) TogglePin(ctx context.Context, postID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE posts SET is_pinned = NOT is_pinned WHERE post_id = $1`, postID)
	if err != nil {
		return false, fmt.Errorf("error toggling pin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking updated rows: %w", err)
	}
	return rowsAffected > 0, nil
}

// AppendComment places the comment after the post's last one. The insert
// selects from posts, so an unknown post inserts nothing.
func (r *BoardRepositoryImpl) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	query := `
		INSERT INTO comments
		(comment_id, post_id, position, content, author_id, author_name, author_image, created_at)
		SELECT $1, p.post_id,
		       COALESCE((SELECT MAX(c.position) + 1 FROM comments c WHERE c.post_id = p.post_id), 0),
		       $3, $4, $5, $6, $7
		FROM posts p
		WHERE p.post_id = $2
	`

	result, err := r.DB.ExecContext(ctx, query,
		comment.ID,
		postID,
		comment.Content,
		comment.Author.ID,
		comment.Author.Name,
		comment.Author.Avatar,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error adding comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking inserted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *BoardRepositoryImpl) ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error) {
	var rows []guestMessageRow
	err := r.DB.SelectContext(ctx, &rows, `
		SELECT message_id, name, email, message, created_at, is_responded
		FROM guest_messages
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing guest messages: %w", err)
	}

	messages := make([]models.GuestMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, models.GuestMessage(row))
	}
	return messages, nil
}

func (r *BoardRepositoryImpl) CountGuestMessages(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM guest_messages`); err != nil {
		return 0, fmt.Errorf("error counting guest messages: %w", err)
	}
	return count, nil
}

func (r *BoardRepositoryImpl) InsertGuestMessage(ctx context.Context, msg models.GuestMessage) error {
	query := `
		INSERT INTO guest_messages (message_id, name, email, message, created_at, is_responded)
		VALUES (:message_id, :name, :email, :message, :created_at, :is_responded)
	`

	if _, err := r.DB.NamedExecContext(ctx, query, guestMessageRow(msg)); err != nil {
		return fmt.Errorf("error creating guest message: %w", err)
	}
	return nil
}

func (r *BoardRepositoryImpl) ToggleGuestMessageResponded(ctx context.Context, messageID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE guest_messages SET is_responded = NOT is_responded WHERE message_id = $1`, messageID)
	if err != nil {
		return false, fmt.Errorf("error toggling responded flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking updated rows: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *BoardRepositoryImpl) Ping(ctx context.Context) error {
	if r.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return r.DB.PingContext(ctx)
}
