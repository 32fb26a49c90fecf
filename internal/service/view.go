package service

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"wuddevdet/internal/forms"
	"wuddevdet/internal/models"
)

const (
	TabPosts    = "posts"
	TabMessages = "messages"

	EventDateLayout = "Jan 2, 2006 at 3:04 PM"
)

// BoardView is the board as one session is allowed to see it.
type BoardView struct {
	Role               models.Role        `json:"role"`
	ShowGuestForm      bool               `json:"showGuestForm"`
	GuestMessageMaxLen int                `json:"guestMessageMaxLength,omitempty"`
	CanCreatePost      bool               `json:"canCreatePost"`
	CanComment         bool               `json:"canComment"`
	CanModerate        bool               `json:"canModerate"`
	CanToggleResponded bool               `json:"canToggleResponded"`
	Tabs               []string           `json:"tabs,omitempty"`
	ActiveTab          string             `json:"activeTab,omitempty"`
	Posts              []PostView         `json:"posts"`
	GuestMessages      []GuestMessageView `json:"guestMessages"`
}

type PostView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	EventDate    string        `json:"eventDate"`
	Location     string        `json:"location"`
	Author       models.Author `json:"author"`
	IsPinned     bool          `json:"isPinned"`
	CreatedAt    string        `json:"createdAt"`
	CommentCount int           `json:"commentCount"`
	Comments     []CommentView `json:"comments"`
}

type CommentView struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Author    models.Author `json:"author"`
	CreatedAt string        `json:"createdAt"`
}

type GuestMessageView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	IsResponded bool   `json:"isResponded"`
}

// View projects the board for session. Guests only get the contact form;
// members get the sorted posts; admins additionally moderate and may open
// the messages tab. Any other tab request lands on posts.
func (b *boardService) View(ctx context.Context, session models.Session, tab string) (BoardView, error) {
	view := BoardView{
		Role:          session.Role(),
		Posts:         []PostView{},
		GuestMessages: []GuestMessageView{},
	}

	if view.Role == models.RoleGuest {
		view.ShowGuestForm = true
		view.GuestMessageMaxLen = forms.GuestMessageMaxLen
		return view, nil
	}

	view.CanCreatePost = true
	view.CanComment = true

	if view.Role == models.RoleAdmin {
		view.CanModerate = true
		view.Tabs = []string{TabPosts, TabMessages}
	}

	view.ActiveTab = TabPosts
	if tab == TabMessages && view.Role == models.RoleAdmin {
		view.ActiveTab = TabMessages
	}

	if view.ActiveTab == TabMessages {
		view.CanToggleResponded = true
		messages, err := b.ListGuestMessages(ctx)
		if err != nil {
			return BoardView{}, err
		}
		for _, m := range messages {
			view.GuestMessages = append(view.GuestMessages, b.guestMessageView(m))
		}
		return view, nil
	}

	posts, err := b.ListPosts(ctx)
	if err != nil {
		return BoardView{}, err
	}
	for _, p := range posts {
		view.Posts = append(view.Posts, b.postView(p))
	}
	return view, nil
}

func (b *boardService) postView(p models.Post) PostView {
	comments := make([]CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			Author:    c.Author,
			CreatedAt: b.relative(c.CreatedAt),
		})
	}

	return PostView{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		EventDate:    p.EventDate.Format(EventDateLayout),
		Location:     p.Location,
		Author:       p.Author,
		IsPinned:     p.IsPinned,
		CreatedAt:    b.relative(p.CreatedAt),
		CommentCount: len(p.Comments),
		Comments:     comments,
	}
}

func (b *boardService) guestMessageView(m models.GuestMessage) GuestMessageView {
	return GuestMessageView{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Message:     m.Message,
		CreatedAt:   b.relative(m.CreatedAt),
		IsResponded: m.IsResponded,
	}
}

func (b *boardService) relative(t time.Time) string {
	return humanize.RelTime(t, b.now(), "ago", "from now")
}
