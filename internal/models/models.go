package models

import (
	"time"
)

const DefaultAvatar = "/avatars/default.jpg"

type Author struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"image" yaml:"image"`
}

type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Author    Author    `json:"author" yaml:"author"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type Post struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	EventDate time.Time `json:"eventDate" yaml:"eventDate"`
	Location  string    `json:"location" yaml:"location"`
	Author    Author    `json:"author" yaml:"author"`
	IsPinned  bool      `json:"isPinned" yaml:"isPinned"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Comments  []Comment `json:"comments" yaml:"comments"`
}

// Clone returns a copy that shares no comment storage with p.
func (p Post) Clone() Post {
	c := p
	c.Comments = make([]Comment, len(p.Comments))
	copy(c.Comments, p.Comments)
	return c
}

type GuestMessage struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Message     string    `json:"message" yaml:"message"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	IsResponded bool      `json:"isResponded" yaml:"isResponded"`
}

// PostInput is a validated new-post form.
type PostInput struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	EventDate time.Time `json:"eventDate"`
	Location  string    `json:"location"`
}

type GuestInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}
