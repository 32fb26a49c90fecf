package forms

import (
	"strings"
	"unicode/utf8"

	"wuddevdet/internal/models"
)

const (
	GuestMessageMaxLen = 500
	PostTitleMaxLen    = 100
	PostContentMaxLen  = 280
	CommentMaxLen      = 280
)

type GuestForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,looseemail"`
	Message string `json:"message" validate:"required,max=500"`

	fieldState `validate:"-"`
}

var guestMessages = map[string]string{
	"name.required":    "Name is required",
	"email.required":   "Email is required",
	"email.looseemail": "Email is invalid",
	"message.required": "Message is required",
	"message.max":      "Message must be at most 500 characters",
}

func (f *GuestForm) SetName(v string)    { f.Name = v; f.clear("name") }
func (f *GuestForm) SetEmail(v string)   { f.Email = v; f.clear("email") }
func (f *GuestForm) SetMessage(v string) { f.Message = v; f.clear("message") }

// Remaining is the character counter shown under the message box.
func (f *GuestForm) Remaining() int {
	return GuestMessageMaxLen - utf8.RuneCountInString(f.Message)
}

func (f *GuestForm) Validate() error {
	return f.record(check(f, guestMessages))
}

func (f *GuestForm) Input() models.GuestInput {
	return models.GuestInput{Name: f.Name, Email: f.Email, Message: f.Message}
}

func (f *GuestForm) Reset() {
	*f = GuestForm{}
}

type PostForm struct {
	Title     string `json:"title" validate:"required,max=100"`
	Content   string `json:"content" validate:"required,max=280"`
	EventDate string `json:"eventDate" validate:"required,eventdate"`
	Location  string `json:"location" validate:"required"`

	fieldState `validate:"-"`
}

var postMessages = map[string]string{
	"title.required":      "Title is required",
	"title.max":           "Title must be at most 100 characters",
	"content.required":    "Content is required",
	"content.max":         "Content must be at most 280 characters",
	"eventDate.required":  "Event date is required",
	"eventDate.eventdate": "Event date is invalid",
	"location.required":   "Location is required",
}

func (f *PostForm) SetTitle(v string)     { f.Title = v; f.clear("title") }
func (f *PostForm) SetContent(v string)   { f.Content = v; f.clear("content") }
func (f *PostForm) SetEventDate(v string) { f.EventDate = v; f.clear("eventDate") }
func (f *PostForm) SetLocation(v string)  { f.Location = v; f.clear("location") }

func (f *PostForm) Validate() error {
	return f.record(check(f, postMessages))
}

// Input converts a form that passed Validate.
func (f *PostForm) Input() (models.PostInput, error) {
	eventDate, err := ParseEventDate(f.EventDate)
	if err != nil {
		return models.PostInput{}, FieldErrors{"eventDate": postMessages["eventDate.eventdate"]}
	}
	return models.PostInput{
		Title:     f.Title,
		Content:   f.Content,
		EventDate: eventDate,
		Location:  f.Location,
	}, nil
}

func (f *PostForm) Reset() {
	*f = PostForm{}
}

// CommentForm only bounds length; blank comments are dropped by the board.
type CommentForm struct {
	Content string `json:"content" validate:"max=280"`

	fieldState `validate:"-"`
}

var commentMessages = map[string]string{
	"content.max": "Comment must be at most 280 characters",
}

func (f *CommentForm) SetContent(v string) { f.Content = v; f.clear("content") }

func (f *CommentForm) Validate() error {
	return f.record(check(f, commentMessages))
}

func (f *CommentForm) Blank() bool {
	return strings.TrimSpace(f.Content) == ""
}

func (f *CommentForm) Reset() {
	*f = CommentForm{}
}
