package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"wuddevdet/internal/models"
	"wuddevdet/internal/service"
	"wuddevdet/internal/task"
)

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) CreatePost(ctx context.Context, input models.PostInput, author models.Author) (models.Post, error) {
	args := m.Called(ctx, input, author)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *MockBoardService) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBoardService) TogglePin(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBoardService) AddComment(ctx context.Context, postID, content string, author models.Author) (models.Comment, error) {
	args := m.Called(ctx, postID, content, author)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockBoardService) ToggleGuestMessageResponded(ctx context.Context, messageID string) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

func (m *MockBoardService) SubmitGuestMessage(ctx context.Context, input models.GuestInput) *task.Task[service.GuestReceipt] {
	args := m.Called(ctx, input)
	return task.Done(args.Get(0).(service.GuestReceipt), args.Error(1))
}

func (m *MockBoardService) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockBoardService) ListGuestMessages(ctx context.Context) ([]models.GuestMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuestMessage), args.Error(1)
}

func (m *MockBoardService) View(ctx context.Context, session models.Session, tab string) (service.BoardView, error) {
	args := m.Called(ctx, session, tab)
	return args.Get(0).(service.BoardView), args.Error(1)
}

func (m *MockBoardService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Session(ctx context.Context) models.Session {
	args := m.Called(ctx)
	return args.Get(0).(models.Session)
}

func (m *MockSessionService) ToggleLogin(s models.Session) models.Session {
	args := m.Called(s)
	return args.Get(0).(models.Session)
}

func (m *MockSessionService) ToggleAdmin(s models.Session) (models.Session, error) {
	args := m.Called(s)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionService) ActingAuthor(ctx context.Context, s models.Session) models.Author {
	args := m.Called(ctx, s)
	return args.Get(0).(models.Author)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(s models.Session) (string, error) {
	args := m.Called(s)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(token string) (models.Session, error) {
	args := m.Called(token)
	return args.Get(0).(models.Session), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) *task.Task[service.LoginResult] {
	args := m.Called(ctx, email, password)
	return task.Done(args.Get(0).(service.LoginResult), args.Error(1))
}

func (m *MockAuthService) Signup(ctx context.Context, input models.SignupInput) *task.Task[service.SignupResult] {
	args := m.Called(ctx, input)
	return task.Done(args.Get(0).(service.SignupResult), args.Error(1))
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, s models.Session, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, s, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) CountTables() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
