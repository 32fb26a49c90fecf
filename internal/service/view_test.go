package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wuddevdet/internal/config"
	"wuddevdet/internal/models"
)

func TestBoardService_ViewRoleTable(t *testing.T) {
	tests := []struct {
		name         string
		session      models.Session
		tab          string
		role         models.Role
		guestForm    bool
		canCreate    bool
		canModerate  bool
		canRespond   bool
		tabs         []string
		activeTab    string
		postCount    int
		messageCount int
	}{
		{
			name:      "guest",
			session:   models.Session{},
			role:      models.RoleGuest,
			guestForm: true,
		},
		{
			name:      "admin flag without login is still a guest",
			session:   models.Session{IsAdmin: true},
			tab:       TabMessages,
			role:      models.RoleGuest,
			guestForm: true,
		},
		{
			name:      "member",
			session:   models.Session{LoggedIn: true},
			role:      models.RoleMember,
			canCreate: true,
			activeTab: TabPosts,
			postCount: 3,
		},
		{
			name:      "member asking for messages gets posts",
			session:   models.Session{LoggedIn: true},
			tab:       TabMessages,
			role:      models.RoleMember,
			canCreate: true,
			activeTab: TabPosts,
			postCount: 3,
		},
		{
			name:        "admin posts tab",
			session:     models.Session{LoggedIn: true, IsAdmin: true},
			role:        models.RoleAdmin,
			canCreate:   true,
			canModerate: true,
			tabs:        []string{TabPosts, TabMessages},
			activeTab:   TabPosts,
			postCount:   3,
		},
		{
			name:         "admin messages tab",
			session:      models.Session{LoggedIn: true, IsAdmin: true},
			tab:          TabMessages,
			role:         models.RoleAdmin,
			canCreate:    true,
			canModerate:  true,
			canRespond:   true,
			tabs:         []string{TabPosts, TabMessages},
			activeTab:    TabMessages,
			messageCount: 3,
		},
		{
			name:        "admin unknown tab",
			session:     models.Session{LoggedIn: true, IsAdmin: true},
			tab:         "settings",
			role:        models.RoleAdmin,
			canCreate:   true,
			canModerate: true,
			tabs:        []string{TabPosts, TabMessages},
			activeTab:   TabPosts,
			postCount:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := newTestBoard(t, newSeededRepo(t), NewSimulatedInbox(), config.IDStrategyUnique, 0)

			view, err := board.View(context.Background(), tt.session, tt.tab)
			require.NoError(t, err)

			assert.Equal(t, tt.role, view.Role)
			assert.Equal(t, tt.guestForm, view.ShowGuestForm)
			assert.Equal(t, tt.canCreate, view.CanCreatePost)
			assert.Equal(t, tt.canCreate, view.CanComment)
			assert.Equal(t, tt.canModerate, view.CanModerate)
			assert.Equal(t, tt.canRespond, view.CanToggleResponded)
			assert.Equal(t, tt.tabs, view.Tabs)
			assert.Equal(t, tt.activeTab, view.ActiveTab)
			assert.Len(t, view.Posts, tt.postCount)
			assert.Len(t, view.GuestMessages, tt.messageCount)
		})
	}
}

func TestBoardService_ViewDisplayStrings(t *testing.T) {
	board := newTestBoard(t, newSeededRepo(t), NewSimulatedInbox(), config.IDStrategyUnique, 0)

	view, err := board.View(context.Background(), models.Session{LoggedIn: true}, "")
	require.NoError(t, err)
	require.Len(t, view.Posts, 3)

	first := view.Posts[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Nov 15, 2023 at 6:00 PM", first.EventDate)
	assert.Equal(t, "21 hours ago", first.CreatedAt)
	assert.Equal(t, 2, first.CommentCount)
	require.Len(t, first.Comments, 2)
	assert.Equal(t, "c1", first.Comments[0].ID)

	assert.Equal(t, "3 days ago", view.Posts[1].CreatedAt)
	assert.Equal(t, 0, view.Posts[2].CommentCount)
	assert.NotNil(t, view.Posts[2].Comments)
}

func TestBoardService_ViewGuestFormLimit(t *testing.T) {
	board := newTestBoard(t, newSeededRepo(t), NewSimulatedInbox(), config.IDStrategyUnique, 0)

	view, err := board.View(context.Background(), models.Session{}, "")
	require.NoError(t, err)

	assert.Equal(t, 500, view.GuestMessageMaxLen)
	assert.Empty(t, view.Posts)
	assert.Empty(t, view.GuestMessages)
}
