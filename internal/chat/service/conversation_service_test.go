package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"movieplus/internal/chat/service/mocks"
	"movieplus/internal/common"
	"movieplus/internal/dbmysql"
)

func newConversationServiceMocks(t *testing.T) (*mocks.MockConversationRepository, *mocks.MockMessageRepository, *mocks.MockUserRepository, ConversationService) {
	ctrl := gomock.NewController(t)
	convs := mocks.NewMockConversationRepository(ctrl)
	messages := mocks.NewMockMessageRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewConversationService(convs, messages, users)
	return convs, messages, users, svc
}

// expectHydrate wires the lookups every DTO build performs: participant
// names, the caller's unread count, and the newest message preview.
func expectHydrate(convs *mocks.MockConversationRepository, messages *mocks.MockMessageRepository, users *mocks.MockUserRepository, conversationID uint) {
	users.EXPECT().ByIDs(gomock.Any(), gomock.Any()).Return(map[string]*dbmysql.User{}, nil).AnyTimes()
	messages.EXPECT().UnreadCount(gomock.Any(), conversationID, gomock.Any()).Return(int64(0), nil).AnyTimes()
	messages.EXPECT().LastMessage(gomock.Any(), conversationID).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
}

func TestConversationService_CreateDirect(t *testing.T) {
	now := time.Now().UTC()
	existing := &dbmysql.Conversation{
		ID:        42,
		IsGroup:   false,
		CreatedBy: "user-a",
		CreatedAt: now,
		Participants: []dbmysql.ConversationParticipant{
			{ConversationID: 42, UserID: "user-a", Role: dbmysql.RoleMember, JoinedAt: now},
			{ConversationID: 42, UserID: "user-b", Role: dbmysql.RoleMember, JoinedAt: now},
		},
	}

	t.Run("returns existing conversation in either argument order", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 42)

		convs.EXPECT().FindDirectBetween(gomock.Any(), "user-a", "user-b").Return(existing, nil)
		convs.EXPECT().FindDirectBetween(gomock.Any(), "user-b", "user-a").Return(existing, nil)

		first, err := svc.CreateDirect(context.Background(), "user-a", "user-b")
		require.NoError(t, err)
		second, err := svc.CreateDirect(context.Background(), "user-b", "user-a")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.False(t, first.IsGroup)
		assert.Len(t, first.Participants, 2)
	})

	t.Run("creates with both users as members when none exists", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 7)

		convs.EXPECT().
			FindDirectBetween(gomock.Any(), "user-a", "user-b").
			Return(nil, gorm.ErrRecordNotFound)
		convs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, conv *dbmysql.Conversation, participants []dbmysql.ConversationParticipant) error {
				conv.ID = 7
				require.Len(t, participants, 2)
				assert.Equal(t, dbmysql.RoleMember, participants[0].Role)
				assert.Equal(t, dbmysql.RoleMember, participants[1].Role)
				return nil
			})

		dto, err := svc.CreateDirect(context.Background(), "user-a", "user-b")
		require.NoError(t, err)
		assert.Equal(t, uint(7), dto.ID)
		assert.False(t, dto.IsGroup)
	})

	t.Run("rejects empty and self pairs", func(t *testing.T) {
		_, _, _, svc := newConversationServiceMocks(t)

		_, err := svc.CreateDirect(context.Background(), "", "user-b")
		assert.ErrorIs(t, err, common.ErrValidation)

		_, err = svc.CreateDirect(context.Background(), "user-a", "user-a")
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestConversationService_CreateGroup(t *testing.T) {
	t.Run("creator becomes admin exactly once even when listed", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 9)

		convs.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, conv *dbmysql.Conversation, participants []dbmysql.ConversationParticipant) error {
				conv.ID = 9
				require.Len(t, participants, 3)
				assert.Equal(t, "creator", participants[0].UserID)
				assert.Equal(t, dbmysql.RoleAdmin, participants[0].Role)
				for _, p := range participants[1:] {
					assert.Equal(t, dbmysql.RoleMember, p.Role)
					assert.NotEqual(t, "creator", p.UserID)
				}
				return nil
			})

		dto, err := svc.CreateGroup(context.Background(), "creator", "Movie Night", []string{"creator", "user-b", "user-c", "user-b"})
		require.NoError(t, err)
		assert.True(t, dto.IsGroup)
		require.NotNil(t, dto.Title)
		assert.Equal(t, "Movie Night", *dto.Title)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, _, _, svc := newConversationServiceMocks(t)

		_, err := svc.CreateGroup(context.Background(), "creator", "   ", []string{"user-b"})
		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestConversationService_GetByID(t *testing.T) {
	now := time.Now().UTC()
	conv := &dbmysql.Conversation{
		ID:        3,
		CreatedBy: "user-a",
		CreatedAt: now,
		Participants: []dbmysql.ConversationParticipant{
			{ConversationID: 3, UserID: "user-a", Role: dbmysql.RoleMember, JoinedAt: now},
		},
	}

	t.Run("participant sees the conversation", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 3)

		convs.EXPECT().ByID(gomock.Any(), uint(3)).Return(conv, nil)

		dto, err := svc.GetByID(context.Background(), 3, "user-a")
		require.NoError(t, err)
		assert.Equal(t, uint(3), dto.ID)
	})

	t.Run("non-participant gets not found, not forbidden", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().ByID(gomock.Any(), uint(3)).Return(conv, nil)

		_, err := svc.GetByID(context.Background(), 3, "outsider")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("missing conversation", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().ByID(gomock.Any(), uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(context.Background(), 99, "user-a")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestConversationService_AddParticipant(t *testing.T) {
	now := time.Now().UTC()
	admin := &dbmysql.ConversationParticipant{ConversationID: 5, UserID: "admin", Role: dbmysql.RoleAdmin, JoinedAt: now}
	member := &dbmysql.ConversationParticipant{ConversationID: 5, UserID: "member", Role: dbmysql.RoleMember, JoinedAt: now}
	conv := &dbmysql.Conversation{
		ID: 5, IsGroup: true, CreatedBy: "admin", CreatedAt: now,
		Participants: []dbmysql.ConversationParticipant{*admin, *member},
	}

	t.Run("admin adds a new member", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 5)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "admin").Return(admin, nil)
		convs.EXPECT().IsParticipant(gomock.Any(), uint(5), "newbie").Return(false, nil)
		convs.EXPECT().
			AddParticipant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *dbmysql.ConversationParticipant) error {
				assert.Equal(t, "newbie", p.UserID)
				assert.Equal(t, dbmysql.RoleMember, p.Role)
				return nil
			})
		convs.EXPECT().ByID(gomock.Any(), uint(5)).Return(conv, nil)

		_, err := svc.AddParticipant(context.Background(), 5, "newbie", "admin")
		assert.NoError(t, err)
	})

	t.Run("adding an existing participant is a no-op success", func(t *testing.T) {
		convs, messages, users, svc := newConversationServiceMocks(t)
		expectHydrate(convs, messages, users, 5)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "admin").Return(admin, nil)
		convs.EXPECT().IsParticipant(gomock.Any(), uint(5), "member").Return(true, nil)
		convs.EXPECT().ByID(gomock.Any(), uint(5)).Return(conv, nil)

		_, err := svc.AddParticipant(context.Background(), 5, "member", "admin")
		assert.NoError(t, err)
	})

	t.Run("plain member cannot add", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "member").Return(member, nil)

		_, err := svc.AddParticipant(context.Background(), 5, "newbie", "member")
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
	})

	t.Run("outsider cannot add", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "outsider").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddParticipant(context.Background(), 5, "newbie", "outsider")
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
	})
}

func TestConversationService_RemoveParticipant(t *testing.T) {
	now := time.Now().UTC()
	admin := &dbmysql.ConversationParticipant{ConversationID: 5, UserID: "admin", Role: dbmysql.RoleAdmin, JoinedAt: now}

	t.Run("removes an existing member", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "admin").Return(admin, nil)
		convs.EXPECT().RemoveParticipant(gomock.Any(), uint(5), "member").Return(true, nil)

		err := svc.RemoveParticipant(context.Background(), 5, "member", "admin")
		assert.NoError(t, err)
	})

	t.Run("removing a non-member reports not found", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "admin").Return(admin, nil)
		convs.EXPECT().RemoveParticipant(gomock.Any(), uint(5), "ghost").Return(false, nil)

		err := svc.RemoveParticipant(context.Background(), 5, "ghost", "admin")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		convs, _, _, svc := newConversationServiceMocks(t)

		convs.EXPECT().Participant(gomock.Any(), uint(5), "admin").Return(admin, nil)
		convs.EXPECT().RemoveParticipant(gomock.Any(), uint(5), "member").Return(false, errors.New("connection reset"))

		err := svc.RemoveParticipant(context.Background(), 5, "member", "admin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
