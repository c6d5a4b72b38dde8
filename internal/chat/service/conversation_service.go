package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"movieplus/internal/chat/repository"
	"movieplus/internal/common"
	"movieplus/internal/dbmysql"
)

// ConversationService owns conversation and participant records. Its
// IsParticipant check is the sole authorization primitive for every
// conversation-scoped action.
type ConversationService interface {
	CreateDirect(ctx context.Context, userA, userB string) (*ConversationDTO, error)
	CreateGroup(ctx context.Context, creator, title string, participantIDs []string) (*ConversationDTO, error)
	GetByID(ctx context.Context, conversationID uint, userID string) (*ConversationDTO, error)
	ListForUser(ctx context.Context, userID string) ([]*ConversationDTO, error)
	IsParticipant(ctx context.Context, conversationID uint, userID string) (bool, error)
	ConversationIDsForUser(ctx context.Context, userID string) ([]uint, error)
	ParticipantIDs(ctx context.Context, conversationID uint) ([]string, error)
	AddParticipant(ctx context.Context, conversationID uint, userID, requestedBy string) (*ConversationDTO, error)
	RemoveParticipant(ctx context.Context, conversationID uint, userID, requestedBy string) error
}

type conversationService struct {
	convs    repository.ConversationRepository
	messages repository.MessageRepository
	users    repository.UserRepository
}

func NewConversationService(
	convs repository.ConversationRepository,
	messages repository.MessageRepository,
	users repository.UserRepository,
) ConversationService {
	return &conversationService{convs: convs, messages: messages, users: users}
}

// CreateDirect returns the existing 1:1 conversation between the pair if
// one exists, matching on the participant set regardless of argument
// order, and creates one otherwise. Both users get role member.
func (s *conversationService) CreateDirect(ctx context.Context, userA, userB string) (*ConversationDTO, error) {
	if userA == "" || userB == "" {
		return nil, common.ValidationError("both user ids are required")
	}
	if userA == userB {
		return nil, common.ValidationError("cannot open a conversation with yourself")
	}

	existing, err := s.convs.FindDirectBetween(ctx, userA, userB)
	if err == nil {
		return s.hydrate(ctx, existing, userA)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup direct conversation: %w", err)
	}

	now := time.Now().UTC()
	conv := &dbmysql.Conversation{
		IsGroup:   false,
		CreatedBy: userA,
		CreatedAt: now,
	}
	participants := []dbmysql.ConversationParticipant{
		{UserID: userA, Role: dbmysql.RoleMember, JoinedAt: now},
		{UserID: userB, Role: dbmysql.RoleMember, JoinedAt: now},
	}
	if err := s.convs.Create(ctx, conv, participants); err != nil {
		return nil, fmt.Errorf("create direct conversation: %w", err)
	}
	conv.Participants = participants
	return s.hydrate(ctx, conv, userA)
}

// CreateGroup creates a group conversation. The creator always ends up
// as an admin participant exactly once, whether or not they listed
// themselves.
func (s *conversationService) CreateGroup(ctx context.Context, creator, title string, participantIDs []string) (*ConversationDTO, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ValidationError("group title is required")
	}

	now := time.Now().UTC()
	participants := []dbmysql.ConversationParticipant{
		{UserID: creator, Role: dbmysql.RoleAdmin, JoinedAt: now},
	}
	seen := map[string]bool{creator: true}
	for _, id := range participantIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		participants = append(participants, dbmysql.ConversationParticipant{
			UserID: id, Role: dbmysql.RoleMember, JoinedAt: now,
		})
	}

	conv := &dbmysql.Conversation{
		IsGroup:   true,
		Title:     &title,
		CreatedBy: creator,
		CreatedAt: now,
	}
	if err := s.convs.Create(ctx, conv, participants); err != nil {
		return nil, fmt.Errorf("create group conversation: %w", err)
	}
	conv.Participants = participants
	return s.hydrate(ctx, conv, creator)
}

// GetByID returns the conversation only when the caller participates in
// it. A miss and a non-participant look the same to the caller.
func (s *conversationService) GetByID(ctx context.Context, conversationID uint, userID string) (*ConversationDTO, error) {
	conv, err := s.convs.ByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}
	member := false
	for _, p := range conv.Participants {
		if p.UserID == userID {
			member = true
			break
		}
	}
	if !member {
		return nil, common.ErrNotFound
	}
	return s.hydrate(ctx, conv, userID)
}

func (s *conversationService) ListForUser(ctx context.Context, userID string) ([]*ConversationDTO, error) {
	convs, err := s.convs.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	dtos := make([]*ConversationDTO, 0, len(convs))
	for _, conv := range convs {
		dto, err := s.hydrate(ctx, conv, userID)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *conversationService) IsParticipant(ctx context.Context, conversationID uint, userID string) (bool, error) {
	return s.convs.IsParticipant(ctx, conversationID, userID)
}

func (s *conversationService) ConversationIDsForUser(ctx context.Context, userID string) ([]uint, error) {
	return s.convs.ConversationIDsForUser(ctx, userID)
}

func (s *conversationService) ParticipantIDs(ctx context.Context, conversationID uint) ([]string, error) {
	return s.convs.ParticipantIDs(ctx, conversationID)
}

// AddParticipant requires admin or owner role from the requester.
// Adding someone who is already a participant is a no-op success.
func (s *conversationService) AddParticipant(ctx context.Context, conversationID uint, userID, requestedBy string) (*ConversationDTO, error) {
	if err := s.requireManager(ctx, conversationID, requestedBy); err != nil {
		return nil, err
	}

	already, err := s.convs.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, fmt.Errorf("check participant: %w", err)
	}
	if !already {
		participant := &dbmysql.ConversationParticipant{
			ConversationID: conversationID,
			UserID:         userID,
			Role:           dbmysql.RoleMember,
			JoinedAt:       time.Now().UTC(),
		}
		if err := s.convs.AddParticipant(ctx, participant); err != nil {
			return nil, fmt.Errorf("add participant: %w", err)
		}
	}

	conv, err := s.convs.ByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}
	return s.hydrate(ctx, conv, requestedBy)
}

func (s *conversationService) RemoveParticipant(ctx context.Context, conversationID uint, userID, requestedBy string) error {
	if err := s.requireManager(ctx, conversationID, requestedBy); err != nil {
		return err
	}

	removed, err := s.convs.RemoveParticipant(ctx, conversationID, userID)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if !removed {
		return common.ErrNotFound
	}
	return nil
}

func (s *conversationService) requireManager(ctx context.Context, conversationID uint, userID string) error {
	participant, err := s.convs.Participant(ctx, conversationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPermissionDenied
		}
		return fmt.Errorf("fetch participant: %w", err)
	}
	if !participant.CanManageParticipants() {
		return common.ErrPermissionDenied
	}
	return nil
}

// hydrate attaches participant names, the caller's unread count, and the
// newest message preview.
func (s *conversationService) hydrate(ctx context.Context, conv *dbmysql.Conversation, forUser string) (*ConversationDTO, error) {
	ids := make([]string, 0, len(conv.Participants))
	for _, p := range conv.Participants {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.ByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate participants: %w", err)
	}

	dto := &ConversationDTO{
		ID:            conv.ID,
		IsGroup:       conv.IsGroup,
		Title:         conv.Title,
		CreatedBy:     conv.CreatedBy,
		CreatedAt:     conv.CreatedAt,
		LastMessageAt: conv.LastMessageAt,
		Participants:  make([]ParticipantDTO, 0, len(conv.Participants)),
	}
	for _, p := range conv.Participants {
		pd := ParticipantDTO{UserID: p.UserID, Role: p.Role, JoinedAt: p.JoinedAt}
		if u, ok := users[p.UserID]; ok {
			pd.UserName = u.Name()
			pd.UserAvatar = u.AvatarURL
		}
		dto.Participants = append(dto.Participants, pd)
	}

	unread, err := s.messages.UnreadCount(ctx, conv.ID, forUser)
	if err != nil {
		return nil, fmt.Errorf("unread count: %w", err)
	}
	dto.UnreadCount = unread

	last, err := s.messages.LastMessage(ctx, conv.ID)
	if err == nil {
		sender := users[last.SenderID]
		dto.LastMessage = messageToDTO(last, forUser, sender)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("last message: %w", err)
	}

	return dto, nil
}
