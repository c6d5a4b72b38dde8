package service

import (
	"context"
	"fmt"
	"time"

	"movieplus/internal/chat/repository"
	"movieplus/internal/dbmysql"
)

// PresenceService tracks live connections. A user may hold several
// handles at once; a handle is live until explicitly disconnected, so
// online status is advisory only.
type PresenceService interface {
	Connect(ctx context.Context, userID, connectionHandle string, deviceInfo *string) error
	Disconnect(ctx context.Context, connectionHandle string) error
	ConnectionsFor(ctx context.Context, userID string) ([]string, error)
	IsOnline(ctx context.Context, userID string) (bool, error)
	OnlineStatus(ctx context.Context, userIDs []string) (map[string]bool, error)
	TouchLastSeen(ctx context.Context, userID string) error
}

type presenceService struct {
	connections repository.PresenceRepository
}

func NewPresenceService(connections repository.PresenceRepository) PresenceService {
	return &presenceService{connections: connections}
}

// Connect removes any stale row with the same handle before inserting.
// A collision means an ungraceful close left state behind; the fresh
// registration wins.
func (s *presenceService) Connect(ctx context.Context, userID, connectionHandle string, deviceInfo *string) error {
	if err := s.connections.DeleteByHandle(ctx, connectionHandle); err != nil {
		return fmt.Errorf("clear stale connection: %w", err)
	}
	now := time.Now().UTC()
	conn := &dbmysql.UserConnection{
		ConnectionID: connectionHandle,
		UserID:       userID,
		DeviceInfo:   deviceInfo,
		ConnectedAt:  now,
		LastSeenAt:   now,
	}
	if err := s.connections.Create(ctx, conn); err != nil {
		return fmt.Errorf("register connection: %w", err)
	}
	return nil
}

// Disconnect tolerates an already-absent handle: close signals can race
// and arrive twice.
func (s *presenceService) Disconnect(ctx context.Context, connectionHandle string) error {
	return s.connections.DeleteByHandle(ctx, connectionHandle)
}

func (s *presenceService) ConnectionsFor(ctx context.Context, userID string) ([]string, error) {
	return s.connections.ConnectionsFor(ctx, userID)
}

func (s *presenceService) IsOnline(ctx context.Context, userID string) (bool, error) {
	return s.connections.HasConnections(ctx, userID)
}

// OnlineStatus answers for a batch in one query, for contact and
// conversation list rendering.
func (s *presenceService) OnlineStatus(ctx context.Context, userIDs []string) (map[string]bool, error) {
	online, err := s.connections.OnlineUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("online status: %w", err)
	}
	onlineSet := make(map[string]bool, len(online))
	for _, id := range online {
		onlineSet[id] = true
	}
	status := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		status[id] = onlineSet[id]
	}
	return status, nil
}

func (s *presenceService) TouchLastSeen(ctx context.Context, userID string) error {
	return s.connections.TouchLastSeen(ctx, userID, time.Now().UTC())
}
