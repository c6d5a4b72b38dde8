package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"movieplus/internal/chat/service/mocks"
	"movieplus/internal/dbmysql"
)

func TestPresenceService_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mocks.NewMockPresenceRepository(ctrl)
	svc := NewPresenceService(connections)

	device := "Mozilla/5.0"

	// A reconnect with the same handle must purge the stale row before
	// inserting, leaving exactly one row per handle.
	gomock.InOrder(
		connections.EXPECT().DeleteByHandle(gomock.Any(), "conn-1"),
		connections.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, conn *dbmysql.UserConnection) error {
				assert.Equal(t, "conn-1", conn.ConnectionID)
				assert.Equal(t, "user-a", conn.UserID)
				require.NotNil(t, conn.DeviceInfo)
				assert.Equal(t, device, *conn.DeviceInfo)
				return nil
			}),
	)

	assert.NoError(t, svc.Connect(context.Background(), "user-a", "conn-1", &device))
}

func TestPresenceService_OnlineStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mocks.NewMockPresenceRepository(ctrl)
	svc := NewPresenceService(connections)

	connections.EXPECT().
		OnlineUserIDs(gomock.Any(), []string{"user-a", "user-b", "user-c"}).
		Return([]string{"user-b"}, nil)

	status, err := svc.OnlineStatus(context.Background(), []string{"user-a", "user-b", "user-c"})
	require.NoError(t, err)

	// Every requested id gets an answer, offline included.
	assert.Equal(t, map[string]bool{
		"user-a": false,
		"user-b": true,
		"user-c": false,
	}, status)
}

func TestPresenceService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	connections := mocks.NewMockPresenceRepository(ctrl)
	svc := NewPresenceService(connections)

	connections.EXPECT().DeleteByHandle(gomock.Any(), "conn-gone").Return(nil)

	// Disconnecting an unknown handle succeeds; close signals can race.
	assert.NoError(t, svc.Disconnect(context.Background(), "conn-gone"))
}
