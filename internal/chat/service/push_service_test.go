package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"movieplus/internal/chat/service/mocks"
	"movieplus/internal/config"
	"movieplus/internal/dbmysql"
)

func newPushService(t *testing.T) (*mocks.MockDeviceRepository, *mocks.MockPushProvider, PushService) {
	ctrl := gomock.NewController(t)
	devices := mocks.NewMockDeviceRepository(ctrl)
	provider := mocks.NewMockPushProvider(ctrl)

	cfg := &config.Config{}
	cfg.Push.Workers = 1
	cfg.Push.ChannelBufferSize = 8

	svc := NewPushService(cfg, devices, provider, zap.NewNop())
	t.Cleanup(svc.Shutdown)
	return devices, provider, svc
}

func waitFor(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestPushService_SendToMany(t *testing.T) {
	devices, provider, svc := newPushService(t)

	delivered := make(chan struct{})
	devices.EXPECT().
		TokensForMany(gomock.Any(), []string{"user-a", "user-b"}).
		Return([]string{"tok-1", "tok-2"}, nil)
	provider.EXPECT().
		Send(gomock.Any(), []string{"tok-1", "tok-2"}, "New Message", "hello", gomock.Any()).
		DoAndReturn(func(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
			close(delivered)
			return nil, nil
		})

	err := svc.SendToMany(context.Background(), []string{"user-a", "user-b"}, "New Message", "hello", map[string]string{"conversation_id": "10"})
	assert.NoError(t, err)
	waitFor(t, delivered, "push delivery")
}

func TestPushService_PrunesInvalidTokens(t *testing.T) {
	devices, provider, svc := newPushService(t)

	pruned := make(chan struct{})
	devices.EXPECT().
		TokensFor(gomock.Any(), "user-a").
		Return([]string{"tok-live", "tok-stale"}, nil)
	provider.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"tok-stale"}, nil)
	devices.EXPECT().
		DeleteTokens(gomock.Any(), []string{"tok-stale"}).
		DoAndReturn(func(ctx context.Context, tokens []string) error {
			close(pruned)
			return nil
		})

	assert.NoError(t, svc.Send(context.Background(), "user-a", "New Message", "hi", nil))
	waitFor(t, pruned, "stale token pruning")
}

func TestPushService_SkipsUsersWithoutDevices(t *testing.T) {
	devices, _, svc := newPushService(t)

	looked := make(chan struct{})
	devices.EXPECT().
		TokensFor(gomock.Any(), "user-a").
		DoAndReturn(func(ctx context.Context, userID string) ([]string, error) {
			close(looked)
			return nil, nil
		})
	// No provider expectation: zero tokens must short-circuit delivery.

	assert.NoError(t, svc.Send(context.Background(), "user-a", "New Message", "hi", nil))
	waitFor(t, looked, "token lookup")
}

func TestPushService_EmptyRecipientsIsNoop(t *testing.T) {
	_, _, svc := newPushService(t)

	assert.NoError(t, svc.SendToMany(context.Background(), nil, "New Message", "hi", nil))
}

func TestPushService_RegisterToken(t *testing.T) {
	devices, _, svc := newPushService(t)

	platform := "android"

	// Registration steals the token from any prior owner.
	gomock.InOrder(
		devices.EXPECT().DeleteByToken(gomock.Any(), "tok-1"),
		devices.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, device *dbmysql.DeviceToken) error {
				assert.Equal(t, "tok-1", device.Token)
				assert.Equal(t, "user-b", device.UserID)
				return nil
			}),
	)

	assert.NoError(t, svc.RegisterToken(context.Background(), "user-b", "tok-1", &platform))
}

func TestPushService_UnregisterToken(t *testing.T) {
	devices, _, svc := newPushService(t)

	devices.EXPECT().DeleteByToken(gomock.Any(), "tok-1").Return(nil)

	assert.NoError(t, svc.UnregisterToken(context.Background(), "tok-1"))
}
