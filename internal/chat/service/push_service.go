package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"movieplus/internal/chat/repository"
	"movieplus/internal/config"
	"movieplus/internal/dbmysql"
	"movieplus/internal/metrics"
)

// PushProvider is the external push boundary. Send delivers one payload
// to a token batch and reports tokens the provider considers dead.
type PushProvider interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (invalid []string, err error)
}

// PushService is the best-effort side channel. Delivery runs on a
// worker pool so a slow provider never delays the messaging flow;
// failures are logged and swallowed.
type PushService interface {
	Send(ctx context.Context, userID, title, body string, data map[string]string) error
	SendToMany(ctx context.Context, userIDs []string, title, body string, data map[string]string) error
	RegisterToken(ctx context.Context, userID, token string, platform *string) error
	UnregisterToken(ctx context.Context, token string) error
	Shutdown()
}

type pushJob struct {
	userIDs []string
	title   string
	body    string
	data    map[string]string
}

type pushService struct {
	devices  repository.DeviceRepository
	provider PushProvider
	logger   *zap.Logger

	jobs   chan pushJob
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPushService(
	cfg *config.Config,
	devices repository.DeviceRepository,
	provider PushProvider,
	logger *zap.Logger,
) PushService {
	ctx, cancel := context.WithCancel(context.Background())

	s := &pushService{
		devices:  devices,
		provider: provider,
		logger:   logger,
		jobs:     make(chan pushJob, cfg.Push.ChannelBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	workers := cfg.Push.Workers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.processJobs()
	}

	return s
}

func (s *pushService) Send(ctx context.Context, userID, title, body string, data map[string]string) error {
	return s.SendToMany(ctx, []string{userID}, title, body, data)
}

// SendToMany enqueues one delivery for the whole recipient set. A full
// queue drops the event rather than blocking the caller.
func (s *pushService) SendToMany(ctx context.Context, userIDs []string, title, body string, data map[string]string) error {
	if len(userIDs) == 0 {
		return nil
	}
	job := pushJob{userIDs: userIDs, title: title, body: body, data: data}
	select {
	case s.jobs <- job:
		metrics.PushQueued.Inc()
	case <-s.ctx.Done():
	default:
		metrics.PushDropped.Inc()
		s.logger.Warn("push queue full, dropping event", zap.Int("recipients", len(userIDs)))
	}
	return nil
}

// RegisterToken steals the token from any prior owner: tokens are
// provider-issued and globally unique.
func (s *pushService) RegisterToken(ctx context.Context, userID, token string, platform *string) error {
	if err := s.devices.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("clear prior token owner: %w", err)
	}
	device := &dbmysql.DeviceToken{
		Token:     token,
		UserID:    userID,
		Platform:  platform,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.devices.Create(ctx, device); err != nil {
		return fmt.Errorf("register token: %w", err)
	}
	return nil
}

func (s *pushService) UnregisterToken(ctx context.Context, token string) error {
	return s.devices.DeleteByToken(ctx, token)
}

func (s *pushService) processJobs() {
	defer s.wg.Done()

	for {
		select {
		case job := <-s.jobs:
			s.deliver(job)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *pushService) deliver(job pushJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var tokens []string
	var err error
	if len(job.userIDs) == 1 {
		tokens, err = s.devices.TokensFor(ctx, job.userIDs[0])
	} else {
		tokens, err = s.devices.TokensForMany(ctx, job.userIDs)
	}
	if err != nil {
		s.logger.Error("push token lookup failed", zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		// Users with no registered devices are silently skipped.
		return
	}

	invalid, err := s.provider.Send(ctx, tokens, job.title, job.body, job.data)
	if err != nil {
		metrics.PushFailed.Inc()
		s.logger.Warn("push delivery failed", zap.Int("tokens", len(tokens)), zap.Error(err))
		return
	}
	metrics.PushSent.Add(float64(len(tokens) - len(invalid)))

	if len(invalid) > 0 {
		if err := s.devices.DeleteTokens(ctx, invalid); err != nil {
			s.logger.Warn("stale token cleanup failed", zap.Int("tokens", len(invalid)), zap.Error(err))
		} else {
			s.logger.Info("pruned stale device tokens", zap.Int("tokens", len(invalid)))
		}
	}
}

func (s *pushService) Shutdown() {
	s.cancel()
	s.wg.Wait()
	s.logger.Info("push service shutdown complete")
}
