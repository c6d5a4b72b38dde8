package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"movieplus/internal/config"
)

// fcmProvider delivers through Firebase Cloud Messaging.
type fcmProvider struct {
	client *messaging.Client
}

// NewFCMProvider builds the FCM-backed push provider. When Firebase is
// disabled in config, a no-op provider is returned so the rest of the
// messaging flow is unaffected.
func NewFCMProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (PushProvider, error) {
	if !cfg.Firebase.Enabled {
		logger.Info("firebase disabled, push delivery is a no-op")
		return &noopProvider{logger: logger}, nil
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsFilePath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFilePath))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}

	return &fcmProvider{client: client}, nil
}

func (p *fcmProvider) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
	msg := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:   data,
		Tokens: tokens,
	}

	response, err := p.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, err
	}

	var invalid []string
	for i, result := range response.Responses {
		if result.Success || i >= len(tokens) {
			continue
		}
		if messaging.IsUnregistered(result.Error) {
			invalid = append(invalid, tokens[i])
		}
	}
	return invalid, nil
}

type noopProvider struct {
	logger *zap.Logger
}

func (p *noopProvider) Send(_ context.Context, tokens []string, title, _ string, _ map[string]string) ([]string, error) {
	p.logger.Debug("push skipped", zap.Int("tokens", len(tokens)), zap.String("title", title))
	return nil, nil
}
