package wire

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"movieplus/internal/chat/handler"
	"movieplus/internal/chat/realtime"
	"movieplus/internal/chat/service"
	"movieplus/internal/config"
)

type Application struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	Hub           *realtime.Hub
	Manager       *realtime.Manager
	ChatHandler   *handler.ChatHandler
	DeviceHandler *handler.DeviceHandler
	Push          service.PushService
}

// ProvidePushProvider builds the FCM provider (or the no-op one when
// Firebase is disabled).
func ProvidePushProvider(cfg *config.Config, logger *zap.Logger) (service.PushProvider, error) {
	return service.NewFCMProvider(context.Background(), cfg, logger)
}
