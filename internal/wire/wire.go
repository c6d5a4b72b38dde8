//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"movieplus/internal/chat/handler"
	"movieplus/internal/chat/realtime"
	"movieplus/internal/chat/repository"
	"movieplus/internal/chat/service"
	"movieplus/internal/common"
	"movieplus/internal/config"
	"movieplus/internal/dbmysql"
)

func InitializeChatService() (*Application, func(), error) {
	wire.Build(
		config.Load,
		common.NewLogger,
		dbmysql.NewMySQL,
		repository.NewConversationRepository,
		repository.NewMessageRepository,
		repository.NewPresenceRepository,
		repository.NewDeviceRepository,
		repository.NewUserRepository,
		service.NewConversationService,
		service.NewMessageService,
		service.NewPresenceService,
		ProvidePushProvider,
		service.NewPushService,
		realtime.NewHub,
		realtime.NewManager,
		handler.NewChatHandler,
		handler.NewDeviceHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}
