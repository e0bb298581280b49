package main

import (
	"context"
	"schedule-bot/internal/bot"
	"schedule-bot/internal/models/config"
	"schedule-bot/internal/repository/chat"
	"schedule-bot/internal/repository/subject"
	"schedule-bot/internal/web"
	chat_service "schedule-bot/internal/service/chat"
	schedule_service "schedule-bot/internal/service/schedule"
	database "schedule-bot/pkg"
	"schedule-bot/pkg/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logger.New,
			newDatabase,

			// Репозитории
			subject.NewSubjectRepository,
			chat.NewChatRepository,

			// Сервисы
			schedule_service.NewScheduleService,
			chat_service.NewChatService,

			bot.NewBot,
			web.NewHandler,
			web.NewServer,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(runDatabase, runBot, runHTTP),
	).Run()
}

func newDatabase(cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	return database.New(cfg.Database, log)
}

func runDatabase(lc fx.Lifecycle, db *sqlx.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return database.Migrate(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			log.Info("🗄️ Закрываем соединение с БД")
			return db.Close()
		},
	})
}

func runBot(lc fx.Lifecycle, b *bot.Bot, log *zap.Logger, shutdowner fx.Shutdowner) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// Запускаем бота в горутине
			go func() {
				defer close(done)
				if err := b.Start(ctx); err != nil {
					log.Error("❌ Ошибка запуска бота", zap.Error(err))
					shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Info("🛑 Останавливаем бота...")
			cancel()
			select {
			case <-done:
				log.Info("👋 Корректное завершение работы")
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			return nil
		},
	})
}

func runHTTP(lc fx.Lifecycle, srv *web.Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return srv.Start()
		},
		OnStop: srv.Stop,
	})
}
