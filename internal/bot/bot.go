package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"schedule-bot/internal/models/config"
	"schedule-bot/internal/service"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// sender - то, что нужно боту от Telegram API
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api             *tgbotapi.BotAPI
	sender          sender
	ScheduleService service.ScheduleService
	ChatService     service.ChatService
	log             *zap.Logger

	userSessions map[int64]*UserSession // chatID -> session
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewBot(
	cfg *config.Config,
	scheduleService service.ScheduleService,
	chatService service.ChatService,
	log *zap.Logger,
) (*Bot, error) {
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Bot.Debug

	log.Info("🤖 Бот инициализирован",
		zap.String("username", api.Self.UserName),
		zap.Bool("debug", cfg.Bot.Debug),
	)

	b := newBot(api, scheduleService, chatService, log)
	b.api = api
	return b, nil
}

func newBot(s sender, scheduleService service.ScheduleService, chatService service.ChatService, log *zap.Logger) *Bot {
	return &Bot{
		sender:          s,
		ScheduleService: scheduleService,
		ChatService:     chatService,
		log:             log,
		userSessions:    make(map[int64]*UserSession),
	}
}

// Start читает обновления, пока ctx не отменён. Каждое сообщение
// обрабатывается в своей горутине.
func (b *Bot) Start(ctx context.Context) error {
	b.log.Info("Авторизован", zap.String("username", b.api.Self.UserName))

	if err := b.registerCommands(); err != nil {
		// без меню команд бот всё равно работает
		b.log.Warn("failed to set bot commands", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			return nil
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return nil
			}
			if update.Message == nil {
				continue
			}

			b.wg.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleMessage(ctx, message)
			}(update.Message)
		}
	}
}

type botCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

var commands = []botCommand{
	{Command: "subject", Description: "[slot] [date] - what is on now, or in a given slot/date"},
	{Command: "config", Description: "<group> - bind this chat to a group"},
	{Command: "help", Description: "show available commands"},
}

// registerCommands - setMyCommands, в v4 библиотеки обёртки нет
func (b *Bot) registerCommands() error {
	payload, err := json.Marshal(commands)
	if err != nil {
		return err
	}
	_, err = b.api.MakeRequest("setMyCommands", url.Values{"commands": {string(payload)}})
	return err
}
