package bot

import (
	"context"
	"errors"
	"schedule-bot/internal/models"
	"schedule-bot/internal/service"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// Тексты ответов
const (
	textSomethingWrong = "Something went wrong"
	textNoGroup        = "Please configure your group with `/config <group>`"
	textNotFound       = "No such subject is found."
	textTooManyArgs    = "Only 2 arguments allowed!"
	textChooseGroup    = "Choose your group:"
	textCancelled      = "Cancelled."
)

// errTooManyArgs - у /subject больше двух аргументов
var errTooManyArgs = errors.New("too many arguments")

// Обработка сообщения здесь
func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	b.log.Debug("message", zap.Int64("chat_id", chatID), zap.String("text", message.Text))

	// Сначала активная сессия, потом команды
	if b.sessionState(chatID) == StateSelectingGroup && !message.IsCommand() {
		b.handleGroupSelection(ctx, chatID, message.Text)
		return
	}

	if !message.IsCommand() {
		return
	}

	// Любая команда прерывает выбор группы
	b.resetSession(chatID)

	switch message.Command() {
	case "start", "help":
		b.sendMessage(chatID, helpText())
	case "config":
		b.handleConfigCommand(ctx, chatID, strings.TrimSpace(message.CommandArguments()))
	case "subject":
		b.handleSubjectCommand(ctx, chatID, messageTime(message), message.CommandArguments())
	default:
		b.sendMessage(chatID, helpText())
	}
}

func (b *Bot) handleConfigCommand(ctx context.Context, chatID int64, token string) {
	b.resetSession(chatID)

	if token == "" {
		b.setState(chatID, StateSelectingGroup)
		msg := tgbotapi.NewMessage(chatID, textChooseGroup)
		msg.ReplyMarkup = createGroupsKeyboard(models.Groups())
		b.send(msg)
		return
	}

	b.configureGroup(ctx, chatID, token)
}

func (b *Bot) handleGroupSelection(ctx context.Context, chatID int64, text string) {
	b.resetSession(chatID)

	if text == cancelButton {
		msg := tgbotapi.NewMessage(chatID, textCancelled)
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		b.send(msg)
		return
	}

	b.configureGroup(ctx, chatID, strings.TrimSpace(text))
}

func (b *Bot) configureGroup(ctx context.Context, chatID int64, token string) {
	b.log.Debug("/config", zap.Int64("chat_id", chatID), zap.String("group", token))

	group, err := b.ChatService.ConfigureGroup(ctx, chatID, token)
	if err != nil {
		b.handleError(chatID, "failed to configure group", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Group set: "+group.String()+".")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.send(msg)
}

func (b *Bot) handleSubjectCommand(ctx context.Context, chatID int64, now time.Time, args string) {
	slot, date, err := parseSubjectArgs(args)
	if err != nil {
		b.handleError(chatID, "bad /subject arguments", err)
		return
	}
	b.log.Debug("/subject", zap.Int64("chat_id", chatID), zap.String("slot", slot), zap.String("date", date))

	answer, err := b.ScheduleService.SubjectsForChat(ctx, chatID, service.Query{Now: now, Slot: slot, Date: date})
	if err != nil {
		b.handleError(chatID, "failed to get subjects", err)
		return
	}

	if len(answer.Subjects) == 0 {
		b.sendMessage(chatID, textNotFound)
		return
	}

	msg := tgbotapi.NewMessage(chatID, renderSubjects(answer.Views()))
	msg.ParseMode = parseModeMarkdownV2
	b.send(msg)
}

// parseSubjectArgs: "", "<slot>", "<slot> <date>", "_ <date>"
func parseSubjectArgs(args string) (slot, date string, err error) {
	tokens := strings.Fields(args)
	switch len(tokens) {
	case 0:
		return "", "", nil
	case 1:
		return tokens[0], "", nil
	case 2:
		if tokens[0] == "_" {
			return "", tokens[1], nil
		}
		return tokens[0], tokens[1], nil
	}
	return "", "", errTooManyArgs
}

// handleError переводит ошибку в ответ пользователю.
// Ошибки ввода не логируются как сбой.
func (b *Bot) handleError(chatID int64, op string, err error) {
	var inputErr *service.InputError

	switch {
	case errors.As(err, &inputErr):
		b.log.Debug(op, zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, inputErr.Message())
	case errors.Is(err, service.ErrNoGroupConfigured):
		b.sendMessage(chatID, textNoGroup)
	case errors.Is(err, errTooManyArgs):
		b.sendMessage(chatID, textTooManyArgs)
	default:
		b.log.Error(op, zap.Int64("chat_id", chatID), zap.Error(err))
		b.sendMessage(chatID, textSomethingWrong)
	}
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, c := range commands {
		sb.WriteString("/" + c.Command + " " + c.Description + "\n")
	}
	return sb.String()
}

// messageTime - время отправки сообщения, а не обработки
func messageTime(message *tgbotapi.Message) time.Time {
	if message.Date == 0 {
		return time.Now()
	}
	return time.Unix(int64(message.Date), 0)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		b.log.Warn("failed to send message", zap.Error(err))
	}
}
