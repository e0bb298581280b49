package bot

import (
	"schedule-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const cancelButton = "❌ Отмена"

func createGroupsKeyboard(groups []models.Group) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton

	for _, group := range groups {
		btn := tgbotapi.NewKeyboardButton(group.String())
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(btn))
	}

	// Кнопка отмены
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(cancelButton)))

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	return keyboard
}
