package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

// NotifyService pushes operational notifications to the staff channel.
type NotifyService interface {
	ClientCreated(client *models.Client) error
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier connects the bot and targets the configured staff chat.
func NewTelegramNotifier(botToken string, chatID int64) (NotifyService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *telegramNotifier) ClientCreated(client *models.Client) error {
	text := fmt.Sprintf("New client registered: %s (phone %s, %s)",
		client.Name, client.PhoneNumber, client.Address.Street)
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
