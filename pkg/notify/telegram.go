// Package notify posts run summaries to a Telegram chat.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dskvich/location-images/pkg/render"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type messageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Telegram struct {
	sender messageSender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("telegram token cannot be empty")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id cannot be empty")
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &Telegram{sender: b, chatID: chatID}, nil
}

// Notify sends markdown rendered as Telegram HTML.
func (t *Telegram) Notify(ctx context.Context, markdown string) error {
	msg, err := t.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      render.ToHTML(markdown),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("sending summary to chat %d: %w", t.chatID, err)
	}

	slog.InfoContext(ctx, "Summary sent", "chatID", t.chatID, "messageID", msg.ID)
	return nil
}
