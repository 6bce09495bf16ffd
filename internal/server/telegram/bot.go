package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/semagency/orderbot/internal/worker"

	domainErrors "github.com/semagency/orderbot/internal/domain/errors"
)

// Sender is the outbound surface of the chat transport used by the handler
// and the notification worker.
type Sender interface {
	Send(ctx context.Context, msg worker.Outbound) error
	Edit(ctx context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error
	SendPhoto(ctx context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error
	SendDocument(ctx context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error
	AckCallback(ctx context.Context, callbackID string) error
}

// MembershipChecker reports whether a user belongs to the required channel.
type MembershipChecker interface {
	IsMember(ctx context.Context, userID int64) bool
}

// Bot wraps the Telegram Bot API client.
type Bot struct {
	api             *tgbotapi.BotAPI
	requiredChannel string
	logger          *slog.Logger
}

// NewBot authorizes against the Telegram API.
func NewBot(token, requiredChannel string, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, requiredChannel: requiredChannel, logger: logger}, nil
}

// API exposes the underlying client for the update poller.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Send posts a markdown text message with an optional inline keyboard.
func (b *Bot) Send(_ context.Context, msg worker.Outbound) error {
	m := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	m.ParseMode = tgbotapi.ModeMarkdown
	if msg.Markup != nil {
		m.ReplyMarkup = *msg.Markup
	}
	if _, err := b.api.Send(m); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrNotification, err)
	}
	return nil
}

// Edit replaces the text and keyboard of a previously sent message.
func (b *Bot) Edit(_ context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.ReplyMarkup = markup
	_, err := b.api.Send(edit)
	return err
}

// SendPhoto forwards an already uploaded photo by its file id.
func (b *Bot) SendPhoto(_ context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	if markup != nil {
		photo.ReplyMarkup = *markup
	}
	_, err := b.api.Send(photo)
	return err
}

// SendDocument forwards an already uploaded document by its file id.
func (b *Bot) SendDocument(_ context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileID(fileID))
	doc.Caption = caption
	if markup != nil {
		doc.ReplyMarkup = *markup
	}
	_, err := b.api.Send(doc)
	return err
}

// AckCallback answers a callback query so the client stops its spinner.
func (b *Bot) AckCallback(_ context.Context, callbackID string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// IsMember checks channel membership, fail-closed: any error counts as not a
// member. An empty channel configuration disables the gate.
func (b *Bot) IsMember(_ context.Context, userID int64) bool {
	if b.requiredChannel == "" {
		return true
	}
	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: b.requiredChannel,
			UserID:             userID,
		},
	})
	if err != nil {
		b.logger.Error("membership check failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return false
	}
	switch member.Status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}
