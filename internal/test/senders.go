package test

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/semagency/orderbot/internal/worker"
)

// SentMessage is one outbound text captured by SenderStub.
type SentMessage struct {
	ChatID int64
	Text   string
	Markup *tgbotapi.InlineKeyboardMarkup
}

// EditedMessage is one message edit captured by SenderStub.
type EditedMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	Markup    *tgbotapi.InlineKeyboardMarkup
}

// SentFile is one photo or document forward captured by SenderStub.
type SentFile struct {
	ChatID  int64
	FileID  string
	Caption string
}

// SenderStub records outbound transport calls for assertions.
type SenderStub struct {
	mu sync.Mutex

	Sent      []SentMessage
	Edited    []EditedMessage
	Photos    []SentFile
	Documents []SentFile
	Acked     []string
	Err       error
}

// Send records an outbound message.
func (s *SenderStub) Send(ctx context.Context, msg worker.Outbound) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, SentMessage{ChatID: msg.ChatID, Text: msg.Text, Markup: msg.Markup})
	return nil
}

// Edit records a message edit.
func (s *SenderStub) Edit(ctx context.Context, chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Edited = append(s.Edited, EditedMessage{ChatID: chatID, MessageID: messageID, Text: text, Markup: markup})
	return nil
}

// SendPhoto records a photo forward.
func (s *SenderStub) SendPhoto(ctx context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Photos = append(s.Photos, SentFile{ChatID: chatID, FileID: fileID, Caption: caption})
	return nil
}

// SendDocument records a document forward.
func (s *SenderStub) SendDocument(ctx context.Context, chatID int64, fileID, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Documents = append(s.Documents, SentFile{ChatID: chatID, FileID: fileID, Caption: caption})
	return nil
}

// AckCallback records a callback acknowledgement.
func (s *SenderStub) AckCallback(ctx context.Context, callbackID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acked = append(s.Acked, callbackID)
	return nil
}

// SentTo returns recorded messages addressed to one chat.
func (s *SenderStub) SentTo(chatID int64) []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []SentMessage
	for _, m := range s.Sent {
		if m.ChatID == chatID {
			result = append(result, m)
		}
	}
	return result
}

// LastSent returns the most recent recorded message, if any.
func (s *SenderStub) LastSent() (SentMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Sent) == 0 {
		return SentMessage{}, false
	}
	return s.Sent[len(s.Sent)-1], true
}

// MembershipStub reports a fixed channel membership answer.
type MembershipStub struct {
	Member bool
}

// IsMember returns the configured answer.
func (s *MembershipStub) IsMember(ctx context.Context, userID int64) bool {
	return s.Member
}
