package wa

import (
	"context"
	"fmt"

	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

type textSender interface {
	SendText(ctx context.Context, to types.JID, text string) error
}

// Sender delivers reminders to a single chat.
type Sender struct {
	svc textSender
	to  types.JID
}

func NewSender(svc textSender, jid string) (*Sender, error) {
	to, err := types.ParseJID(jid)
	if err != nil {
		return nil, fmt.Errorf("invalid owner jid %q: %w", jid, err)
	}
	if to.User == "" {
		return nil, fmt.Errorf("invalid owner jid %q: missing user", jid)
	}
	return &Sender{svc: svc, to: to}, nil
}

func (s *Sender) Send(ctx context.Context, text string) error {
	return s.svc.SendText(ctx, s.to, text)
}

// Owner reports whether a chat or sender belongs to the reminder recipient.
func (s *Sender) Owner(jid types.JID) bool {
	return jid.User == s.to.User
}

// MessageText extracts the plain text of an inbound message.
func MessageText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Conversation != nil {
		return *msg.Conversation
	}
	if msg.ExtendedTextMessage != nil && msg.ExtendedTextMessage.Text != nil {
		return *msg.ExtendedTextMessage.Text
	}
	return ""
}

// Accept decides whether an inbound event is a command for this bot.
func Accept(evt *events.Message, groupID string, owner *Sender) bool {
	if evt.Info.IsFromMe {
		return false
	}
	if groupID != "" {
		return evt.Info.Chat.String() == groupID
	}
	if owner != nil {
		return owner.Owner(evt.Info.Chat) || owner.Owner(evt.Info.Sender)
	}
	return true
}
