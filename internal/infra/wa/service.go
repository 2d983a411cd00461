package wa

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"
)

var ErrNotConnected = errors.New("whatsapp client not connected")

type MessageHandler func(ctx context.Context, evt *events.Message)

// Service owns the whatsmeow client. The device session lives in the same
// SQLite file as the habit records.
type Service struct {
	client     *whatsmeow.Client
	dbPath     string
	log        walog.Logger
	onMessage  MessageHandler
	handlerCtx context.Context
}

func NewService(dbPath string, logger walog.Logger) *Service {
	return &Service{
		dbPath:     dbPath,
		log:        logger,
		handlerCtx: context.Background(),
	}
}

func (s *Service) Initialize(ctx context.Context) error {
	dbAddress := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", s.dbPath)
	container, err := sqlstore.New(ctx, "sqlite", dbAddress, s.log.Sub("Database"))
	if err != nil {
		return fmt.Errorf("failed to initialize device store: %w", err)
	}

	devices, err := container.GetAllDevices(ctx)
	if err != nil {
		return fmt.Errorf("failed to get devices: %w", err)
	}

	var device *store.Device
	if len(devices) > 0 {
		device = devices[0]
	} else {
		device = container.NewDevice()
	}

	s.client = whatsmeow.NewClient(device, s.log.Sub("Client"))
	s.client.AddEventHandler(s.handleEvent)
	return nil
}

// OnMessage registers the inbound message handler. Handlers run on their own
// goroutine with ctx as parent.
func (s *Service) OnMessage(ctx context.Context, handler MessageHandler) {
	s.handlerCtx = ctx
	s.onMessage = handler
}

func (s *Service) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		if s.onMessage != nil {
			go s.onMessage(s.handlerCtx, v)
		}
	case *events.Connected:
		s.log.Infof("Connected to WhatsApp")
	case *events.Disconnected:
		s.log.Warnf("Disconnected from WhatsApp")
	}
}

func (s *Service) Connect() error {
	if s.client == nil {
		return fmt.Errorf("client not initialized")
	}
	if s.client.IsConnected() {
		return nil
	}
	return s.client.Connect()
}

func (s *Service) Disconnect() {
	if s.client != nil {
		s.client.Disconnect()
	}
}

func (s *Service) IsLoggedIn() bool {
	return s.client != nil && s.client.Store.ID != nil
}

func (s *Service) Pair(ctx context.Context, phone string) (string, error) {
	if s.IsLoggedIn() {
		return "", fmt.Errorf("already logged in")
	}
	if !s.client.IsConnected() {
		return "", ErrNotConnected
	}
	return s.client.PairPhone(ctx, phone, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
}

// PrintQR connects and renders login QR codes until the login flow ends.
func (s *Service) PrintQR(ctx context.Context) error {
	if s.IsLoggedIn() {
		return nil
	}
	qrChan, err := s.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to get QR channel: %w", err)
	}
	if err := s.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect for QR: %w", err)
	}
	for evt := range qrChan {
		if evt.Event == "code" {
			fmt.Println("QR Code:", evt.Code)
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
		} else {
			s.log.Infof("Login event: %s", evt.Event)
		}
	}
	return nil
}

func (s *Service) SendText(ctx context.Context, to types.JID, text string) error {
	if s.client == nil || !s.client.IsConnected() {
		return ErrNotConnected
	}
	_, err := s.client.SendMessage(ctx, to, &waE2E.Message{Conversation: &text})
	return err
}

// SetTyping shows or clears the composing indicator in a chat.
func (s *Service) SetTyping(ctx context.Context, chat types.JID, typing bool) {
	if s.client == nil {
		return
	}
	state := types.ChatPresencePaused
	if typing {
		state = types.ChatPresenceComposing
	}
	_ = s.client.SendChatPresence(ctx, chat, state, types.ChatPresenceMediaText)
}
