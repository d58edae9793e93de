package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-contact-notifier/config"
	"go-contact-notifier/internal/domain"
	"go-contact-notifier/pkg/logger"
	"go-contact-notifier/pkg/telegram"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the validation gates. The HTTP layer maps each to its
// specific status code and client-facing message.
var (
	ErrMissingFields  = errors.New("missing required fields: name, email, message")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrNotConfigured  = errors.New("telegram bot not configured")
	ErrInvalidChatID  = errors.New("chat id must be numeric")
	ErrDeliveryFailed = errors.New("telegram delivery failed")
)

// Notifier is the injected delivery capability. Tests substitute a fake so no
// real network call is made.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string, topicID *int64) (*telegram.SendResult, error)
	IsConfigured() bool
}

type contactUsecase struct {
	notifier Notifier
	chatID   string
	topicID  string
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier Notifier, cfg *config.Config, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		chatID:   cfg.ChatID,
		topicID:  cfg.TopicID,
		validate: validate,
	}
}

// SendContactMessage runs the submission pipeline: validate input, validate
// configuration, format, forward. Each gate short-circuits with its sentinel
// error; there is no retry and no state carried between calls.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.Receipt, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}

	if err := uc.validate.Var(email, "contact_email"); err != nil {
		return nil, ErrInvalidEmail
	}

	// Configuration gates. Logged for the operator; the token value itself is
	// never logged.
	if !uc.notifier.IsConfigured() || uc.chatID == "" {
		logger.Log.Error("telegram notifier not configured, set BOT_TOKEN and CHAT_ID")
		return nil, ErrNotConfigured
	}

	chatID, err := strconv.ParseInt(uc.chatID, 10, 64)
	if err != nil {
		logger.Log.Error("CHAT_ID is not numeric", "chat_id", uc.chatID)
		return nil, ErrInvalidChatID
	}

	// Optional forum topic. A malformed TOPIC_ID falls back to the chat's
	// default thread instead of failing the submission.
	var topicID *int64
	if uc.topicID != "" {
		if id, err := strconv.ParseInt(uc.topicID, 10, 64); err == nil {
			topicID = &id
		} else {
			logger.Log.Warn("TOPIC_ID is not numeric, sending to default thread", "topic_id", uc.topicID)
		}
	}

	text := telegram.FormatContactMessage(name, email, strings.TrimSpace(req.Company), message)

	result, err := uc.notifier.Send(ctx, chatID, text, topicID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if !result.Ok {
		return nil, fmt.Errorf("%w: telegram API error %d: %s", ErrDeliveryFailed, result.ErrorCode, result.Description)
	}

	receipt := &domain.Receipt{}
	if result.Result != nil {
		receipt.MessageID = result.Result.MessageID
	}

	logger.Log.Info("telegram notification sent", "message_id", receipt.MessageID, "message_length", len(message))
	return receipt, nil
}
