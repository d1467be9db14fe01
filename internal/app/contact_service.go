package app

import (
	"context"
	"fmt"
	"log"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
	"github.com/SinhaGautam/nothing-server-app/internal/mail"
)

type ContactService struct {
	notifier Notifier
	logger   *log.Logger
	inbox    string
}

// NewContactService wires the contact form to the shared mail dispatcher.
// inbox is the shop-side address contact messages land in.
func NewContactService(notifier Notifier, logger *log.Logger, inbox string) *ContactService {
	if logger == nil {
		logger = log.Default()
	}
	return &ContactService{
		notifier: notifier,
		logger:   logger,
		inbox:    inbox,
	}
}

type ContactInput struct {
	CustomerEmail string
	CustomerName  string
	Message       string
}

func (in ContactInput) validate() error {
	if !emailRX.MatchString(in.CustomerEmail) {
		return domain.ErrEmailRequired
	}
	if in.CustomerName == "" {
		return domain.ErrNameRequired
	}
	if in.Message == "" {
		return domain.ErrMessageRequired
	}
	return nil
}

// Contact queues the message for delivery and returns immediately; delivery
// failures are logged by the dispatcher, not surfaced here.
func (s *ContactService) Contact(_ context.Context, in ContactInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	s.notifier.Dispatch(mail.Message{
		To:      []string{s.inbox},
		Subject: fmt.Sprintf("Contact form: %s", in.CustomerName),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s\n", in.CustomerName, in.CustomerEmail, in.Message),
	})
	s.logger.Printf("contact message queued from=%s", in.CustomerEmail)
	return nil
}
