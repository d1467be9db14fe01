package app

import (
	"context"
	"log"
	"time"

	"github.com/SinhaGautam/nothing-server-app/internal/clock"
	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

type ShareRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetByID(ctx context.Context, id string) (domain.Order, error)
	AddShareEvent(ctx context.Context, orderID string, platform domain.Platform, at time.Time) error
	MarkShared(ctx context.Context, orderID string) error
}

type ShareService struct {
	repo    ShareRepository
	clock   clock.Clock
	logger  *log.Logger
	baseURL string
}

func NewShareService(repo ShareRepository, clk clock.Clock, logger *log.Logger, baseURL string) *ShareService {
	if logger == nil {
		logger = log.Default()
	}
	return &ShareService{
		repo:    repo,
		clock:   clk,
		logger:  logger,
		baseURL: baseURL,
	}
}

// Share records a share event against the order and returns the platform
// link. The link is built before anything is written so a generation failure
// leaves the order untouched.
func (s *ShareService) Share(ctx context.Context, orderNumber string, platform domain.Platform) (string, error) {
	if orderNumber == "" {
		return "", domain.ErrOrderNotFound
	}

	var shareURL string
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		order, err := s.repo.GetByID(txCtx, orderNumber)
		if err != nil {
			return err
		}

		shareURL = domain.BuildShareURL(s.baseURL, platform, order)
		if shareURL == "" {
			return domain.ErrShareLink
		}

		if err := s.repo.AddShareEvent(txCtx, order.ID, platform, s.clock.Now()); err != nil {
			return err
		}
		return s.repo.MarkShared(txCtx, order.ID)
	})
	if err != nil {
		return "", err
	}

	s.logger.Printf("order shared order_id=%s platform=%s", orderNumber, platform)
	return shareURL, nil
}
