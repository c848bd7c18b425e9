package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"sakeenah/internal/domain"
)

// WishNotifier sends the couple an email for every stored wish.
type WishNotifier struct {
	Email   domain.EmailService
	Address string
}

type wishService struct {
	invitationRepo domain.InvitationRepository
	wishRepo       domain.WishRepository
	notifier       *WishNotifier
	logger         *slog.Logger
}

// NewWishService creates the database-backed WishService. notifier may be nil.
func NewWishService(
	invitationRepo domain.InvitationRepository,
	wishRepo domain.WishRepository,
	notifier *WishNotifier,
	logger *slog.Logger,
) domain.WishService {
	return &wishService{
		invitationRepo: invitationRepo,
		wishRepo:       wishRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *wishService) ListWishes(ctx context.Context, uid string, params domain.PaginationParams) ([]*domain.Wish, int, error) {
	if _, err := s.invitation(ctx, uid); err != nil {
		return nil, 0, err
	}
	wishes, err := s.wishRepo.ListByInvitation(ctx, uid, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list wishes: %w", err)
	}
	total, err := s.wishRepo.CountByInvitation(ctx, uid)
	if err != nil {
		return nil, 0, fmt.Errorf("count wishes: %w", err)
	}
	if wishes == nil {
		wishes = []*domain.Wish{}
	}
	return wishes, total, nil
}

func (s *wishService) CreateWish(ctx context.Context, uid string, in domain.NewWishInput) (*domain.Wish, error) {
	name, message, attendance, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	inv, err := s.invitation(ctx, uid)
	if err != nil {
		return nil, err
	}
	wish := &domain.Wish{Name: name, Message: message, Attendance: attendance}
	if err := s.wishRepo.Create(ctx, uid, wish); err != nil {
		return nil, fmt.Errorf("create wish: %w", err)
	}
	s.notifier.Notify(ctx, s.logger, inv, wish)
	return wish, nil
}

func (s *wishService) DeleteWish(ctx context.Context, uid, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	if err := s.wishRepo.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete wish: %w", err)
	}
	return nil
}

func (s *wishService) Stats(ctx context.Context, uid string) (*domain.WishStats, error) {
	stats, err := s.wishRepo.Stats(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("wish stats: %w", err)
	}
	return stats, nil
}

func (s *wishService) invitation(ctx context.Context, uid string) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// Notify emails the couple about wish. It is best effort: failures are
// logged and never returned. A nil notifier does nothing.
func (n *WishNotifier) Notify(ctx context.Context, logger *slog.Logger, inv *domain.Invitation, wish *domain.Wish) {
	if n == nil || n.Email == nil || n.Address == "" {
		return
	}
	err := n.Email.SendWishReceived(ctx, &domain.WishReceivedEmailData{
		Email:      n.Address,
		Title:      inv.Title,
		GuestName:  wish.Name,
		Message:    wish.Message,
		Attendance: wish.Attendance,
	})
	if err != nil {
		logger.WarnContext(ctx, "wish notification failed", "uid", inv.UID, "err", err)
	}
}
