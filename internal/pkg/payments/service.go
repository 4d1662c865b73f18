package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/roster"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyPaid is returned when a registration has already been
	// paid for. Retrying a paid registration must not charge again.
	ErrAlreadyPaid = errors.New("registration is already paid")

	// ErrIncompleteRoster is returned when the picked players do not
	// form a full roster.
	ErrIncompleteRoster = fmt.Errorf("roster must contain exactly %d players", roster.Size)
)

// Gateway executes a card charge against the payment provider.
type Gateway interface {
	Charge(ctx context.Context, in GatewayCharge) (*GatewayResult, error)
}

// ChargeInput describes one entry fee charge for an event registration.
type ChargeInput struct {
	UserID     uint
	SourceID   string
	LocationID string
	PostalCode string
	Metadata   models.PaymentMetadata
}

// Service runs the entry fee payment flow: record a pending payment,
// charge the gateway, then settle the payment row and the registration.
type Service struct {
	repo    Repository
	gateway Gateway
}

// NewService creates a payment service from an injected repository and gateway.
func NewService(repo Repository, gateway Gateway) *Service {
	return &Service{repo: repo, gateway: gateway}
}

// NewServiceFromDB creates a payment service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB, gateway Gateway) *Service {
	return NewService(NewRepository(db), gateway)
}

// ChargeRegistration charges the entry fee for an event registration.
// The fee amount is resolved server side from the event, never taken
// from the client. On success the registration is approved and its
// roster rows are written; on gateway failure the payment row is kept
// in the failed state and the registration is left untouched.
func (s *Service) ChargeRegistration(ctx context.Context, in ChargeInput) (*models.Payment, error) {
	if in.UserID == 0 {
		return nil, errors.New("user_id is required")
	}
	if strings.TrimSpace(in.SourceID) == "" {
		return nil, errors.New("source id is required")
	}
	if !in.Metadata.Type.Valid() {
		return nil, fmt.Errorf("unknown event type: %s", in.Metadata.Type)
	}
	if len(in.Metadata.PlayersIDs) != roster.Size {
		return nil, ErrIncompleteRoster
	}

	amountCents, description, registrationID, err := s.resolveRegistration(in.Metadata)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:      in.UserID,
		AmountCents: amountCents,
		Currency:    models.PAYMENT_CURRENCY_USD,
		Method:      models.PAYMENT_METHOD_SQUARE,
		Status:      models.PAYMENT_PENDING,
		Description: description,
	}
	if err := payment.SetMetadata(in.Metadata); err != nil {
		return nil, err
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}

	result, chargeErr := s.gateway.Charge(ctx, GatewayCharge{
		SourceID:       in.SourceID,
		IdempotencyKey: uuid.New().String(),
		AmountCents:    amountCents,
		Currency:       models.PAYMENT_CURRENCY_USD,
		LocationID:     in.LocationID,
		PostalCode:     SanitizeZIP(in.PostalCode),
		Note:           description,
	})
	if chargeErr != nil {
		payment.Status = models.PAYMENT_FAILED
		if err := s.repo.UpdatePayment(payment); err != nil {
			log.Errorf("payment %d: charge failed and status update failed too: %v", payment.ID, err)
		}
		return nil, chargeErr
	}

	payment.Status = models.PAYMENT_COMPLETED
	payment.PaymentID = result.PaymentID
	if err := s.repo.UpdatePayment(payment); err != nil {
		log.Errorf("payment %d: charge %s completed but payment row not updated: %v", payment.ID, result.PaymentID, err)
	}

	// The charge has settled at this point. A failure below leaves a
	// completed payment next to an unapproved registration, which needs
	// manual follow-up; it must not fail the request.
	if err := s.approveRegistration(in.Metadata.Type, registrationID, in.Metadata.PlayersIDs); err != nil {
		log.Errorf("payment %d: charge %s completed but registration %d not approved: %v",
			payment.ID, result.PaymentID, registrationID, err)
	}

	return payment, nil
}

// resolveRegistration loads the event and its registration, returning
// the server-side fee, a charge description and the registration ID.
func (s *Service) resolveRegistration(meta models.PaymentMetadata) (int64, string, uint, error) {
	switch meta.Type {
	case models.EventTournament:
		tournament, err := s.repo.GetTournament(meta.EventID)
		if err != nil {
			return 0, "", 0, fmt.Errorf("tournament %d not found: %w", meta.EventID, err)
		}
		reg, err := s.repo.GetTournamentRegistrationByEvent(meta.EventID, meta.TeamID)
		if err != nil {
			return 0, "", 0, fmt.Errorf("no registration for tournament %d and team %d: %w", meta.EventID, meta.TeamID, err)
		}
		if reg.IsPaid() {
			return 0, "", 0, ErrAlreadyPaid
		}
		return tournament.FeeCents(), "Tournament entry: " + tournament.Name, reg.ID, nil
	case models.EventLeague:
		league, err := s.repo.GetLeague(meta.EventID)
		if err != nil {
			return 0, "", 0, fmt.Errorf("league %d not found: %w", meta.EventID, err)
		}
		reg, err := s.repo.GetLeagueRegistrationByEvent(meta.EventID, meta.TeamID)
		if err != nil {
			return 0, "", 0, fmt.Errorf("no registration for league %d and team %d: %w", meta.EventID, meta.TeamID, err)
		}
		if reg.IsPaid() {
			return 0, "", 0, ErrAlreadyPaid
		}
		return league.FeeCents(), "League entry: " + league.Name, reg.ID, nil
	default:
		return 0, "", 0, fmt.Errorf("unknown event type: %s", meta.Type)
	}
}

func (s *Service) approveRegistration(eventType models.EventType, registrationID uint, playerIDs []uint) error {
	if eventType == models.EventTournament {
		return s.repo.ApproveTournamentRegistration(registrationID, playerIDs)
	}
	return s.repo.ApproveLeagueRegistration(registrationID, playerIDs)
}
