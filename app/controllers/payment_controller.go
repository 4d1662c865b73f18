package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/app/repository"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments/square"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

var paymentService *payments.Service

// InitPaymentService wires the shared payment service into the handlers.
func InitPaymentService(service *payments.Service) {
	paymentService = service
}

type squarePaymentRequest struct {
	SourceID   string `json:"sourceId"`
	LocationID string `json:"locationId"`
	ZipCode    string `json:"zipCode"`
	Type       string `json:"type"`
	EventID    uint   `json:"event_id"`
	TeamID     uint   `json:"team_id"`
	PlayersIDs []uint `json:"players_ids"`
}

// HandleSquarePayment charges an entry fee with a tokenized card.
// The amount is resolved server side from the event; any amount sent
// by the client is ignored.
func HandleSquarePayment(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if paymentService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "Payments are currently disabled",
		})
	}

	var req squarePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid request body",
		})
	}

	payment, err := paymentService.ChargeRegistration(c.Context(), payments.ChargeInput{
		UserID:     userCtx.UserID,
		SourceID:   req.SourceID,
		LocationID: req.LocationID,
		PostalCode: req.ZipCode,
		Metadata: models.PaymentMetadata{
			Type:       models.EventType(req.Type),
			EventID:    req.EventID,
			TeamID:     req.TeamID,
			PlayersIDs: req.PlayersIDs,
		},
	})
	if err != nil {
		if apiErr, ok := square.IsAPIError(err); ok {
			// Card declines and other provider rejections come back with
			// the provider's error details so the frontend can show them.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"errors":  apiErr.Errors,
			})
		}
		if errors.Is(err, payments.ErrAlreadyPaid) || errors.Is(err, payments.ErrIncompleteRoster) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Payment processing failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"payment": payment,
	})
}

// HandleMyPayments lists the caller's payment history.
func HandleMyPayments(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 25)
	if limit > 100 {
		limit = 100
	}

	rows, err := repository.GetGlobalRepositories().Payment.GetByUserID(userCtx.UserID, offset, limit)
	if err != nil {
		return errInternal(c, "Failed to load payments")
	}
	return c.JSON(fiber.Map{"payments": rows})
}
