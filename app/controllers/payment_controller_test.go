package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/payments/square"
	"github.com/MilitiaGamingLeague/platform/internal/pkg/usercontext"
)

type stubPaymentRepo struct {
	payments     []*models.Payment
	tournament   *models.Tournament
	registration *models.TournamentRegistration
	approved     []uint
}

func (r *stubPaymentRepo) CreatePayment(p *models.Payment) error {
	p.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubPaymentRepo) UpdatePayment(p *models.Payment) error { return nil }

func (r *stubPaymentRepo) GetTournament(id uint) (*models.Tournament, error) {
	return r.tournament, nil
}

func (r *stubPaymentRepo) GetLeague(id uint) (*models.League, error) {
	return nil, fiber.ErrNotFound
}

func (r *stubPaymentRepo) GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error) {
	return r.registration, nil
}

func (r *stubPaymentRepo) GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error) {
	return nil, fiber.ErrNotFound
}

func (r *stubPaymentRepo) ApproveTournamentRegistration(registrationID uint, playerIDs []uint) error {
	r.approved = append(r.approved, registrationID)
	return nil
}

func (r *stubPaymentRepo) ApproveLeagueRegistration(registrationID uint, playerIDs []uint) error {
	return nil
}

type stubGateway struct {
	result *payments.GatewayResult
	err    error
	calls  int
}

func (g *stubGateway) Charge(ctx context.Context, in payments.GatewayCharge) (*payments.GatewayResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func newPaymentTestApp(repo payments.Repository, gateway payments.Gateway) *fiber.App {
	InitPaymentService(payments.NewService(repo, gateway))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			UserID:     10,
			Username:   "captain",
			IsLoggedIn: true,
			Role:       models.RoleUser,
		})
		return c.Next()
	})
	app.Post("/api/payments/square", HandleSquarePayment)
	return app
}

func paymentRequestBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"sourceId":    "cnon:card-nonce-ok",
		"locationId":  "L123",
		"zipCode":     "90210",
		"type":        "tournament",
		"event_id":    1,
		"team_id":     1,
		"players_ids": []uint{10, 11, 12, 13, 14},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewReader(body)
}

func TestHandleSquarePayment_Success(t *testing.T) {
	repo := &stubPaymentRepo{
		tournament:   &models.Tournament{Name: "Summer Cup", EntryFeeCents: 5000},
		registration: &models.TournamentRegistration{TournamentID: 1, TeamID: 1, PaymentStatus: models.PAYMENT_STATUS_UNPAID},
	}
	repo.tournament.ID = 1
	repo.registration.ID = 7
	gateway := &stubGateway{result: &payments.GatewayResult{PaymentID: "sq_1", Status: "COMPLETED"}}
	app := newPaymentTestApp(repo, gateway)

	req := httptest.NewRequest("POST", "/api/payments/square", paymentRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Success bool            `json:"success"`
		Payment *models.Payment `json:"payment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatal("expected success=true")
	}
	if out.Payment == nil || out.Payment.AmountCents != 5000 {
		t.Fatalf("expected 5000 cent payment, got %+v", out.Payment)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected 1 gateway call, got %d", gateway.calls)
	}
	if len(repo.approved) != 1 || repo.approved[0] != 7 {
		t.Fatalf("expected registration 7 approved, got %v", repo.approved)
	}
}

func TestHandleSquarePayment_CardDeclined(t *testing.T) {
	repo := &stubPaymentRepo{
		tournament:   &models.Tournament{Name: "Summer Cup", EntryFeeCents: 5000},
		registration: &models.TournamentRegistration{TournamentID: 1, TeamID: 1, PaymentStatus: models.PAYMENT_STATUS_UNPAID},
	}
	repo.tournament.ID = 1
	repo.registration.ID = 7
	gateway := &stubGateway{err: &square.APIError{
		StatusCode: 400,
		Errors: []square.ErrorDetail{
			{Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED", Detail: "Card declined."},
		},
	}}
	app := newPaymentTestApp(repo, gateway)

	req := httptest.NewRequest("POST", "/api/payments/square", paymentRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var out struct {
		Success bool                 `json:"success"`
		Errors  []square.ErrorDetail `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success {
		t.Fatal("expected success=false")
	}
	if len(out.Errors) != 1 || out.Errors[0].Code != "CARD_DECLINED" {
		t.Fatalf("expected CARD_DECLINED error, got %v", out.Errors)
	}
	if len(repo.approved) != 0 {
		t.Fatalf("declined charge must not approve a registration, got %v", repo.approved)
	}
}

func TestHandleSquarePayment_AlreadyPaid(t *testing.T) {
	repo := &stubPaymentRepo{
		tournament:   &models.Tournament{Name: "Summer Cup", EntryFeeCents: 5000},
		registration: &models.TournamentRegistration{TournamentID: 1, TeamID: 1, PaymentStatus: models.PAYMENT_STATUS_PAID},
	}
	repo.tournament.ID = 1
	repo.registration.ID = 7
	gateway := &stubGateway{result: &payments.GatewayResult{PaymentID: "sq_1", Status: "COMPLETED"}}
	app := newPaymentTestApp(repo, gateway)

	req := httptest.NewRequest("POST", "/api/payments/square", paymentRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if gateway.calls != 0 {
		t.Fatalf("paid registration must not reach the gateway, got %d calls", gateway.calls)
	}
	if len(repo.payments) != 0 {
		t.Fatalf("paid registration must not create payment rows, got %d", len(repo.payments))
	}
}

func TestHandleSquarePayment_IncompleteRoster(t *testing.T) {
	repo := &stubPaymentRepo{
		tournament:   &models.Tournament{Name: "Summer Cup", EntryFeeCents: 5000},
		registration: &models.TournamentRegistration{TournamentID: 1, TeamID: 1, PaymentStatus: models.PAYMENT_STATUS_UNPAID},
	}
	gateway := &stubGateway{}
	app := newPaymentTestApp(repo, gateway)

	body, _ := json.Marshal(map[string]any{
		"sourceId":    "cnon:card-nonce-ok",
		"type":        "tournament",
		"event_id":    1,
		"team_id":     1,
		"players_ids": []uint{10, 11},
	})
	req := httptest.NewRequest("POST", "/api/payments/square", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if gateway.calls != 0 {
		t.Fatalf("incomplete roster must not reach the gateway, got %d calls", gateway.calls)
	}
}
