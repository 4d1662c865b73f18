package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/MilitiaGamingLeague/platform/app/models"
)

type fakeRepo struct {
	tournament *models.Tournament
	league     *models.League
	reg        *models.TournamentRegistration
	leagueReg  *models.LeagueRegistration

	created  []*models.Payment
	updated  []*models.Payment
	approved []uint
	rosters  [][]uint
}

func (f *fakeRepo) CreatePayment(p *models.Payment) error {
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepo) UpdatePayment(p *models.Payment) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeRepo) GetTournament(id uint) (*models.Tournament, error) {
	if f.tournament == nil || f.tournament.ID != id {
		return nil, errors.New("not found")
	}
	return f.tournament, nil
}

func (f *fakeRepo) GetLeague(id uint) (*models.League, error) {
	if f.league == nil || f.league.ID != id {
		return nil, errors.New("not found")
	}
	return f.league, nil
}

func (f *fakeRepo) GetTournamentRegistrationByEvent(tournamentID, teamID uint) (*models.TournamentRegistration, error) {
	if f.reg == nil {
		return nil, errors.New("not found")
	}
	return f.reg, nil
}

func (f *fakeRepo) GetLeagueRegistrationByEvent(leagueID, teamID uint) (*models.LeagueRegistration, error) {
	if f.leagueReg == nil {
		return nil, errors.New("not found")
	}
	return f.leagueReg, nil
}

func (f *fakeRepo) ApproveTournamentRegistration(registrationID uint, playerIDs []uint) error {
	f.approved = append(f.approved, registrationID)
	f.rosters = append(f.rosters, playerIDs)
	return nil
}

func (f *fakeRepo) ApproveLeagueRegistration(registrationID uint, playerIDs []uint) error {
	f.approved = append(f.approved, registrationID)
	f.rosters = append(f.rosters, playerIDs)
	return nil
}

type fakeGateway struct {
	calls  []GatewayCharge
	result *GatewayResult
	err    error
}

func (f *fakeGateway) Charge(ctx context.Context, in GatewayCharge) (*GatewayResult, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testMetadata() models.PaymentMetadata {
	return models.PaymentMetadata{
		Type:       models.EventTournament,
		EventID:    1,
		TeamID:     2,
		PlayersIDs: []uint{10, 11, 12, 13, 14},
	}
}

func testRepo() *fakeRepo {
	return &fakeRepo{
		tournament: &models.Tournament{ID: 1, Name: "Summer Open", Status: models.TOURNAMENT_STATUS_REGISTRATION},
		reg: &models.TournamentRegistration{
			ID:            42,
			TournamentID:  1,
			TeamID:        2,
			Status:        models.REGISTRATION_PENDING,
			PaymentStatus: models.PAYMENT_STATUS_UNPAID,
		},
	}
}

func TestChargeRegistration_Success(t *testing.T) {
	repo := testRepo()
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_123", Status: "COMPLETED"}}
	svc := NewService(repo, gw)

	payment, err := svc.ChargeRegistration(context.Background(), ChargeInput{
		UserID:     5,
		SourceID:   "cnon:card",
		PostalCode: "12345-6789",
		Metadata:   testMetadata(),
	})
	if err != nil {
		t.Fatalf("ChargeRegistration returned error: %v", err)
	}

	if payment.Status != models.PAYMENT_COMPLETED {
		t.Fatalf("payment status = %q, want completed", payment.Status)
	}
	if payment.PaymentID != "p_123" {
		t.Fatalf("payment id = %q, want p_123", payment.PaymentID)
	}
	if payment.AmountCents != models.DefaultTournamentFeeCents {
		t.Fatalf("amount = %d, want %d", payment.AmountCents, models.DefaultTournamentFeeCents)
	}
	if payment.Currency != models.PAYMENT_CURRENCY_USD {
		t.Fatalf("currency = %q, want USD", payment.Currency)
	}

	if len(gw.calls) != 1 {
		t.Fatalf("gateway calls = %d, want 1", len(gw.calls))
	}
	call := gw.calls[0]
	if call.AmountCents != models.DefaultTournamentFeeCents {
		t.Fatalf("charged amount = %d, want %d", call.AmountCents, models.DefaultTournamentFeeCents)
	}
	if call.PostalCode != "12345" {
		t.Fatalf("postal code = %q, want sanitized 12345", call.PostalCode)
	}
	if call.IdempotencyKey == "" {
		t.Fatalf("expected generated idempotency key")
	}

	if len(repo.approved) != 1 || repo.approved[0] != 42 {
		t.Fatalf("approved registrations = %v, want [42]", repo.approved)
	}
	if len(repo.rosters) != 1 || len(repo.rosters[0]) != 5 {
		t.Fatalf("roster rows = %v, want the 5 picked players", repo.rosters)
	}
}

func TestChargeRegistration_GatewayFailure(t *testing.T) {
	repo := testRepo()
	gw := &fakeGateway{err: errors.New("card declined")}
	svc := NewService(repo, gw)

	_, err := svc.ChargeRegistration(context.Background(), ChargeInput{
		UserID:   5,
		SourceID: "cnon:bad-card",
		Metadata: testMetadata(),
	})
	if err == nil {
		t.Fatalf("expected charge error")
	}

	if len(repo.created) != 1 {
		t.Fatalf("created payments = %d, want 1 pending row", len(repo.created))
	}
	if repo.created[0].Status != models.PAYMENT_FAILED {
		t.Fatalf("payment status = %q, want failed", repo.created[0].Status)
	}
	if len(repo.approved) != 0 {
		t.Fatalf("registration must stay untouched on failure, approved = %v", repo.approved)
	}
	if repo.reg.Status != models.REGISTRATION_PENDING || repo.reg.PaymentStatus != models.PAYMENT_STATUS_UNPAID {
		t.Fatalf("registration mutated on failure: %+v", repo.reg)
	}
}

func TestChargeRegistration_AlreadyPaid(t *testing.T) {
	repo := testRepo()
	repo.reg.Status = models.REGISTRATION_APPROVED
	repo.reg.PaymentStatus = models.PAYMENT_STATUS_PAID
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_999"}}
	svc := NewService(repo, gw)

	_, err := svc.ChargeRegistration(context.Background(), ChargeInput{
		UserID:   5,
		SourceID: "cnon:card",
		Metadata: testMetadata(),
	})
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("err = %v, want ErrAlreadyPaid", err)
	}
	if len(gw.calls) != 0 {
		t.Fatalf("paid registration must not be charged again, calls = %d", len(gw.calls))
	}
	if len(repo.created) != 0 {
		t.Fatalf("no payment row expected, created = %d", len(repo.created))
	}
}

func TestChargeRegistration_IncompleteRoster(t *testing.T) {
	repo := testRepo()
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_1"}}
	svc := NewService(repo, gw)

	meta := testMetadata()
	meta.PlayersIDs = meta.PlayersIDs[:4]

	_, err := svc.ChargeRegistration(context.Background(), ChargeInput{
		UserID:   5,
		SourceID: "cnon:card",
		Metadata: meta,
	})
	if !errors.Is(err, ErrIncompleteRoster) {
		t.Fatalf("err = %v, want ErrIncompleteRoster", err)
	}
	if len(gw.calls) != 0 || len(repo.created) != 0 {
		t.Fatalf("incomplete roster must not reach the gateway")
	}
}

func TestChargeRegistration_LeagueFee(t *testing.T) {
	repo := &fakeRepo{
		league: &models.League{ID: 3, Name: "Winter League", Status: models.LEAGUE_STATUS_ACTIVE},
		leagueReg: &models.LeagueRegistration{
			ID:            7,
			LeagueID:      3,
			TeamID:        2,
			Status:        models.REGISTRATION_PENDING,
			PaymentStatus: models.PAYMENT_STATUS_UNPAID,
		},
	}
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_league"}}
	svc := NewService(repo, gw)

	meta := testMetadata()
	meta.Type = models.EventLeague
	meta.EventID = 3

	payment, err := svc.ChargeRegistration(context.Background(), ChargeInput{
		UserID:   5,
		SourceID: "cnon:card",
		Metadata: meta,
	})
	if err != nil {
		t.Fatalf("ChargeRegistration returned error: %v", err)
	}
	if payment.AmountCents != models.DefaultLeagueFeeCents {
		t.Fatalf("amount = %d, want %d", payment.AmountCents, models.DefaultLeagueFeeCents)
	}
	if len(repo.approved) != 1 || repo.approved[0] != 7 {
		t.Fatalf("approved = %v, want [7]", repo.approved)
	}
}

type fakeTokenizer struct {
	token string
	err   error
	calls int
}

func (f *fakeTokenizer) Tokenize(ctx context.Context, card CardDetails) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestCheckout_TokenizerFailureSkipsBackend(t *testing.T) {
	repo := testRepo()
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_1"}}
	tok := &fakeTokenizer{err: errors.New("invalid card number")}
	checkout := NewCheckout(tok, NewService(repo, gw))

	_, err := checkout.Pay(context.Background(), CardDetails{Number: "4111"}, 5, "", testMetadata())
	if err == nil {
		t.Fatalf("expected tokenization error")
	}
	if len(repo.created) != 0 {
		t.Fatalf("no payment row may be written when tokenization fails")
	}
	if len(gw.calls) != 0 {
		t.Fatalf("gateway must not be called when tokenization fails")
	}
}

func TestCheckout_PassesTokenAndPostalCode(t *testing.T) {
	repo := testRepo()
	gw := &fakeGateway{result: &GatewayResult{PaymentID: "p_123"}}
	tok := &fakeTokenizer{token: "cnon:tokenized"}
	checkout := NewCheckout(tok, NewService(repo, gw))

	card := CardDetails{Number: "4111111111111111", ExpMonth: 12, ExpYear: 2030, CVV: "123", PostalCode: "98109"}
	payment, err := checkout.Pay(context.Background(), card, 5, "loc_1", testMetadata())
	if err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}
	if payment.PaymentID != "p_123" {
		t.Fatalf("payment id = %q", payment.PaymentID)
	}
	if tok.calls != 1 {
		t.Fatalf("tokenizer calls = %d, want 1", tok.calls)
	}
	if gw.calls[0].SourceID != "cnon:tokenized" {
		t.Fatalf("source id = %q, want the tokenized value", gw.calls[0].SourceID)
	}
	if gw.calls[0].PostalCode != "98109" {
		t.Fatalf("postal code = %q", gw.calls[0].PostalCode)
	}
}
