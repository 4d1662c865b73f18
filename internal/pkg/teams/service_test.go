package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

type fakeRepo struct {
	team     *models.Team
	members  map[uint]*models.TeamPlayer
	requests map[uint]*models.TeamJoinRequest

	transferred [][3]uint
	disbanded   []uint
	removed     [][2]uint
	added       []*models.TeamPlayer
	created     []*models.TeamJoinRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		team: &models.Team{ID: 1, Name: "Night Owls", CaptainID: 10},
		members: map[uint]*models.TeamPlayer{
			10: {TeamID: 1, UserID: 10, Role: models.TEAM_ROLE_CAPTAIN, CanBeDeleted: false},
			11: {TeamID: 1, UserID: 11, Role: models.TEAM_ROLE_PLAYER, CanBeDeleted: true},
			12: {TeamID: 1, UserID: 12, Role: models.TEAM_ROLE_PLAYER, CanBeDeleted: false},
		},
		requests: map[uint]*models.TeamJoinRequest{},
	}
}

func (f *fakeRepo) GetTeam(_ context.Context, id uint) (*models.Team, error) {
	if f.team == nil || f.team.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.team, nil
}

func (f *fakeRepo) GetMember(_ context.Context, teamID, userID uint) (*models.TeamPlayer, error) {
	if m, ok := f.members[userID]; ok && m.TeamID == teamID {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) AddMember(_ context.Context, member *models.TeamPlayer) error {
	f.added = append(f.added, member)
	f.members[member.UserID] = member
	return nil
}

func (f *fakeRepo) RemoveMember(_ context.Context, teamID, userID uint) error {
	f.removed = append(f.removed, [2]uint{teamID, userID})
	delete(f.members, userID)
	return nil
}

func (f *fakeRepo) TransferOwnership(_ context.Context, teamID, oldCaptainID, newCaptainID uint) error {
	f.transferred = append(f.transferred, [3]uint{teamID, oldCaptainID, newCaptainID})
	f.team.CaptainID = newCaptainID
	if m, ok := f.members[oldCaptainID]; ok {
		m.Role = models.TEAM_ROLE_PLAYER
		m.CanBeDeleted = true
	}
	if m, ok := f.members[newCaptainID]; ok {
		m.Role = models.TEAM_ROLE_CAPTAIN
		m.CanBeDeleted = false
	}
	return nil
}

func (f *fakeRepo) DisbandTeam(_ context.Context, teamID uint) error {
	f.disbanded = append(f.disbanded, teamID)
	return nil
}

func (f *fakeRepo) GetJoinRequest(_ context.Context, id uint) (*models.TeamJoinRequest, error) {
	if r, ok := f.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetPendingJoinRequest(_ context.Context, teamID, userID uint) (*models.TeamJoinRequest, error) {
	for _, r := range f.requests {
		if r.TeamID == teamID && r.UserID == userID && r.IsPending() {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreateJoinRequest(_ context.Context, request *models.TeamJoinRequest) error {
	request.ID = uint(len(f.requests) + 1)
	f.requests[request.ID] = request
	f.created = append(f.created, request)
	return nil
}

func (f *fakeRepo) SaveJoinRequest(_ context.Context, request *models.TeamJoinRequest) error {
	f.requests[request.ID] = request
	return nil
}

func TestTransferOwnership(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.TransferOwnership(context.Background(), 1, 10, 11, "TRANSFER"); err != nil {
		t.Fatalf("TransferOwnership returned error: %v", err)
	}
	if len(repo.transferred) != 1 || repo.transferred[0] != [3]uint{1, 10, 11} {
		t.Fatalf("transferred = %v", repo.transferred)
	}
	if repo.team.CaptainID != 11 {
		t.Fatalf("captain = %d, want 11", repo.team.CaptainID)
	}
}

func TestTransferOwnership_WrongPhrase(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.TransferOwnership(context.Background(), 1, 10, 11, "transfer")
	if !errors.Is(err, ErrBadConfirmation) {
		t.Fatalf("err = %v, want ErrBadConfirmation", err)
	}
	if len(repo.transferred) != 0 {
		t.Fatalf("nothing may be written on a bad phrase")
	}
}

func TestTransferOwnership_NotCaptain(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.TransferOwnership(context.Background(), 1, 11, 12, "TRANSFER"); !errors.Is(err, ErrNotCaptain) {
		t.Fatalf("err = %v, want ErrNotCaptain", err)
	}
}

func TestTransferOwnership_TargetMustBeMember(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.TransferOwnership(context.Background(), 1, 10, 99, "TRANSFER"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("err = %v, want ErrNotMember", err)
	}
}

func TestTransferOwnership_ProtectionFollowsRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.TransferOwnership(context.Background(), 1, 10, 11, "TRANSFER"); err != nil {
		t.Fatalf("TransferOwnership returned error: %v", err)
	}

	old := repo.members[10]
	if old.Role != models.TEAM_ROLE_PLAYER || !old.CanBeDeleted {
		t.Fatalf("ex-captain row = %+v, want deletable player", old)
	}
	captain := repo.members[11]
	if captain.Role != models.TEAM_ROLE_CAPTAIN || captain.CanBeDeleted {
		t.Fatalf("new captain row = %+v, want protected captain", captain)
	}

	// The new captain can now remove the previous one
	if err := svc.RemoveMember(context.Background(), 1, 11, 10); err != nil {
		t.Fatalf("removing the ex-captain returned error: %v", err)
	}
	if err := svc.RemoveMember(context.Background(), 1, 11, 11); !errors.Is(err, ErrCaptainRemoval) {
		t.Fatalf("err = %v, want ErrCaptainRemoval", err)
	}
}

func TestDisband(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.Disband(context.Background(), 1, 10, "DISBAND"); err != nil {
		t.Fatalf("Disband returned error: %v", err)
	}
	if len(repo.disbanded) != 1 || repo.disbanded[0] != 1 {
		t.Fatalf("disbanded = %v", repo.disbanded)
	}
}

func TestDisband_WrongPhraseOrActor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.Disband(context.Background(), 1, 10, "DELETE"); !errors.Is(err, ErrBadConfirmation) {
		t.Fatalf("err = %v, want ErrBadConfirmation", err)
	}
	if err := svc.Disband(context.Background(), 1, 11, "DISBAND"); !errors.Is(err, ErrNotCaptain) {
		t.Fatalf("err = %v, want ErrNotCaptain", err)
	}
	if len(repo.disbanded) != 0 {
		t.Fatalf("team must not be disbanded")
	}
}

func TestRequestToJoin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	request, err := svc.RequestToJoin(context.Background(), 1, 20, "let me in")
	if err != nil {
		t.Fatalf("RequestToJoin returned error: %v", err)
	}
	if request.Status != models.JOIN_REQUEST_PENDING {
		t.Fatalf("status = %q, want pending", request.Status)
	}

	if _, err := svc.RequestToJoin(context.Background(), 1, 20, "again"); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("err = %v, want ErrDuplicateRequest", err)
	}
	if _, err := svc.RequestToJoin(context.Background(), 1, 11, "already in"); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("err = %v, want ErrAlreadyMember", err)
	}
}

func TestApproveJoinRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	request, err := svc.RequestToJoin(context.Background(), 1, 20, "")
	if err != nil {
		t.Fatalf("RequestToJoin returned error: %v", err)
	}

	if err := svc.ApproveJoinRequest(context.Background(), request.ID, 11); !errors.Is(err, ErrNotCaptain) {
		t.Fatalf("err = %v, want ErrNotCaptain", err)
	}

	if err := svc.ApproveJoinRequest(context.Background(), request.ID, 10); err != nil {
		t.Fatalf("ApproveJoinRequest returned error: %v", err)
	}
	if request.Status != models.JOIN_REQUEST_APPROVED {
		t.Fatalf("status = %q, want approved", request.Status)
	}
	if len(repo.added) != 1 || repo.added[0].UserID != 20 || repo.added[0].Role != models.TEAM_ROLE_PLAYER {
		t.Fatalf("added = %+v", repo.added)
	}

	if err := svc.ApproveJoinRequest(context.Background(), request.ID, 10); err == nil {
		t.Fatalf("approving a settled request must fail")
	}
}

func TestRejectJoinRequest(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	request, err := svc.RequestToJoin(context.Background(), 1, 20, "")
	if err != nil {
		t.Fatalf("RequestToJoin returned error: %v", err)
	}

	if err := svc.RejectJoinRequest(context.Background(), request.ID, 10); err != nil {
		t.Fatalf("RejectJoinRequest returned error: %v", err)
	}
	if request.Status != models.JOIN_REQUEST_REJECTED {
		t.Fatalf("status = %q, want rejected", request.Status)
	}
	if len(repo.added) != 0 {
		t.Fatalf("rejected requests must not add members")
	}
}

func TestRemoveMember(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.RemoveMember(context.Background(), 1, 10, 11); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if len(repo.removed) != 1 || repo.removed[0] != [2]uint{1, 11} {
		t.Fatalf("removed = %v", repo.removed)
	}
}

func TestRemoveMember_Rules(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	if err := svc.RemoveMember(context.Background(), 1, 10, 10); !errors.Is(err, ErrCaptainRemoval) {
		t.Fatalf("err = %v, want ErrCaptainRemoval", err)
	}
	if err := svc.RemoveMember(context.Background(), 1, 10, 12); !errors.Is(err, ErrProtectedMember) {
		t.Fatalf("err = %v, want ErrProtectedMember", err)
	}
	if err := svc.RemoveMember(context.Background(), 1, 11, 12); !errors.Is(err, ErrNotCaptain) {
		t.Fatalf("err = %v, want ErrNotCaptain", err)
	}
	// Members may leave on their own
	if err := svc.RemoveMember(context.Background(), 1, 11, 11); err != nil {
		t.Fatalf("self removal returned error: %v", err)
	}
}
