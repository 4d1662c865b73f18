package teams

import (
	"context"
	"errors"
	"strings"

	"github.com/MilitiaGamingLeague/platform/app/models"
	"gorm.io/gorm"
)

// Confirmation phrases for destructive team actions. The caller must
// type these exactly; a mismatch aborts before anything is written.
const (
	TransferConfirmation = "TRANSFER"
	DisbandConfirmation  = "DISBAND"
)

var (
	ErrBadConfirmation  = errors.New("confirmation phrase does not match")
	ErrNotCaptain       = errors.New("only the team captain may do this")
	ErrNotMember        = errors.New("user is not a member of this team")
	ErrAlreadyMember    = errors.New("user is already a member of this team")
	ErrDuplicateRequest = errors.New("a pending join request already exists")
	ErrCaptainRemoval   = errors.New("the captain cannot be removed; transfer ownership first")
	ErrProtectedMember  = errors.New("this member cannot be removed")
	ErrSelfTransfer     = errors.New("ownership is already held by this member")
)

// Service enforces the team management rules on top of the repository.
type Service struct {
	repo Repository
}

// NewService creates a team service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a team service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// TransferOwnership hands the team to another member. The acting user
// must be the current captain and must confirm with the exact phrase.
func (s *Service) TransferOwnership(ctx context.Context, teamID, actorID, newCaptainID uint, confirmation string) error {
	if strings.TrimSpace(confirmation) != TransferConfirmation {
		return ErrBadConfirmation
	}

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID != actorID {
		return ErrNotCaptain
	}
	if newCaptainID == actorID {
		return ErrSelfTransfer
	}
	if _, err := s.repo.GetMember(ctx, teamID, newCaptainID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}

	return s.repo.TransferOwnership(ctx, teamID, actorID, newCaptainID)
}

// Disband deletes the team along with its memberships and open join
// requests. Captain-only, phrase-confirmed.
func (s *Service) Disband(ctx context.Context, teamID, actorID uint, confirmation string) error {
	if strings.TrimSpace(confirmation) != DisbandConfirmation {
		return ErrBadConfirmation
	}

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID != actorID {
		return ErrNotCaptain
	}

	return s.repo.DisbandTeam(ctx, teamID)
}

// RequestToJoin files a join request for a user. Members and users
// with an open request are rejected.
func (s *Service) RequestToJoin(ctx context.Context, teamID, userID uint, message string) (*models.TeamJoinRequest, error) {
	if _, err := s.repo.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetMember(ctx, teamID, userID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.GetPendingJoinRequest(ctx, teamID, userID); err == nil {
		return nil, ErrDuplicateRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := &models.TeamJoinRequest{
		TeamID:  teamID,
		UserID:  userID,
		Message: strings.TrimSpace(message),
		Status:  models.JOIN_REQUEST_PENDING,
	}
	if err := s.repo.CreateJoinRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveJoinRequest accepts a pending request and adds the user as a
// regular player. Captain-only.
func (s *Service) ApproveJoinRequest(ctx context.Context, requestID, actorID uint) error {
	request, err := s.repo.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return errors.New("join request is not pending")
	}

	team, err := s.repo.GetTeam(ctx, request.TeamID)
	if err != nil {
		return err
	}
	if team.CaptainID != actorID {
		return ErrNotCaptain
	}

	if err := s.repo.AddMember(ctx, &models.TeamPlayer{
		TeamID:       request.TeamID,
		UserID:       request.UserID,
		Role:         models.TEAM_ROLE_PLAYER,
		CanBeDeleted: true,
	}); err != nil {
		return err
	}

	request.Status = models.JOIN_REQUEST_APPROVED
	return s.repo.SaveJoinRequest(ctx, request)
}

// RejectJoinRequest declines a pending request. Captain-only.
func (s *Service) RejectJoinRequest(ctx context.Context, requestID, actorID uint) error {
	request, err := s.repo.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return errors.New("join request is not pending")
	}

	team, err := s.repo.GetTeam(ctx, request.TeamID)
	if err != nil {
		return err
	}
	if team.CaptainID != actorID {
		return ErrNotCaptain
	}

	request.Status = models.JOIN_REQUEST_REJECTED
	return s.repo.SaveJoinRequest(ctx, request)
}

// RemoveMember drops a player from the team. The captain cannot be
// removed and protected members are kept. Members may remove
// themselves; everyone else needs the captain.
func (s *Service) RemoveMember(ctx context.Context, teamID, actorID, userID uint) error {
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if actorID != userID && team.CaptainID != actorID {
		return ErrNotCaptain
	}
	if userID == team.CaptainID {
		return ErrCaptainRemoval
	}

	member, err := s.repo.GetMember(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}
	if !member.CanBeDeleted {
		return ErrProtectedMember
	}

	return s.repo.RemoveMember(ctx, teamID, userID)
}
