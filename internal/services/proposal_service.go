package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var (
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrInvalidStatus       = errors.New("invalid proposal status")
	ErrProposalNotApproved = errors.New("proposal is not approved")
	ErrProposalClosed      = errors.New("proposal already decided")
)

// actionForStatus is the exhaustive status→audit-verb table. Unknown
// statuses never reach it (validated first); targets outside the three
// terminal states log as a plain update.
var actionForStatus = map[models.ProposalStatus]models.ActivityAction{
	models.ProposalAprovada:  models.ActionApprove,
	models.ProposalRecusada:  models.ActionReject,
	models.ProposalCancelada: models.ActionCancel,
}

// ActionForStatus maps a proposal status change to its activity-log verb.
func ActionForStatus(status models.ProposalStatus) models.ActivityAction {
	if a, ok := actionForStatus[status]; ok {
		return a
	}
	return models.ActionUpdate
}

type ProposalService struct {
	Repo         repositories.ProposalRepository
	ActivityRepo repositories.ActivityLogRepository
	Numbering    *NumberingService
	Notifier     Notifier // optional
}

// Notifier pushes staff notifications for funnel milestones. Nil or
// no-op implementations are fine.
type Notifier interface {
	ProposalApproved(p *models.Proposal)
	SaleClosed(s *models.Sale)
}

func NewProposalService(
	repo repositories.ProposalRepository,
	activityRepo repositories.ActivityLogRepository,
	numbering *NumberingService,
	notifier Notifier,
) *ProposalService {
	return &ProposalService{Repo: repo, ActivityRepo: activityRepo, Numbering: numbering, Notifier: notifier}
}

func (s *ProposalService) Create(p *models.Proposal, userID int) (*models.Proposal, error) {
	if p.Status == "" {
		p.Status = models.ProposalPendente
	}
	if !models.ValidProposalStatus(p.Status) {
		return nil, ErrInvalidStatus
	}
	if p.ProposalNumber == "" {
		p.ProposalNumber = s.Numbering.Next(PrefixProposta)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	id, err := s.Repo.Create(p)
	if err != nil {
		return nil, err
	}
	p.ID = int(id)

	s.logActivity(userID, p.ID, models.ActionCreate, "proposta criada "+p.ProposalNumber)
	return p, nil
}

// UpdateStatus drives the machine: pendente → aprovada | recusada |
// cancelada. The three targets are terminal; there is no path back to
// pendente. Every transition writes an activity entry whose action is
// derived from the new status.
func (s *ProposalService) UpdateStatus(id int, target models.ProposalStatus, userID int) error {
	if !models.ValidProposalStatus(target) || target == models.ProposalPendente {
		return ErrInvalidStatus
	}
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProposalNotFound
	}
	if p.Status == target {
		return nil
	}
	if p.Status != models.ProposalPendente {
		return ErrProposalClosed
	}

	if err := s.Repo.UpdateStatus(id, target); err != nil {
		return err
	}

	s.logActivity(userID, id, ActionForStatus(target),
		fmt.Sprintf("status %s → %s", p.Status, target))

	if target == models.ProposalAprovada && s.Notifier != nil {
		p.Status = target
		s.Notifier.ProposalApproved(p)
	}
	return nil
}

func (s *ProposalService) GetByID(id int) (*models.Proposal, error) {
	return s.Repo.GetByID(id)
}

func (s *ProposalService) Update(p *models.Proposal) error {
	return s.Repo.Update(p)
}

func (s *ProposalService) List(limit, offset int) ([]*models.Proposal, error) {
	return s.Repo.List(limit, offset)
}

func (s *ProposalService) ListByClient(clientID int) ([]*models.Proposal, error) {
	return s.Repo.ListByClient(clientID)
}

func (s *ProposalService) ListMy(sellerID, limit, offset int) ([]*models.Proposal, error) {
	return s.Repo.ListBySeller(sellerID, limit, offset)
}

func (s *ProposalService) Delete(id int, userID int) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.logActivity(userID, id, models.ActionDelete, "proposta removida")
	return nil
}

func (s *ProposalService) History(id int) ([]*models.ActivityLog, error) {
	return s.ActivityRepo.ListByEntity("proposal", id, 100)
}

// audit trail is best effort: a lost entry must not fail the operation
func (s *ProposalService) logActivity(userID, proposalID int, action models.ActivityAction, details string) {
	if s.ActivityRepo == nil {
		return
	}
	_, err := s.ActivityRepo.Create(&models.ActivityLog{
		UserID:     userID,
		EntityType: "proposal",
		EntityID:   proposalID,
		Action:     action,
		Details:    details,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.Printf("[proposal][activity] write failed for proposal=%d: %v", proposalID, err)
	}
}
