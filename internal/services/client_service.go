package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"autorevenda/internal/authz"
	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidStage   = errors.New("invalid funnel stage")
	ErrNotOwner       = errors.New("client belongs to another seller")
)

type ClientService struct {
	Repo     repositories.ClientRepository
	UserRepo repositories.UserRepository
}

func NewClientService(repo repositories.ClientRepository, userRepo repositories.UserRepository) *ClientService {
	return &ClientService{Repo: repo, UserRepo: userRepo}
}

func (s *ClientService) Create(client *models.Client) (int64, error) {
	if client.FunnelStage == "" {
		client.FunnelStage = models.StageAtendimento
	}
	if !models.ValidStage(client.FunnelStage) {
		return 0, ErrInvalidStage
	}
	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now
	return s.Repo.Create(client)
}

func (s *ClientService) Update(client *models.Client) error {
	client.UpdatedAt = time.Now()
	return s.Repo.Update(client)
}

func (s *ClientService) GetByID(id int) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

func (s *ClientService) List(limit, offset int) ([]*models.Client, error) {
	return s.Repo.List(limit, offset)
}

func (s *ClientService) ListMy(sellerID, limit, offset int) ([]*models.Client, error) {
	return s.Repo.ListBySeller(sellerID, limit, offset)
}

func (s *ClientService) FindByName(name string) ([]*models.Client, error) {
	return s.Repo.FindByName(name)
}

// MoveStage moves the client to the target funnel stage. Any stage may
// move to any other — the board allows pulling clients back (vendido →
// perdido on a cancelled sale). Same-stage target is a no-op. Only the
// owning seller or an admin may move.
func (s *ClientService) MoveStage(id int, target models.FunnelStage, userID, roleID int) error {
	if !models.ValidStage(target) {
		return ErrInvalidStage
	}
	client, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	if !authz.IsAdmin(roleID) && client.SellerID != userID {
		return ErrNotOwner
	}
	if client.FunnelStage == target {
		return nil // no-op, no timestamp bump
	}
	return s.Repo.UpdateStage(id, target, time.Now())
}

// FunnelSummary buckets all clients per effective stage. Stored legacy
// "lead" rows count under "atendimento"; rows are not mutated.
func (s *ClientService) FunnelSummary() (map[models.FunnelStage][]*models.Client, error) {
	clients, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := map[models.FunnelStage][]*models.Client{
		models.StageAtendimento: nil,
		models.StageSimulacao:   nil,
		models.StageProposta:    nil,
		models.StageVendido:     nil,
		models.StagePerdido:     nil,
	}
	for _, c := range clients {
		stage := models.EffectiveStage(c.FunnelStage)
		out[stage] = append(out[stage], c)
	}
	return out, nil
}

// Delete removes the client and best-effort deactivates the portal
// account matched by email. Account failure is logged and swallowed:
// the deletion itself still succeeds.
func (s *ClientService) Delete(id int) error {
	client, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if email := strings.TrimSpace(client.Email); email != "" && s.UserRepo != nil {
		if err := s.UserRepo.DeactivateByEmail(email); err != nil {
			log.Printf("[client][delete] best-effort account deactivation failed for %s: %v", email, err)
		}
	}
	return nil
}
