package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/authz"
	"autorevenda/internal/models"
)

func TestClientCreateDefaultsStage(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, newFakeUserRepo())

	client := &models.Client{Name: "Maria Souza", SellerID: 3}
	id, err := svc.Create(client)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, models.StageAtendimento, client.FunnelStage)
	assert.False(t, client.CreatedAt.IsZero())
}

func TestClientCreateRejectsUnknownStage(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), newFakeUserRepo())

	_, err := svc.Create(&models.Client{Name: "X", FunnelStage: "negociando"})
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestClientMoveStage(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, newFakeUserRepo())
	c := repo.add(&models.Client{Name: "João", SellerID: 7, FunnelStage: models.StageAtendimento})

	tests := []struct {
		name    string
		id      int
		target  models.FunnelStage
		userID  int
		roleID  int
		wantErr error
	}{
		{"owner moves forward", c.ID, models.StageSimulacao, 7, authz.RoleVendedor, nil},
		{"admin moves anyone", c.ID, models.StageProposta, 99, authz.RoleAdmin, nil},
		{"other seller blocked", c.ID, models.StageVendido, 8, authz.RoleVendedor, ErrNotOwner},
		{"unknown stage", c.ID, "qualquer", 7, authz.RoleVendedor, ErrInvalidStage},
		{"missing client", 404, models.StageSimulacao, 7, authz.RoleVendedor, ErrClientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.MoveStage(tt.id, tt.target, tt.userID, tt.roleID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, c.FunnelStage)
		})
	}
}

func TestClientMoveStageSameStageIsNoOp(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, newFakeUserRepo())
	stamp := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	c := repo.add(&models.Client{SellerID: 1, FunnelStage: models.StageSimulacao, UpdatedAt: stamp})

	require.NoError(t, svc.MoveStage(c.ID, models.StageSimulacao, 1, authz.RoleVendedor))
	assert.Equal(t, stamp, c.UpdatedAt, "no-op must not bump updated_at")
}

func TestClientFunnelSummaryFoldsLegacyLead(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, newFakeUserRepo())
	repo.add(&models.Client{Name: "a", FunnelStage: models.StageLead})
	repo.add(&models.Client{Name: "b", FunnelStage: models.StageAtendimento})
	repo.add(&models.Client{Name: "c", FunnelStage: models.StageVendido})

	summary, err := svc.FunnelSummary()
	require.NoError(t, err)
	assert.Len(t, summary[models.StageAtendimento], 2)
	assert.Len(t, summary[models.StageVendido], 1)
	_, hasLead := summary[models.StageLead]
	assert.False(t, hasLead, "legacy lead bucket must not surface")
	// rows stay untouched
	assert.Equal(t, models.StageLead, repo.clients[1].FunnelStage)
}

func TestClientDeleteDeactivatesPortalAccount(t *testing.T) {
	repo := newFakeClientRepo()
	users := newFakeUserRepo()
	svc := NewClientService(repo, users)

	require.NoError(t, users.Create(&models.User{Email: "maria@example.com", RoleID: authz.RoleCliente, Active: true}))
	c := repo.add(&models.Client{Name: "Maria", Email: "maria@example.com"})

	require.NoError(t, svc.Delete(c.ID))
	assert.Nil(t, repo.clients[c.ID])
	u, _ := users.GetByEmail("maria@example.com")
	require.NotNil(t, u)
	assert.False(t, u.Active)
}

func TestClientDeleteMissing(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), newFakeUserRepo())
	assert.ErrorIs(t, svc.Delete(123), ErrClientNotFound)
}
