package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	"github.com/m04kA/SMC-CondoService/internal/service/settings/models"
)

type fakeCondoRepo struct {
	condo *domain.Condominium
	err   error
	saved *domain.Condominium
}

func (f *fakeCondoRepo) Get(_ context.Context) (*domain.Condominium, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.condo, nil
}

func (f *fakeCondoRepo) Save(_ context.Context, c *domain.Condominium) (*domain.Condominium, error) {
	saved := *c
	saved.ID = 1
	f.saved = &saved
	return &saved, nil
}

type fakeAudit struct {
	records int
}

func (f *fakeAudit) Record(_ context.Context, _ int64, _ domain.AuditAction, _, _, _ string) {
	f.records++
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func admin() *domain.User {
	return &domain.User{ID: 1, Role: domain.RoleAdmin}
}

func validUpdate() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		Name:              "Residencial Jardim",
		TowerCount:        2,
		PartyRoomName:     "Салон",
		PartyRoomCapacity: 40,
		PartyRoomCount:    2,
		PartyRoomNaming:   "letters",
	}
}

// Отсутствие настроек не ошибка: отдаются значения по умолчанию
func TestGet_NotConfigured(t *testing.T) {
	svc := NewService(&fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{}, noopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.Configured)
	assert.Equal(t, domain.DefaultPartyRoomName, resp.PartyRoomName)
	assert.Equal(t, 1, resp.PartyRoomCount)
}

func TestGet_Configured(t *testing.T) {
	condo := &domain.Condominium{
		ID:              1,
		Name:            "Residencial Jardim",
		TowerCount:      2,
		PartyRoomName:   "Салон",
		PartyRoomCount:  2,
		PartyRoomNaming: domain.NamingLetters,
	}
	svc := NewService(&fakeCondoRepo{condo: condo}, &fakeAudit{}, noopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Configured)
	assert.Equal(t, []string{"Салон A", "Салон B"}, resp.RoomLabels)
}

func TestUpdate_OperatorDenied(t *testing.T) {
	repo := &fakeCondoRepo{}
	svc := NewService(repo, &fakeAudit{}, noopLogger{})

	_, err := svc.Update(context.Background(), validUpdate(), &domain.User{ID: 2, Role: domain.RoleOperator})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.saved)
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeCondoRepo{}
	audit := &fakeAudit{}
	svc := NewService(repo, audit, noopLogger{})

	resp, err := svc.Update(context.Background(), validUpdate(), admin())

	require.NoError(t, err)
	assert.True(t, resp.Configured)
	assert.Equal(t, 2, resp.PartyRoomCount)
	require.NotNil(t, repo.saved)
	assert.Equal(t, domain.NamingLetters, repo.saved.PartyRoomNaming)
	assert.Equal(t, 1, audit.records)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeCondoRepo{}, &fakeAudit{}, noopLogger{})

	tests := []struct {
		name   string
		modify func(r *models.UpdateSettingsRequest)
	}{
		{"empty name", func(r *models.UpdateSettingsRequest) { r.Name = " " }},
		{"zero towers", func(r *models.UpdateSettingsRequest) { r.TowerCount = 0 }},
		{"zero capacity", func(r *models.UpdateSettingsRequest) { r.PartyRoomCapacity = 0 }},
		{"too many rooms", func(r *models.UpdateSettingsRequest) { r.PartyRoomCount = domain.MaxPartyRoomCount + 1 }},
		{"unknown naming", func(r *models.UpdateSettingsRequest) { r.PartyRoomNaming = "roman" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdate()
			tt.modify(req)

			_, err := svc.Update(context.Background(), req, admin())
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
