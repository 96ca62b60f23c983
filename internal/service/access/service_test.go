package access

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	guestRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/guest"
	providerRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/provider"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/internal/service/access/models"
	"github.com/m04kA/SMC-CondoService/pkg/ptr"
)

type fakeProviderRepo struct {
	byID    map[int64]*domain.ServiceProvider
	exitErr error
	exits   []int64
}

func (f *fakeProviderRepo) Create(_ context.Context, p *domain.ServiceProvider) (*domain.ServiceProvider, error) {
	created := *p
	created.ID = 11
	return &created, nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id int64) (*domain.ServiceProvider, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	return p, nil
}

func (f *fakeProviderRepo) List(_ context.Context, onlyActive bool, _ uint64) ([]*domain.ServiceProvider, error) {
	result := make([]*domain.ServiceProvider, 0, len(f.byID))
	for _, p := range f.byID {
		if onlyActive && !p.IsActive() {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeProviderRepo) RegisterExit(_ context.Context, id int64) error {
	if f.exitErr != nil {
		return f.exitErr
	}
	f.exits = append(f.exits, id)
	return nil
}

type fakeGuestRepo struct {
	byID    map[int64]*domain.RentalGuest
	exitErr error
	exits   []int64
}

func (f *fakeGuestRepo) Create(_ context.Context, g *domain.RentalGuest) (*domain.RentalGuest, error) {
	created := *g
	created.ID = 21
	created.UnitNumber = "101"
	created.ResidentName = "Иван Петров"
	return &created, nil
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id int64) (*domain.RentalGuest, error) {
	g, ok := f.byID[id]
	if !ok {
		return nil, guestRepo.ErrGuestNotFound
	}
	return g, nil
}

func (f *fakeGuestRepo) List(_ context.Context, onlyActive bool, _ uint64) ([]*domain.RentalGuest, error) {
	result := make([]*domain.RentalGuest, 0, len(f.byID))
	for _, g := range f.byID {
		if onlyActive && !g.IsActive() {
			continue
		}
		result = append(result, g)
	}
	return result, nil
}

func (f *fakeGuestRepo) RegisterExit(_ context.Context, id int64) error {
	if f.exitErr != nil {
		return f.exitErr
	}
	f.exits = append(f.exits, id)
	return nil
}

type fakeUnitRepo struct {
	err error
}

func (f *fakeUnitRepo) GetByID(_ context.Context, _ int64) (*domain.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Unit{ID: 7, UnitNumber: "101"}, nil
}

type fakeAudit struct {
	records int
}

func (f *fakeAudit) Record(_ context.Context, _ int64, _ domain.AuditAction, _, _, _ string) {
	f.records++
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(providers *fakeProviderRepo, guests *fakeGuestRepo, units *fakeUnitRepo, audit *fakeAudit) *Service {
	clock := &fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)}
	return NewService(providers, guests, units, audit, noopLogger{}, clock)
}

func TestRegisterProviderEntry_Success(t *testing.T) {
	audit := &fakeAudit{}
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{}, audit)

	resp, err := svc.RegisterProviderEntry(context.Background(), &models.RegisterProviderRequest{
		Name: "  Сантехник Сергей  ",
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "Сантехник Сергей", resp.Name)
	assert.True(t, resp.Active)
	assert.Equal(t, 1, audit.records)
}

func TestRegisterProviderEntry_Validation(t *testing.T) {
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.RegisterProviderEntry(context.Background(), &models.RegisterProviderRequest{Name: "   "}, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterProviderEntry_UnitNotFound(t *testing.T) {
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{err: unitRepo.ErrUnitNotFound}, &fakeAudit{})

	_, err := svc.RegisterProviderEntry(context.Background(), &models.RegisterProviderRequest{
		Name:   "Электрик",
		UnitID: ptr.Ptr(int64(404)),
	}, 3)

	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestRegisterProviderExit_Success(t *testing.T) {
	exit := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	repo := &fakeProviderRepo{
		byID: map[int64]*domain.ServiceProvider{
			11: {ID: 11, Name: "Сантехник Сергей", EntryTime: exit.Add(-2 * time.Hour), ExitTime: &exit},
		},
	}
	audit := &fakeAudit{}
	svc := newTestService(repo, &fakeGuestRepo{}, &fakeUnitRepo{}, audit)

	resp, err := svc.RegisterProviderExit(context.Background(), 11, 3)

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, []int64{11}, repo.exits)
	assert.Equal(t, 1, audit.records)
}

func TestRegisterProviderExit_AlreadyCheckedOut(t *testing.T) {
	repo := &fakeProviderRepo{exitErr: providerRepo.ErrAlreadyCheckedOut}
	audit := &fakeAudit{}
	svc := newTestService(repo, &fakeGuestRepo{}, &fakeUnitRepo{}, audit)

	_, err := svc.RegisterProviderExit(context.Background(), 11, 3)

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	assert.Zero(t, audit.records)
}

func TestRegisterProviderExit_NotFound(t *testing.T) {
	repo := &fakeProviderRepo{exitErr: providerRepo.ErrProviderNotFound}
	svc := newTestService(repo, &fakeGuestRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.RegisterProviderExit(context.Background(), 404, 3)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRegisterGuestEntry_Success(t *testing.T) {
	audit := &fakeAudit{}
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{}, audit)

	resp, err := svc.RegisterGuestEntry(context.Background(), &models.RegisterGuestRequest{
		Name:   "Мария Смирнова",
		UnitID: 7,
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(21), resp.ID)
	assert.Equal(t, "101", resp.UnitNumber)
	assert.True(t, resp.Active)
	assert.Equal(t, 1, audit.records)
}

func TestRegisterGuestEntry_UnitRequired(t *testing.T) {
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.RegisterGuestEntry(context.Background(), &models.RegisterGuestRequest{Name: "Мария"}, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterGuestEntry_UnitNotFound(t *testing.T) {
	svc := newTestService(&fakeProviderRepo{}, &fakeGuestRepo{}, &fakeUnitRepo{err: unitRepo.ErrUnitNotFound}, &fakeAudit{})

	_, err := svc.RegisterGuestEntry(context.Background(), &models.RegisterGuestRequest{
		Name:   "Мария",
		UnitID: 404,
	}, 3)

	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestRegisterGuestExit_Success(t *testing.T) {
	exit := time.Date(2026, 9, 2, 11, 0, 0, 0, time.Local)
	repo := &fakeGuestRepo{
		byID: map[int64]*domain.RentalGuest{
			21: {ID: 21, Name: "Мария Смирнова", UnitID: 7, UnitNumber: "101", EntryTime: exit.AddDate(0, 0, -1), ExitTime: &exit},
		},
	}
	audit := &fakeAudit{}
	svc := newTestService(&fakeProviderRepo{}, repo, &fakeUnitRepo{}, audit)

	resp, err := svc.RegisterGuestExit(context.Background(), 21, 3)

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, []int64{21}, repo.exits)
	assert.Equal(t, 1, audit.records)
}

func TestRegisterGuestExit_AlreadyCheckedOut(t *testing.T) {
	repo := &fakeGuestRepo{exitErr: guestRepo.ErrAlreadyCheckedOut}
	svc := newTestService(&fakeProviderRepo{}, repo, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.RegisterGuestExit(context.Background(), 21, 3)

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestListProviders_OnlyActive(t *testing.T) {
	exit := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	repo := &fakeProviderRepo{
		byID: map[int64]*domain.ServiceProvider{
			1: {ID: 1, Name: "Сантехник", EntryTime: exit.Add(-time.Hour)},
			2: {ID: 2, Name: "Электрик", EntryTime: exit.Add(-3 * time.Hour), ExitTime: &exit},
		},
	}
	svc := newTestService(repo, &fakeGuestRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	resp, err := svc.ListProviders(context.Background(), true, 50)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Сантехник", resp.Providers[0].Name)
}
