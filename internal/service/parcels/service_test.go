package parcels

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	parcelRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/parcel"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/internal/service/parcels/models"
)

type fakeParcelRepo struct {
	byID       map[int64]*domain.Parcel
	markErr    error
	collected  []int64
	createCall *domain.Parcel
}

func (f *fakeParcelRepo) Create(_ context.Context, p *domain.Parcel) (*domain.Parcel, error) {
	created := *p
	created.ID = 9
	created.UnitNumber = "101"
	f.createCall = &created
	return &created, nil
}

func (f *fakeParcelRepo) GetByID(_ context.Context, id int64) (*domain.Parcel, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, parcelRepo.ErrParcelNotFound
	}
	return p, nil
}

func (f *fakeParcelRepo) List(_ context.Context, _ *domain.ParcelStatus, _ uint64) ([]*domain.Parcel, error) {
	result := make([]*domain.Parcel, 0, len(f.byID))
	for _, p := range f.byID {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakeParcelRepo) MarkCollected(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.collected = append(f.collected, id)
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

func newTestService(parcels *fakeParcelRepo, units *fakeUnitRepo, audit *fakeAudit) *Service {
	clock := &fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)}
	return NewService(parcels, units, audit, noopLogger{}, clock)
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeParcelRepo{}
	audit := &fakeAudit{}
	svc := newTestService(repo, &fakeUnitRepo{}, audit)

	resp, err := svc.Register(context.Background(), &models.RegisterParcelRequest{
		Description: "Коробка Ozon",
		UnitID:      7,
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, string(domain.ParcelPending), resp.Status)
	// Номер протокола генерируется автоматически
	assert.Len(t, resp.ProtocolNumber, 8)
	assert.Equal(t, 1, audit.records)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(&fakeParcelRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.Register(context.Background(), &models.RegisterParcelRequest{UnitID: 7}, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), &models.RegisterParcelRequest{Description: "Коробка"}, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_UnitNotFound(t *testing.T) {
	svc := newTestService(&fakeParcelRepo{}, &fakeUnitRepo{err: unitRepo.ErrUnitNotFound}, &fakeAudit{})

	_, err := svc.Register(context.Background(), &models.RegisterParcelRequest{
		Description: "Коробка",
		UnitID:      404,
	}, 3)

	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestCollect_Success(t *testing.T) {
	collectedAt := time.Date(2026, 9, 1, 18, 0, 0, 0, time.Local)
	repo := &fakeParcelRepo{byID: map[int64]*domain.Parcel{
		9: {
			ID:             9,
			ProtocolNumber: "A1B2C3D4",
			Status:         domain.ParcelCollected,
			ArrivedAt:      collectedAt.Add(-2 * time.Hour),
			CollectedAt:    &collectedAt,
			UnitNumber:     "101",
		},
	}}
	audit := &fakeAudit{}
	svc := newTestService(repo, &fakeUnitRepo{}, audit)

	resp, err := svc.Collect(context.Background(), 9, 3)

	require.NoError(t, err)
	assert.Equal(t, []int64{9}, repo.collected)
	assert.Equal(t, string(domain.ParcelCollected), resp.Status)
	require.NotNil(t, resp.CollectedAt)
	assert.Equal(t, 1, audit.records)
}

// Выдать посылку можно только один раз
func TestCollect_AlreadyCollected(t *testing.T) {
	repo := &fakeParcelRepo{markErr: parcelRepo.ErrAlreadyCollected}
	audit := &fakeAudit{}
	svc := newTestService(repo, &fakeUnitRepo{}, audit)

	_, err := svc.Collect(context.Background(), 9, 3)

	assert.ErrorIs(t, err, ErrAlreadyCollected)
	assert.Zero(t, audit.records)
}

func TestCollect_NotFound(t *testing.T) {
	repo := &fakeParcelRepo{markErr: parcelRepo.ErrParcelNotFound}
	svc := newTestService(repo, &fakeUnitRepo{}, &fakeAudit{})

	_, err := svc.Collect(context.Background(), 9, 3)

	assert.ErrorIs(t, err, ErrParcelNotFound)
}

func TestList_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeParcelRepo{}, &fakeUnitRepo{}, &fakeAudit{})

	bogus := "shipped"
	_, err := svc.List(context.Background(), &bogus, 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
