package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/booking"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
)

type fakeBookingRepo struct {
	byID      map[int64]*domain.Booking
	getErr    error
	deleteErr error
	deleted   []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCondoRepo struct{}

func (f *fakeCondoRepo) Get(_ context.Context) (*domain.Condominium, error) {
	return nil, condoRepo.ErrNotConfigured
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

func operator() *domain.User {
	return &domain.User{ID: 2, Role: domain.RoleOperator}
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		5: {ID: 5, BookingDate: "2026-09-15", RoomID: 1, Period: domain.PeriodMorning, UnitNumber: "101"},
	}}
	audit := &fakeAudit{}
	svc := NewService(repo, &fakeCondoRepo{}, audit, noopLogger{})

	err := svc.Cancel(context.Background(), 5, admin())

	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
	assert.Equal(t, 1, audit.records)
}

func TestCancel_OperatorDenied(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{5: {ID: 5}}}
	svc := NewService(repo, &fakeCondoRepo{}, &fakeAudit{}, noopLogger{})

	err := svc.Cancel(context.Background(), 5, operator())

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

// Повторная отмена уже отсутствующей брони возвращает ErrBookingNotFound
func TestCancel_AlreadyAbsent(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	audit := &fakeAudit{}
	svc := NewService(repo, &fakeCondoRepo{}, audit, noopLogger{})

	err := svc.Cancel(context.Background(), 42, admin())

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, repo.deleted)
	assert.Zero(t, audit.records)
}

func TestCancel_GoneBetweenReadAndDelete(t *testing.T) {
	repo := &fakeBookingRepo{
		byID:      map[int64]*domain.Booking{5: {ID: 5, BookingDate: "2026-09-15", Period: domain.PeriodMorning}},
		deleteErr: bookingRepo.ErrBookingNotFound,
	}
	audit := &fakeAudit{}
	svc := NewService(repo, &fakeCondoRepo{}, audit, noopLogger{})

	err := svc.Cancel(context.Background(), 5, admin())

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Zero(t, audit.records)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("connection refused")}
	svc := NewService(repo, &fakeCondoRepo{}, &fakeAudit{}, noopLogger{})

	err := svc.Cancel(context.Background(), 5, admin())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
	svc := NewService(repo, &fakeCondoRepo{}, &fakeAudit{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
