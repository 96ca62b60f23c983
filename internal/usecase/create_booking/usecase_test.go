package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CondoService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/booking"
	condoRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/condo"
	unitRepo "github.com/m04kA/SMC-CondoService/internal/infra/storage/unit"
	"github.com/m04kA/SMC-CondoService/pkg/types"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 101
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeUnitRepo struct {
	unit *domain.Unit
	err  error
}

func (f *fakeUnitRepo) GetByID(_ context.Context, _ int64) (*domain.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unit, nil
}

type fakeCondoRepo struct {
	condo *domain.Condominium
	err   error
}

func (f *fakeCondoRepo) Get(_ context.Context) (*domain.Condominium, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.condo, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(bookings *fakeBookingRepo, units *fakeUnitRepo, condos *fakeCondoRepo, audit *fakeAudit) *UseCase {
	uc := NewUseCase(bookings, units, condos, &fakeTxManager{}, audit, noopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:      types.DateString("2026-09-15"),
		RoomID:    1,
		Period:    domain.PeriodMorning,
		UnitID:    7,
		CreatedBy: 3,
	}
}

func testUnit() *domain.Unit {
	return &domain.Unit{ID: 7, UnitNumber: "101", ResidentName: "Иванов"}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	audit := &fakeAudit{}
	uc := newTestUseCase(bookings, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, audit)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, types.DateString("2026-09-15"), resp.BookingDate)
	assert.Equal(t, "101", resp.UnitNumber)
	assert.Equal(t, domain.DefaultPartyRoomName, resp.RoomLabel)
	assert.Equal(t, 1, audit.records)
}

func TestExecute_DefaultRoom(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	req := validRequest()
	req.RoomID = 0

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.RoomID)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	req := validRequest()
	req.Date = types.DateString("2026-08-31")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	req := validRequest()
	req.Period = "evening"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RoomOutOfRange(t *testing.T) {
	condo := &domain.Condominium{PartyRoomCount: 2}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{condo: condo}, &fakeAudit{})

	req := validRequest()
	req.RoomID = 3

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_UnitNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnitRepo{err: unitRepo.ErrUnitNotFound}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestExecute_PeriodNotAvailable(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{BookingDate: "2026-09-15", RoomID: 1, Period: domain.PeriodMorning},
	}}
	audit := &fakeAudit{}
	uc := newTestUseCase(bookings, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, audit)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPeriodNotAvailable)
	assert.Zero(t, audit.records)
}

// Бронь на весь день не предлагается на частично занятый день, даже если
// вторая половина свободна.
func TestExecute_FullDayOnPartiallyTakenDay(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{BookingDate: "2026-09-15", RoomID: 1, Period: domain.PeriodAfternoon},
	}}
	uc := newTestUseCase(bookings, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	req := validRequest()
	req.Period = domain.PeriodFullDay

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPeriodNotAvailable)
}

// Уникальный индекс БД - последний рубеж против гонки: ErrPeriodTaken
// транслируется в тот же ErrPeriodNotAvailable.
func TestExecute_UniqueViolationOnInsert(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrPeriodTaken}
	uc := newTestUseCase(bookings, &fakeUnitRepo{unit: testUnit()}, &fakeCondoRepo{err: condoRepo.ErrNotConfigured}, &fakeAudit{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPeriodNotAvailable)
}
