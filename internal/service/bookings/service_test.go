package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	total    int64
	err      error

	filters   []domain.BookingsFilter
	deletedID int64
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.filters = append(f.filters, filter)
	return f.bookings, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return f.total, f.err
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    1,
		UserName:  "Ivan",
		UserEmail: "ivan@example.com",
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:      "09:30",
	}
}

func TestDashboard_BlockFilters(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{sampleBooking(1)}}
	svc := NewService(repo, 20, nopLogger{})

	resp, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.LastBookings, 1)
	require.Len(t, resp.WaitingBookings, 1)
	require.Len(t, repo.filters, 2)

	// Ближайшие: date ASC без фильтра по статусу
	lastFilter := repo.filters[0]
	require.True(t, lastFilter.OrderByAsc)
	require.Nil(t, lastFilter.Approved)
	require.Equal(t, uint64(domain.DashboardLimit), lastFilter.Limit)

	// Ожидающие: только неподтвержденные, date DESC
	waitingFilter := repo.filters[1]
	require.False(t, waitingFilter.OrderByAsc)
	require.NotNil(t, waitingFilter.Approved)
	require.False(t, *waitingFilter.Approved)
	require.Equal(t, uint64(domain.DashboardLimit), waitingFilter.Limit)
}

func TestList_Pagination(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{sampleBooking(1), sampleBooking(2)}, total: 45}
	svc := NewService(repo, 20, nopLogger{})

	resp, err := svc.List(context.Background(), 3)

	require.NoError(t, err)
	require.Equal(t, 3, resp.Page)
	require.Equal(t, 20, resp.PageSize)
	require.Equal(t, int64(45), resp.Total)

	filter := repo.filters[0]
	require.Equal(t, uint64(20), filter.Limit)
	require.Equal(t, uint64(40), filter.Offset)
}

func TestList_PageBelowOneNormalized(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, 20, nopLogger{})

	resp, err := svc.List(context.Background(), 0)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Page)
	require.Equal(t, uint64(0), repo.filters[0].Offset)
}

func TestDelete(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, 20, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 7))
	require.Equal(t, int64(7), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, 20, nopLogger{})

	err := svc.Delete(context.Background(), 404)

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, 20, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)

	require.ErrorIs(t, err, ErrBookingNotFound)
}
