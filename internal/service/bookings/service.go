package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
	"github.com/avlebedev/SBS-BookingWeb/internal/service/bookings/models"
	"github.com/avlebedev/SBS-BookingWeb/pkg/ptr"
)

// Service сервис админских операций над бронированиями
type Service struct {
	bookingRepo BookingRepository
	pageSize    int
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, pageSize int, logger Logger) *Service {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		bookingRepo: bookingRepo,
		pageSize:    pageSize,
		logger:      logger,
	}
}

// Dashboard собирает блоки дашборда: ближайшие бронирования и ожидающие подтверждения
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: fetching blocks")

	// Ближайшие бронирования: date ASC, time ASC
	last, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Limit:      domain.DashboardLimit,
		OrderByAsc: true,
	})
	if err != nil {
		s.logger.Error("Dashboard: failed to fetch last bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	// Ожидающие подтверждения: date DESC, time ASC
	waiting, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Approved:   ptr.Ptr(false),
		Limit:      domain.DashboardLimit,
		OrderByAsc: false,
	})
	if err != nil {
		s.logger.Error("Dashboard: failed to fetch waiting bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Dashboard: fetched %d last, %d waiting", len(last), len(waiting))

	return &models.DashboardResponse{
		LastBookings:    models.FromDomainBookingList(last),
		WaitingBookings: models.FromDomainBookingList(waiting),
	}, nil
}

// List возвращает страницу списка бронирований (нумерация страниц с 1)
func (s *Service) List(ctx context.Context, page int) (*models.BookingListResponse, error) {
	if page < 1 {
		page = 1
	}
	s.logger.Info("List: fetching page=%d", page)

	total, err := s.bookingRepo.Count(ctx)
	if err != nil {
		s.logger.Error("List: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	items, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Limit:      uint64(s.pageSize),
		Offset:     uint64(page-1) * uint64(s.pageSize),
		OrderByAsc: true,
	})
	if err != nil {
		s.logger.Error("List: failed to fetch page=%d: %v", page, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings, page=%d, total=%d", len(items), page, total)

	return &models.BookingListResponse{
		Items:    models.FromDomainBookingList(items),
		Page:     page,
		PageSize: s.pageSize,
		Total:    total,
	}, nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking)
	return &resp, nil
}

// Delete удаляет бронирование (явное админское действие)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
