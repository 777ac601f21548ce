package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlebedev/SBS-BookingWeb/internal/domain"
	bookingRepo "github.com/avlebedev/SBS-BookingWeb/internal/infra/storage/booking"
)

// UseCase use case подтверждения бронирования администратором
// Подтверждение ставит задачу отправки письма; отката нет:
// при ошибке постановки в очередь подтверждение остается в силе (at-most-once)
type UseCase struct {
	bookingRepo BookingRepository
	enqueuer    NotificationEnqueuer
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	enqueuer NotificationEnqueuer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		enqueuer:    enqueuer,
		logger:      logger,
	}
}

// Execute подтверждает бронирование и ставит в очередь уведомление
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveBooking: booking id=%d", req.BookingID)

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ApproveBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ApproveBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Помечаем подтвержденным
	if err := uc.bookingRepo.Approve(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ApproveBooking: booking id=%d not found during update", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ApproveBooking: failed to approve booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to approve booking: %v", ErrInternal, err)
	}

	booking.Approved = true

	// 3. Ставим в очередь уведомление с единым DTO-снапшотом
	// Ошибка постановки логируется, но подтверждение не откатывается
	payload := domain.NotificationPayload{
		BookingID: booking.ID,
		UserName:  booking.UserName,
		UserEmail: booking.UserEmail,
		Date:      booking.Date.Format(domain.DateFormat),
		Time:      booking.Time.String(),
	}

	if err := uc.enqueuer.EnqueueConfirmation(ctx, payload); err != nil {
		uc.logger.Error("ApproveBooking: booking id=%d approved, but failed to enqueue notification: %v",
			booking.ID, err)
	} else {
		uc.logger.Info("ApproveBooking: booking id=%d approved, notification enqueued", booking.ID)
	}

	return &Response{
		ID:        booking.ID,
		Approved:  booking.Approved,
		UserName:  booking.UserName,
		UserEmail: booking.UserEmail,
		Date:      payload.Date,
		Time:      payload.Time,
	}, nil
}
