package services

import (
	"database/sql"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"
)

// BookingService serves the tourist's booking history and cancellations.
type BookingService struct {
	DB *sql.DB

	BookingRepo      repositories.BookingRepository
	UserRepo         repositories.UserRepository
	NotificationRepo repositories.NotificationRepository
	RequestID        string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// Cancel removes the booking and refunds the charged amount to the tourist's
// wallet, atomically. Someone else's booking reads as not found.
func (s BookingService) Cancel(touristID int64, kind string, bookingID int64) error {
	tx, err := s.db().Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	paid, err := s.BookingRepo.GetPaid(tx, kind, bookingID, touristID)
	if err != nil {
		return err
	}
	if err := s.BookingRepo.Cancel(tx, kind, bookingID, touristID); err != nil {
		return err
	}
	if paid.Sign() > 0 {
		if err := s.UserRepo.CreditWallet(tx, touristID, paid); err != nil {
			return err
		}
	}
	if _, err := s.NotificationRepo.Insert(tx, models.Notification{
		UserID: touristID,
		Role:   domain.RoleTourist,
		Title:  "Booking canceled",
		Body:   "Your " + kind + " booking was canceled and " + paid.StringFixed(2) + " was refunded to your wallet.",
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	utils.LogEvent(s.RequestID, "bookings", "cancel", "kind="+kind)
	return nil
}
