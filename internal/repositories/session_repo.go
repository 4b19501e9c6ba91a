package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SessionRepository) Create(s models.PaymentSession) error {
	payload := s.Payload
	if payload == nil {
		payload = json.RawMessage(`{}`)
	}
	_, err := r.db().Exec(`
		INSERT INTO payment_sessions (id, tourist_id, kind, payload, amount, currency,
		                              promo_code, percent_off, payment_type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', NOW())
	`, s.ID, s.TouristID, s.Kind, []byte(payload), s.Amount.StringFixed(2), s.Currency,
		s.PromoCode, s.PercentOff.StringFixed(2), s.PaymentType)
	return err
}

func (r SessionRepository) GetByID(id string) (models.PaymentSession, error) {
	var (
		s       models.PaymentSession
		payload []byte
	)
	err := r.db().QueryRow(`
		SELECT id, tourist_id, kind, payload, amount, currency,
		       COALESCE(promo_code,''), percent_off, payment_type, status,
		       COALESCE(created_at,''), COALESCE(confirmed_at,'')
		FROM payment_sessions WHERE id=?
	`, id).Scan(&s.ID, &s.TouristID, &s.Kind, &payload, &s.Amount, &s.Currency,
		&s.PromoCode, &s.PercentOff, &s.PaymentType, &s.Status, &s.CreatedAt, &s.ConfirmedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentSession{}, domain.NotFoundError{Resource: "payment session"}
		}
		return models.PaymentSession{}, err
	}
	s.Payload = json.RawMessage(payload)
	return s, nil
}

// MarkConfirmed flips pending to confirmed exactly once. The zero-rows case
// tells the caller another webhook delivery already won.
func (r SessionRepository) MarkConfirmed(q DBTX, id string) (bool, error) {
	res, err := q.Exec(`
		UPDATE payment_sessions
		SET status='confirmed', confirmed_at=NOW()
		WHERE id=? AND status='pending'
	`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r SessionRepository) MarkCanceled(id string) error {
	res, err := r.db().Exec(`
		UPDATE payment_sessions SET status='canceled' WHERE id=? AND status='pending'
	`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payment session"}
	}
	return nil
}
