package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"

	"github.com/shopspring/decimal"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, name, username, email, phone, role, status,
       COALESCE(wallet_balance, 0), COALESCE(preferred_currency, 'USD')`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.Status,
		&u.WalletBalance,
		&u.PreferredCurrency,
	)
	return u, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	u, err := scanUser(r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, err
	}
	return u, nil
}

// GetAuthByLogin fetches a user plus password hash by email or username.
func (r UserRepository) GetAuthByLogin(login string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT `+userColumns+`, password_hash
		FROM users
		WHERE email = ? OR username = ?
	`, login, login).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.Status,
		&u.WalletBalance,
		&u.PreferredCurrency,
		&hash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user"}
		}
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) LoginExists(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, email, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status,
		                   wallet_balance, preferred_currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'active', 0, 'USD', NOW(), NOW())
	`, u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) UpdatePreferredCurrency(id int64, currency string) error {
	res, err := r.db().Exec(`
		UPDATE users SET preferred_currency=?, updated_at=NOW() WHERE id=?
	`, currency, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

// DebitWallet decrements the wallet only when the balance covers the amount.
// Running it on the checkout transaction keeps the debit and the booking
// record atomic.
func (r UserRepository) DebitWallet(q DBTX, touristID int64, amount decimal.Decimal) error {
	res, err := q.Exec(`
		UPDATE users
		SET wallet_balance = wallet_balance - ?, updated_at = NOW()
		WHERE id = ? AND wallet_balance >= ?
	`, amount.StringFixed(2), touristID, amount.StringFixed(2))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.StateError{Reason: "insufficient_balance", Msg: "insufficient wallet balance"}
	}
	return nil
}

func (r UserRepository) CreditWallet(q DBTX, touristID int64, amount decimal.Decimal) error {
	res, err := q.Exec(`
		UPDATE users
		SET wallet_balance = wallet_balance + ?, updated_at = NOW()
		WHERE id = ?
	`, amount.StringFixed(2), touristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
