package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type PromoRepository struct {
	DB *sql.DB
}

func (r PromoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const promoColumns = `id, code, percent_off, status, COALESCE(start_date,''), COALESCE(end_date,''),
       usage_limit, times_used`

func scanPromo(scan func(dest ...any) error) (models.PromoCode, error) {
	var p models.PromoCode
	err := scan(&p.ID, &p.Code, &p.PercentOff, &p.Status, &p.StartDate, &p.EndDate, &p.UsageLimit, &p.TimesUsed)
	return p, err
}

// GetByCode does a case-sensitive exact match; promo codes are stored as
// entered by the admin.
func (r PromoRepository) GetByCode(code string) (models.PromoCode, error) {
	row := r.db().QueryRow(`SELECT `+promoColumns+` FROM promo_codes WHERE BINARY code = ?`, code)
	p, err := scanPromo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PromoCode{}, domain.NotFoundError{Resource: "promo code"}
		}
		return models.PromoCode{}, err
	}
	return p, nil
}

func (r PromoRepository) GetByID(id int64) (models.PromoCode, error) {
	row := r.db().QueryRow(`SELECT `+promoColumns+` FROM promo_codes WHERE id=?`, id)
	p, err := scanPromo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PromoCode{}, domain.NotFoundError{Resource: "promo code"}
		}
		return models.PromoCode{}, err
	}
	return p, nil
}

func (r PromoRepository) List() ([]models.PromoCode, error) {
	rows, err := r.db().Query(`SELECT ` + promoColumns + ` FROM promo_codes ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.PromoCode{}
	for rows.Next() {
		p, err := scanPromo(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PromoRepository) Create(p models.PromoCode) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO promo_codes (code, percent_off, status, start_date, end_date, usage_limit, times_used)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`, p.Code, p.PercentOff.StringFixed(2), p.Status, p.StartDate, p.EndDate, p.UsageLimit)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PromoRepository) Update(p models.PromoCode) error {
	res, err := r.db().Exec(`
		UPDATE promo_codes
		SET code=?, percent_off=?, status=?, start_date=?, end_date=?, usage_limit=?
		WHERE id=?
	`, p.Code, p.PercentOff.StringFixed(2), p.Status, p.StartDate, p.EndDate, p.UsageLimit, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "promo code"}
	}
	return nil
}

func (r PromoRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM promo_codes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "promo code"}
	}
	return nil
}

// IncrementUsage moves times_used only while the cap holds, so two confirming
// payments cannot push a code past its limit.
func (r PromoRepository) IncrementUsage(q DBTX, code string) error {
	res, err := q.Exec(`
		UPDATE promo_codes
		SET times_used = times_used + 1
		WHERE BINARY code = ? AND times_used < usage_limit
	`, code)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.StateError{Reason: "usage_limit", Msg: "promo code usage limit reached"}
	}
	return nil
}
