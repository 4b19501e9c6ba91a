package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

func (r ActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const activityColumns = `id, advertiser_id, title, COALESCE(description,''), location,
       COALESCE(date,''), price, currency, available_spots, COALESCE(status,'active')`

func scanActivity(scan func(dest ...any) error) (models.Activity, error) {
	var a models.Activity
	err := scan(
		&a.ID,
		&a.AdvertiserID,
		&a.Title,
		&a.Description,
		&a.Location,
		&a.Date,
		&a.Price,
		&a.Currency,
		&a.AvailableSpots,
		&a.Status,
	)
	return a, err
}

func (r ActivityRepository) GetByID(id int64) (models.Activity, error) {
	row := r.db().QueryRow(`SELECT `+activityColumns+` FROM activities WHERE id=?`, id)
	a, err := scanActivity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Activity{}, domain.NotFoundError{Resource: "activity"}
		}
		return models.Activity{}, err
	}
	return a, nil
}

func (r ActivityRepository) List() ([]models.Activity, error) {
	rows, err := r.db().Query(`SELECT ` + activityColumns + ` FROM activities ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r ActivityRepository) Create(a models.Activity) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO activities (advertiser_id, title, description, location, date, price, currency, available_spots, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, a.AdvertiserID, a.Title, a.Description, a.Location, a.Date, a.Price.StringFixed(2), a.Currency, a.AvailableSpots)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ActivityRepository) Update(a models.Activity) error {
	res, err := r.db().Exec(`
		UPDATE activities
		SET title=?, description=?, location=?, date=?, price=?, currency=?, available_spots=?, status=?, updated_at=NOW()
		WHERE id=?
	`, a.Title, a.Description, a.Location, a.Date, a.Price.StringFixed(2), a.Currency, a.AvailableSpots, a.Status, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "activity"}
	}
	return nil
}

func (r ActivityRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM activities WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "activity"}
	}
	return nil
}

// DecrementSpots reserves spots with the same conditional guard used for
// product stock.
func (r ActivityRepository) DecrementSpots(q DBTX, activityID int64, qty int) error {
	res, err := q.Exec(`
		UPDATE activities
		SET available_spots = available_spots - ?, updated_at = NOW()
		WHERE id = ? AND available_spots >= ?
	`, qty, activityID, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.StateError{Reason: "insufficient_spots", Msg: "activity is fully booked"}
	}
	return nil
}
