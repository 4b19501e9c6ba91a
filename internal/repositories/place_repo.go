package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type PlaceRepository struct {
	DB *sql.DB
}

func (r PlaceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const placeColumns = `id, governor_id, name, COALESCE(description,''), location,
       ticket_price, currency, COALESCE(opening_hours,'')`

func scanPlace(scan func(dest ...any) error) (models.HistoricalPlace, error) {
	var p models.HistoricalPlace
	err := scan(
		&p.ID,
		&p.GovernorID,
		&p.Name,
		&p.Description,
		&p.Location,
		&p.TicketPrice,
		&p.Currency,
		&p.OpeningHours,
	)
	return p, err
}

func (r PlaceRepository) GetByID(id int64) (models.HistoricalPlace, error) {
	row := r.db().QueryRow(`SELECT `+placeColumns+` FROM historical_places WHERE id=?`, id)
	p, err := scanPlace(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoricalPlace{}, domain.NotFoundError{Resource: "historical place"}
		}
		return models.HistoricalPlace{}, err
	}
	return p, nil
}

func (r PlaceRepository) List() ([]models.HistoricalPlace, error) {
	rows, err := r.db().Query(`SELECT ` + placeColumns + ` FROM historical_places ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.HistoricalPlace{}
	for rows.Next() {
		p, err := scanPlace(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PlaceRepository) Create(p models.HistoricalPlace) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO historical_places (governor_id, name, description, location, ticket_price, currency, opening_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, p.GovernorID, p.Name, p.Description, p.Location, p.TicketPrice.StringFixed(2), p.Currency, p.OpeningHours)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PlaceRepository) Update(p models.HistoricalPlace) error {
	res, err := r.db().Exec(`
		UPDATE historical_places
		SET name=?, description=?, location=?, ticket_price=?, currency=?, opening_hours=?, updated_at=NOW()
		WHERE id=?
	`, p.Name, p.Description, p.Location, p.TicketPrice.StringFixed(2), p.Currency, p.OpeningHours, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "historical place"}
	}
	return nil
}

func (r PlaceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM historical_places WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "historical place"}
	}
	return nil
}
