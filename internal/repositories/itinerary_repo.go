package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type ItineraryRepository struct {
	DB *sql.DB
}

func (r ItineraryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const itineraryColumns = `id, guide_id, title, COALESCE(description,''), COALESCE(language,''),
       price, currency, available_seats, COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(status,'active')`

func scanItinerary(scan func(dest ...any) error) (models.Itinerary, error) {
	var it models.Itinerary
	err := scan(
		&it.ID,
		&it.GuideID,
		&it.Title,
		&it.Description,
		&it.Language,
		&it.Price,
		&it.Currency,
		&it.AvailableSeats,
		&it.StartDate,
		&it.EndDate,
		&it.Status,
	)
	return it, err
}

func (r ItineraryRepository) GetByID(id int64) (models.Itinerary, error) {
	row := r.db().QueryRow(`SELECT `+itineraryColumns+` FROM itineraries WHERE id=?`, id)
	it, err := scanItinerary(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Itinerary{}, domain.NotFoundError{Resource: "itinerary"}
		}
		return models.Itinerary{}, err
	}
	return it, nil
}

func (r ItineraryRepository) List() ([]models.Itinerary, error) {
	rows, err := r.db().Query(`SELECT ` + itineraryColumns + ` FROM itineraries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r ItineraryRepository) Create(it models.Itinerary) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO itineraries (guide_id, title, description, language, price, currency, available_seats, start_date, end_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, it.GuideID, it.Title, it.Description, it.Language, it.Price.StringFixed(2), it.Currency, it.AvailableSeats, it.StartDate, it.EndDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ItineraryRepository) Update(it models.Itinerary) error {
	res, err := r.db().Exec(`
		UPDATE itineraries
		SET title=?, description=?, language=?, price=?, currency=?, available_seats=?, start_date=?, end_date=?, status=?, updated_at=NOW()
		WHERE id=?
	`, it.Title, it.Description, it.Language, it.Price.StringFixed(2), it.Currency, it.AvailableSeats, it.StartDate, it.EndDate, it.Status, it.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	return nil
}

func (r ItineraryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM itineraries WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	return nil
}

func (r ItineraryRepository) DecrementSeats(q DBTX, itineraryID int64, qty int) error {
	res, err := q.Exec(`
		UPDATE itineraries
		SET available_seats = available_seats - ?, updated_at = NOW()
		WHERE id = ? AND available_seats >= ?
	`, qty, itineraryID, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.StateError{Reason: "insufficient_seats", Msg: "itinerary is fully booked"}
	}
	return nil
}
