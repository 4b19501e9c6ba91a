package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type TouristItineraryRepository struct {
	DB *sql.DB
}

func (r TouristItineraryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const touristItineraryColumns = `id, tourist_id, title, COALESCE(locations,''),
       COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(tags,'')`

func scanTouristItinerary(scan func(dest ...any) error) (models.TouristItinerary, error) {
	var it models.TouristItinerary
	err := scan(&it.ID, &it.TouristID, &it.Title, &it.Locations, &it.StartDate, &it.EndDate, &it.Tags)
	return it, err
}

func (r TouristItineraryRepository) GetByID(id int64) (models.TouristItinerary, error) {
	row := r.db().QueryRow(`SELECT `+touristItineraryColumns+` FROM tourist_itineraries WHERE id=?`, id)
	it, err := scanTouristItinerary(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TouristItinerary{}, domain.NotFoundError{Resource: "tourist itinerary"}
		}
		return models.TouristItinerary{}, err
	}
	return it, nil
}

func (r TouristItineraryRepository) ListByTourist(touristID int64) ([]models.TouristItinerary, error) {
	rows, err := r.db().Query(`
		SELECT `+touristItineraryColumns+` FROM tourist_itineraries WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.TouristItinerary{}
	for rows.Next() {
		it, err := scanTouristItinerary(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r TouristItineraryRepository) Create(it models.TouristItinerary) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO tourist_itineraries (tourist_id, title, locations, start_date, end_date, tags)
		VALUES (?, ?, ?, ?, ?, ?)
	`, it.TouristID, it.Title, it.Locations, it.StartDate, it.EndDate, it.Tags)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TouristItineraryRepository) Update(it models.TouristItinerary) error {
	res, err := r.db().Exec(`
		UPDATE tourist_itineraries
		SET title=?, locations=?, start_date=?, end_date=?, tags=?
		WHERE id=? AND tourist_id=?
	`, it.Title, it.Locations, it.StartDate, it.EndDate, it.Tags, it.ID, it.TouristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tourist itinerary"}
	}
	return nil
}

func (r TouristItineraryRepository) Delete(id, touristID int64) error {
	res, err := r.db().Exec(`DELETE FROM tourist_itineraries WHERE id=? AND tourist_id=?`, id, touristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tourist itinerary"}
	}
	return nil
}
