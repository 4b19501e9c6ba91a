package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

func (r ComplaintRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const complaintColumns = `id, tourist_id, title, body, status, COALESCE(reply,''), COALESCE(created_at,'')`

func scanComplaint(scan func(dest ...any) error) (models.Complaint, error) {
	var c models.Complaint
	err := scan(&c.ID, &c.TouristID, &c.Title, &c.Body, &c.Status, &c.Reply, &c.CreatedAt)
	return c, err
}

func (r ComplaintRepository) GetByID(id int64) (models.Complaint, error) {
	row := r.db().QueryRow(`SELECT `+complaintColumns+` FROM complaints WHERE id=?`, id)
	c, err := scanComplaint(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Complaint{}, domain.NotFoundError{Resource: "complaint"}
		}
		return models.Complaint{}, err
	}
	return c, nil
}

func (r ComplaintRepository) List() ([]models.Complaint, error) {
	rows, err := r.db().Query(`SELECT ` + complaintColumns + ` FROM complaints ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r ComplaintRepository) ListByTourist(touristID int64) ([]models.Complaint, error) {
	rows, err := r.db().Query(`
		SELECT `+complaintColumns+` FROM complaints WHERE tourist_id=? ORDER BY id DESC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r ComplaintRepository) Create(c models.Complaint) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO complaints (tourist_id, title, body, status, created_at)
		VALUES (?, ?, ?, 'pending', NOW())
	`, c.TouristID, c.Title, c.Body)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Resolve sets the status and optional admin reply.
func (r ComplaintRepository) Resolve(id int64, status, reply string) error {
	res, err := r.db().Exec(`
		UPDATE complaints SET status=?, reply=? WHERE id=?
	`, status, reply, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "complaint"}
	}
	return nil
}
