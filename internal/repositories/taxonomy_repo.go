package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

// Categories, tags and historical tags share one simple name-table shape.

type CategoryRepository struct {
	DB *sql.DB
}

func (r CategoryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CategoryRepository) GetByID(id int64) (models.Category, error) {
	var c models.Category
	err := r.db().QueryRow(`SELECT id, name FROM categories WHERE id=?`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, domain.NotFoundError{Resource: "category"}
		}
		return models.Category{}, err
	}
	return c, nil
}

func (r CategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db().Query(`SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r CategoryRepository) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CategoryRepository) Update(id int64, name string) error {
	res, err := r.db().Exec(`UPDATE categories SET name=? WHERE id=?`, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "category"}
	}
	return nil
}

func (r CategoryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM categories WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "category"}
	}
	return nil
}

type TagRepository struct {
	DB *sql.DB
}

func (r TagRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TagRepository) GetByID(id int64) (models.Tag, error) {
	var t models.Tag
	err := r.db().QueryRow(`SELECT id, name FROM tags WHERE id=?`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, domain.NotFoundError{Resource: "tag"}
		}
		return models.Tag{}, err
	}
	return t, nil
}

func (r TagRepository) List() ([]models.Tag, error) {
	rows, err := r.db().Query(`SELECT id, name FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r TagRepository) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO tags (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TagRepository) Update(id int64, name string) error {
	res, err := r.db().Exec(`UPDATE tags SET name=? WHERE id=?`, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tag"}
	}
	return nil
}

func (r TagRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM tags WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "tag"}
	}
	return nil
}

type HistoricalTagRepository struct {
	DB *sql.DB
}

func (r HistoricalTagRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r HistoricalTagRepository) GetByID(id int64) (models.HistoricalTag, error) {
	var t models.HistoricalTag
	err := r.db().QueryRow(`
		SELECT id, name, COALESCE(period,'') FROM historical_tags WHERE id=?
	`, id).Scan(&t.ID, &t.Name, &t.Period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoricalTag{}, domain.NotFoundError{Resource: "historical tag"}
		}
		return models.HistoricalTag{}, err
	}
	return t, nil
}

func (r HistoricalTagRepository) List() ([]models.HistoricalTag, error) {
	rows, err := r.db().Query(`SELECT id, name, COALESCE(period,'') FROM historical_tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.HistoricalTag{}
	for rows.Next() {
		var t models.HistoricalTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Period); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r HistoricalTagRepository) Create(t models.HistoricalTag) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO historical_tags (name, period) VALUES (?, ?)`, t.Name, t.Period)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HistoricalTagRepository) Update(t models.HistoricalTag) error {
	res, err := r.db().Exec(`UPDATE historical_tags SET name=?, period=? WHERE id=?`, t.Name, t.Period, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "historical tag"}
	}
	return nil
}

func (r HistoricalTagRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM historical_tags WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "historical tag"}
	}
	return nil
}
