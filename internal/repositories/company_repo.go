package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type CompanyRepository struct {
	DB *sql.DB
}

func (r CompanyRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const companyColumns = `id, advertiser_id, name, COALESCE(website,''), COALESCE(hotline,''), COALESCE(industry,'')`

func scanCompany(scan func(dest ...any) error) (models.Company, error) {
	var c models.Company
	err := scan(&c.ID, &c.AdvertiserID, &c.Name, &c.Website, &c.Hotline, &c.Industry)
	return c, err
}

func (r CompanyRepository) GetByID(id int64) (models.Company, error) {
	row := r.db().QueryRow(`SELECT `+companyColumns+` FROM companies WHERE id=?`, id)
	c, err := scanCompany(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Company{}, domain.NotFoundError{Resource: "company"}
		}
		return models.Company{}, err
	}
	return c, nil
}

func (r CompanyRepository) List() ([]models.Company, error) {
	rows, err := r.db().Query(`SELECT ` + companyColumns + ` FROM companies ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r CompanyRepository) Create(c models.Company) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO companies (advertiser_id, name, website, hotline, industry)
		VALUES (?, ?, ?, ?, ?)
	`, c.AdvertiserID, c.Name, c.Website, c.Hotline, c.Industry)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CompanyRepository) Update(c models.Company) error {
	res, err := r.db().Exec(`
		UPDATE companies SET name=?, website=?, hotline=?, industry=? WHERE id=?
	`, c.Name, c.Website, c.Hotline, c.Industry, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "company"}
	}
	return nil
}

func (r CompanyRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM companies WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "company"}
	}
	return nil
}
