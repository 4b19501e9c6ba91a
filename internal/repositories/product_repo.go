package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const productColumns = `id, seller_id, name, COALESCE(description,''), price,
       currency, available_stock, COALESCE(status,'active')`

func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var p models.Product
	err := scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Currency,
		&p.AvailableStock,
		&p.Status,
	)
	return p, err
}

func (r ProductRepository) GetByID(id int64) (models.Product, error) {
	row := r.db().QueryRow(`SELECT `+productColumns+` FROM products WHERE id=?`, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, domain.NotFoundError{Resource: "product"}
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r ProductRepository) List() ([]models.Product, error) {
	rows, err := r.db().Query(`SELECT ` + productColumns + ` FROM products ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r ProductRepository) Create(p models.Product) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO products (seller_id, name, description, price, currency, available_stock, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, p.SellerID, p.Name, p.Description, p.Price.StringFixed(2), p.Currency, p.AvailableStock)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ProductRepository) Update(p models.Product) error {
	res, err := r.db().Exec(`
		UPDATE products
		SET name=?, description=?, price=?, currency=?, available_stock=?, status=?, updated_at=NOW()
		WHERE id=?
	`, p.Name, p.Description, p.Price.StringFixed(2), p.Currency, p.AvailableStock, p.Status, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}

func (r ProductRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}

// DecrementStock is the atomic reserve step: the guard in the WHERE clause
// rejects the purchase when stock ran out between quote and commit.
func (r ProductRepository) DecrementStock(q DBTX, productID int64, qty int) error {
	res, err := q.Exec(`
		UPDATE products
		SET available_stock = available_stock - ?, updated_at = NOW()
		WHERE id = ? AND available_stock >= ?
	`, qty, productID, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.StateError{Reason: "insufficient_stock", Msg: "product is out of stock"}
	}
	return nil
}
