package repositories

import (
	"database/sql"
	"errors"

	intconfig "tripgenie/internal/config"
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
)

type CartRepository struct {
	DB *sql.DB
}

func (r CartRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListLines joins cart items with live product data so totals and stock guards
// always work from current prices, never from what the client cached.
func (r CartRepository) ListLines(touristID int64) ([]models.CartLine, error) {
	rows, err := r.db().Query(`
		SELECT ci.id, ci.product_id, p.name, ci.quantity, p.price, p.currency, p.available_stock
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.tourist_id = ?
		ORDER BY ci.id ASC
	`, touristID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.CartItemID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.Currency, &l.AvailableStock); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r CartRepository) GetItem(touristID, productID int64) (models.CartItem, error) {
	var it models.CartItem
	err := r.db().QueryRow(`
		SELECT id, tourist_id, product_id, quantity FROM cart_items
		WHERE tourist_id=? AND product_id=?
	`, touristID, productID).Scan(&it.ID, &it.TouristID, &it.ProductID, &it.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CartItem{}, domain.NotFoundError{Resource: "cart item"}
		}
		return models.CartItem{}, err
	}
	return it, nil
}

func (r CartRepository) Insert(touristID, productID int64, quantity int) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO cart_items (tourist_id, product_id, quantity) VALUES (?, ?, ?)
	`, touristID, productID, quantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CartRepository) UpdateQuantity(touristID, itemID int64, quantity int) error {
	res, err := r.db().Exec(`
		UPDATE cart_items SET quantity=? WHERE id=? AND tourist_id=?
	`, quantity, itemID, touristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cart item"}
	}
	return nil
}

func (r CartRepository) Delete(touristID, itemID int64) error {
	res, err := r.db().Exec(`DELETE FROM cart_items WHERE id=? AND tourist_id=?`, itemID, touristID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cart item"}
	}
	return nil
}

// Clear empties the cart; runs on the checkout transaction so a failed wallet
// payment leaves the cart untouched.
func (r CartRepository) Clear(q DBTX, touristID int64) error {
	_, err := q.Exec(`DELETE FROM cart_items WHERE tourist_id=?`, touristID)
	return err
}
