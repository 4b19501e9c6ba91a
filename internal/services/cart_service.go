package services

import (
	"tripgenie/internal/domain"
	"tripgenie/internal/domain/models"
	"tripgenie/internal/repositories"
	"tripgenie/internal/utils"
)

// CartService owns cart mutations. Quantity limits are re-checked here against
// current stock; the UI disabling its increment button is not trusted.
type CartService struct {
	CartRepo    repositories.CartRepository
	ProductRepo repositories.ProductRepository
	RequestID   string
}

func (s CartService) List(touristID int64) ([]models.CartLine, error) {
	return s.CartRepo.ListLines(touristID)
}

// Add merges qty into the tourist's cart line for the product, capped at the
// product's available stock. Adding at the cap is a no-op, not an error.
func (s CartService) Add(touristID, productID int64, qty int) (models.CartItem, error) {
	if qty < 1 {
		return models.CartItem{}, domain.ValidationError{Field: "quantity", Msg: "quantity must be at least 1"}
	}

	product, err := s.ProductRepo.GetByID(productID)
	if err != nil {
		return models.CartItem{}, err
	}
	if product.AvailableStock < 1 {
		return models.CartItem{}, domain.StateError{Reason: "insufficient_stock", Msg: "product is out of stock"}
	}

	existing, err := s.CartRepo.GetItem(touristID, productID)
	if err != nil && !domain.IsNotFound(err) {
		return models.CartItem{}, err
	}

	if domain.IsNotFound(err) {
		newQty := qty
		if newQty > product.AvailableStock {
			newQty = product.AvailableStock
		}
		id, err := s.CartRepo.Insert(touristID, productID, newQty)
		if err != nil {
			return models.CartItem{}, err
		}
		return models.CartItem{ID: id, TouristID: touristID, ProductID: productID, Quantity: newQty}, nil
	}

	newQty := existing.Quantity + qty
	if newQty > product.AvailableStock {
		newQty = product.AvailableStock
	}
	if newQty == existing.Quantity {
		// Already at the stock cap.
		return existing, nil
	}
	if err := s.CartRepo.UpdateQuantity(touristID, existing.ID, newQty); err != nil {
		return models.CartItem{}, err
	}
	existing.Quantity = newQty
	return existing, nil
}

// SetQuantity replaces the quantity outright; out-of-range values are
// rejected rather than clamped because the client asked for an exact amount.
func (s CartService) SetQuantity(touristID, itemID int64, qty int) error {
	if qty < 1 {
		return domain.ValidationError{Field: "quantity", Msg: "quantity must be at least 1"}
	}

	item, product, err := s.itemWithProduct(touristID, itemID)
	if err != nil {
		return err
	}
	if qty > product.AvailableStock {
		return domain.StateError{Reason: "insufficient_stock", Msg: "quantity exceeds available stock"}
	}
	if qty == item.Quantity {
		return nil
	}
	return s.CartRepo.UpdateQuantity(touristID, itemID, qty)
}

func (s CartService) Remove(touristID, itemID int64) error {
	if err := s.CartRepo.Delete(touristID, itemID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "cart", "remove", "item removed")
	return nil
}

func (s CartService) itemWithProduct(touristID, itemID int64) (models.CartItem, models.Product, error) {
	lines, err := s.CartRepo.ListLines(touristID)
	if err != nil {
		return models.CartItem{}, models.Product{}, err
	}
	for _, l := range lines {
		if l.CartItemID == itemID {
			item := models.CartItem{ID: l.CartItemID, TouristID: touristID, ProductID: l.ProductID, Quantity: l.Quantity}
			product := models.Product{ID: l.ProductID, Price: l.UnitPrice, Currency: l.Currency, AvailableStock: l.AvailableStock}
			return item, product, nil
		}
	}
	return models.CartItem{}, models.Product{}, domain.NotFoundError{Resource: "cart item"}
}
