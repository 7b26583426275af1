package utils

import (
	"github.com/hungerbites/backend/models"
)

// OrderItemRequest is one requested line of a new order. Only the product
// reference and quantity are trusted from the client; price and name always
// come from the product row.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// BuildOrderItems validates requested items against the given product map
// and builds the immutable order-item snapshot. Returns the snapshot and the
// items price (sum of server-side price x quantity). Fails with a
// MissingProductError or StockError on the first bad line.
func BuildOrderItems(items []OrderItemRequest, products map[uint]*models.Product) ([]models.OrderItem, float64, error) {
	snapshot := make([]models.OrderItem, 0, len(items))
	var itemsPrice float64

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok || !product.IsActive {
			return nil, 0, &MissingProductError{ProductID: item.ProductID}
		}
		if product.Stock < item.Quantity {
			return nil, 0, &StockError{
				ProductID: product.ID,
				Name:      product.Name,
				Available: product.Stock,
				Requested: item.Quantity,
			}
		}
		snapshot = append(snapshot, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		itemsPrice += product.Price * float64(item.Quantity)
	}

	return snapshot, itemsPrice, nil
}
