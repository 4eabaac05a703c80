package validation

import (
	"strings"

	"github.com/giakoii/my-store/internal/model"
)

// ValidateOrderCreate проверяет запрос на создание заказа.
func ValidateOrderCreate(req model.OrderCreateRequest) error {
	if err := ValidatePhoneNumber(req.PhoneNumber); err != nil {
		return err
	}
	if len(req.OrderDetails) == 0 {
		return ErrNoOrderItems
	}
	for _, item := range req.OrderDetails {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// ValidatePriceBatch проверяет запрос на публикацию партии цен.
func ValidatePriceBatch(req model.PriceBatchCreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if len(req.PriceDetails) == 0 {
		return ErrNoPriceDetails
	}
	for _, detail := range req.PriceDetails {
		if detail.Price <= 0 {
			return ErrInvalidPrice
		}
	}
	return nil
}

// ValidateProductType проверяет запрос на создание типа продукта.
func ValidateProductType(req model.ProductTypeCreateRequest) error {
	if strings.TrimSpace(req.TypeName) == "" {
		return ErrEmptyTypeName
	}
	return nil
}
