// Package validation содержит функции валидации входных данных.
//
// Валидация выполняется до любого сетевого вызова: отвергнутый запрос не
// доходит до HTTP-клиента.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrEmptyPhoneNumber возвращается для пустого номера телефона.
	ErrEmptyPhoneNumber = errors.New("phone number is required")
	// ErrInvalidPhoneNumber возвращается для номера в неверном формате.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	// ErrEmptyTitle возвращается для партии цен без названия.
	ErrEmptyTitle = errors.New("title is required")
	// ErrNoPriceDetails возвращается для партии цен без единой позиции.
	ErrNoPriceDetails = errors.New("at least one price detail is required")
	// ErrInvalidPrice возвращается для неположительной цены.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrNoOrderItems возвращается для заказа без позиций.
	ErrNoOrderItems = errors.New("at least one order item is required")
	// ErrInvalidQuantity возвращается для неположительного количества.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrEmptyTypeName возвращается для типа продукта без названия.
	ErrEmptyTypeName = errors.New("type name is required")
)

// IsValidPhoneNumber проверяет вьетнамский мобильный номер: десять цифр,
// начинающихся с нуля, либо тот же номер с префиксом +84.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	if strings.HasPrefix(phone, "+84") {
		phone = "0" + phone[3:]
	}

	if len(phone) != 10 || phone[0] != '0' {
		return false
	}

	for _, ch := range phone {
		if !unicode.IsDigit(ch) {
			return false
		}
	}

	return true
}

// ValidatePhoneNumber возвращает ошибку валидации номера телефона.
func ValidatePhoneNumber(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrEmptyPhoneNumber
	}
	if !IsValidPhoneNumber(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}
