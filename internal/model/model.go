// Package model содержит доменные сущности клиента магазина.
package model

// Role описывает роль аутентифицированного пользователя.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// Session представляет текущего аутентифицированного пользователя.
type Session struct {
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
}

// TokenPair содержит токены доступа и подсказку о сроке действия.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// LoginRequest описывает параметры обмена учётных данных на токен.
type LoginRequest struct {
	GrantType   string
	Username    string
	Password    string
	PhoneNumber string
}

// Page описывает страницу пагинированного списка, возвращаемую сервером.
type Page[T any] struct {
	Data            []T  `json:"data"`
	TotalCount      int  `json:"totalCount"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// OrderSummary описывает заказ в списке заказов пользователя.
type OrderSummary struct {
	OrderID     int64   `json:"orderId"`
	OrderDate   string  `json:"orderDate"`
	TotalAmount float64 `json:"totalAmount"`
}

// OrderItem описывает одну позицию заказа.
type OrderItem struct {
	OrderDetailID   int64   `json:"orderDetailId"`
	ProductTypeID   int64   `json:"productTypeId"`
	ProductTypeName string  `json:"productTypeName"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	TotalPrice      float64 `json:"totalPrice"`
}

// OrderDetail описывает заказ с позициями и данными покупателя.
type OrderDetail struct {
	OrderID     int64       `json:"orderId"`
	OrderDate   string      `json:"orderDate"`
	TotalAmount float64     `json:"totalAmount"`
	UserName    string      `json:"userName"`
	PhoneNumber string      `json:"phoneNumber"`
	OrderItems  []OrderItem `json:"orderItems"`
}

// AdminOrderSummary описывает заказ в административном списке.
type AdminOrderSummary struct {
	OrderID     int64   `json:"orderId"`
	OrderDate   string  `json:"orderDate"`
	TotalAmount float64 `json:"totalAmount"`
	UserID      int64   `json:"userId"`
	UserName    string  `json:"userName"`
	PhoneNumber string  `json:"phoneNumber"`
	TotalItems  int     `json:"totalItems"`
}

// AdminOrderItem описывает позицию заказа в административном представлении.
type AdminOrderItem struct {
	OrderDetailID   int64   `json:"orderDetailId"`
	ProductTypeID   int64   `json:"productTypeId"`
	ProductTypeName string  `json:"productTypeName"`
	ProductName     string  `json:"productName"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	TotalPrice      float64 `json:"totalPrice"`
}

// AdminOrderDetail описывает заказ в административном представлении с агрегатами.
type AdminOrderDetail struct {
	OrderID          int64            `json:"orderId"`
	OrderDate        string           `json:"orderDate"`
	TotalAmount      float64          `json:"totalAmount"`
	UserID           int64            `json:"userId"`
	UserName         string           `json:"userName"`
	PhoneNumber      string           `json:"phoneNumber"`
	UserCreatedAt    string           `json:"userCreatedAt"`
	UserRole         string           `json:"userRole"`
	OrderItems       []AdminOrderItem `json:"orderItems"`
	TotalItemsCount  int              `json:"totalItemsCount"`
	AverageItemPrice float64          `json:"averageItemPrice"`
}

// OrderCreateItem описывает позицию создаваемого заказа.
type OrderCreateItem struct {
	ProductTypeID int64   `json:"orderTypeId"`
	Quantity      float64 `json:"quantity"`
}

// OrderCreateRequest описывает запрос на создание заказа.
type OrderCreateRequest struct {
	PhoneNumber  string            `json:"phoneNumber"`
	OrderDetails []OrderCreateItem `json:"orderDetails,omitempty"`
}

// PriceDetail описывает цену одного типа продукта внутри прайс-партии.
type PriceDetail struct {
	PriceID       int64   `json:"priceId"`
	ProductTypeID int64   `json:"productTypeId"`
	TypeName      string  `json:"typeName"`
	Price         float64 `json:"price"`
}

// PriceBatch описывает опубликованную партию цен. После создания не изменяется.
type PriceBatch struct {
	PricingBatchID int64         `json:"pricingBatchId"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	CreatedAt      string        `json:"createdAt"`
	PriceDetails   []PriceDetail `json:"priceDetails"`
}

// PriceBatchCreateDetail описывает цену типа продукта в создаваемой партии.
type PriceBatchCreateDetail struct {
	ProductTypeID int64   `json:"productTypeId"`
	Price         float64 `json:"price"`
}

// PriceBatchCreateRequest описывает запрос на публикацию партии цен.
type PriceBatchCreateRequest struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	PriceDetails []PriceBatchCreateDetail `json:"priceDetails"`
}

// ProductType описывает тип продукта, на который ссылаются цены и позиции заказов.
type ProductType struct {
	ProductTypeID int64  `json:"productTypeId"`
	TypeName      string `json:"typeName"`
}

// ProductTypeCreateRequest описывает запрос на создание типа продукта.
type ProductTypeCreateRequest struct {
	TypeName string `json:"typeName"`
}

// UserRoleResponse описывает ответ проверки роли по номеру телефона.
type UserRoleResponse struct {
	UserRole Role `json:"userRole"`
}
