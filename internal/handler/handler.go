// Package handler содержит HTTP-обработчики шлюза магазина.
//
// Шлюз не хранит данных: каждый обработчик связывает клиент API с учётными
// данными запроса и транслирует ответ вышестоящего сервера в JSON для
// браузера.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/giakoii/my-store/internal/api"
	"github.com/giakoii/my-store/internal/credential"
	"github.com/giakoii/my-store/internal/fetcher"
	custommiddleware "github.com/giakoii/my-store/internal/middleware"
	"github.com/giakoii/my-store/internal/model"
	"github.com/giakoii/my-store/internal/service"
	"github.com/giakoii/my-store/internal/session"
	"github.com/giakoii/my-store/internal/validation"
)

// Handler реализует HTTP-обработчики шлюза магазина.
type Handler struct {
	api    *api.Client
	codec  *custommiddleware.CookieCodec
	board  *service.Board
	logger *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(client *api.Client, codec *custommiddleware.CookieCodec, board *service.Board, logger *zap.Logger) *Handler {
	return &Handler{
		api:    client,
		codec:  codec,
		board:  board,
		logger: logger,
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestClient возвращает клиент API, привязанный к учётным данным запроса.
func (h *Handler) requestClient(r *http.Request) (*api.Client, credential.Store) {
	store, ok := custommiddleware.StoreFromContext(r.Context())
	if !ok {
		store = credential.NewMemoryStore()
	}
	return h.api.WithStore(store), store
}

// respondError транслирует ошибку клиента API в HTTP-статус шлюза.
// Сообщение вышестоящего сервера сохраняется, где оно есть.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	kind, msg := api.Classify(err)

	status := http.StatusBadGateway
	switch kind {
	case api.KindHTTP:
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Status
		}
	case api.KindBusiness:
		status = http.StatusBadRequest
	case api.KindTimeout:
		status = http.StatusGatewayTimeout
	}

	h.logger.Error(op, zap.Error(err), zap.String("kind", string(kind)))
	writeJSON(w, status, errorResponse{Message: msg})
}

func pageParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

type loginRequest struct {
	PhoneNumber   string `json:"phoneNumber"`
	AdminPassword string `json:"adminPassword"`
}

// Login выполняет вход по номеру телефона и выписывает cookie с учётными данными.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	// Вход всегда начинается с чистого хранилища: прежний cookie не участвует.
	store := credential.NewMemoryStore()
	client := h.api.WithStore(store)
	sessions := session.NewManager(client, store)
	flow := service.NewAuthFlow(client, sessions)

	sess, err := flow.LoginWithPhone(r.Context(), req.PhoneNumber, req.AdminPassword)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrEmptyPhoneNumber), errors.Is(err, validation.ErrInvalidPhoneNumber):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrAdminPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		default:
			_, msg := api.Classify(err)
			h.logger.Error("login error", zap.Error(err))
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: msg})
		}
		return
	}

	if err := h.codec.WriteCookie(w, store); err != nil {
		h.logger.Error("write auth cookie", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "login failed"})
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Logout очищает cookie с учётными данными. Операция всегда успешна:
// учётные данные живут только в cookie, серверного состояния у шлюза нет.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.codec.ClearCookie(w)
	w.WriteHeader(http.StatusOK)
}

// Session возвращает текущего пользователя по cookie запроса.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	client, store := h.requestClient(r)

	sessions := session.NewManager(client, store)
	sessions.Init(r.Context())

	sess, ok := sessions.Current()
	if !ok {
		// Отвергнутый токен очищен менеджером, cookie тоже снимается.
		h.codec.ClearCookie(w)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "not authenticated"})
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// MyOrders возвращает страницу заказов текущего пользователя.
func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	client, _ := h.requestClient(r)

	page := pageParam(r, "page", 1)
	pageSize := pageParam(r, "pageSize", fetcher.DefaultOrdersPageSize)

	result, err := client.MyOrders(r.Context(), page, pageSize)
	if err != nil {
		h.respondError(w, "get my orders", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CreateOrder создаёт заказ от имени текущего пользователя.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := validation.ValidateOrderCreate(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	client, _ := h.requestClient(r)
	created, err := client.CreateOrder(r.Context(), req)
	if err != nil {
		h.respondError(w, "create order", err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// OrderDetail возвращает заказ текущего пользователя по идентификатору.
func (h *Handler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(urlParam(r, "orderID"), 10, 64)
	if err != nil || orderID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order id"})
		return
	}

	client, _ := h.requestClient(r)
	detail, err := client.OrderDetail(r.Context(), orderID)
	if err != nil {
		h.respondError(w, "get order detail", err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// AdminOrders возвращает страницу всех заказов с фильтрами администратора.
func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	client, _ := h.requestClient(r)

	filter := api.AdminOrderFilter{
		FromDate: r.URL.Query().Get("fromDate"),
		ToDate:   r.URL.Query().Get("toDate"),
	}
	if raw := r.URL.Query().Get("userId"); raw != "" {
		if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.UserID = userID
		}
	}

	page := pageParam(r, "page", 1)
	pageSize := pageParam(r, "pageSize", fetcher.DefaultAdminOrdersPageSize)

	result, err := client.AdminOrders(r.Context(), filter, page, pageSize)
	if err != nil {
		h.respondError(w, "get admin orders", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AdminOrderDetail возвращает заказ в административном представлении.
func (h *Handler) AdminOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(urlParam(r, "orderID"), 10, 64)
	if err != nil || orderID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order id"})
		return
	}

	client, _ := h.requestClient(r)
	detail, err := client.AdminOrderDetail(r.Context(), orderID)
	if err != nil {
		h.respondError(w, "get admin order detail", err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// PriceBatches возвращает страницу партий цен за указанный период.
func (h *Handler) PriceBatches(w http.ResponseWriter, r *http.Request) {
	client, _ := h.requestClient(r)

	dates := api.DateRange{
		FromDate: r.URL.Query().Get("fromDate"),
		ToDate:   r.URL.Query().Get("toDate"),
	}
	page := pageParam(r, "page", 1)
	pageSize := pageParam(r, "pageSize", fetcher.DefaultPricingPageSize)

	result, err := client.PriceBatches(r.Context(), dates, page, pageSize)
	if err != nil {
		h.respondError(w, "get price batches", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CreatePriceBatch публикует партию цен.
func (h *Handler) CreatePriceBatch(w http.ResponseWriter, r *http.Request) {
	var req model.PriceBatchCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := validation.ValidatePriceBatch(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	client, _ := h.requestClient(r)
	created, err := client.CreatePriceBatch(r.Context(), req)
	if err != nil {
		h.respondError(w, "create price batch", err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// ProductTypes возвращает список типов продукта.
func (h *Handler) ProductTypes(w http.ResponseWriter, r *http.Request) {
	client, _ := h.requestClient(r)

	types, err := client.ProductTypes(r.Context())
	if err != nil {
		h.respondError(w, "get product types", err)
		return
	}

	writeJSON(w, http.StatusOK, types)
}

// CreateProductType создаёт новый тип продукта.
func (h *Handler) CreateProductType(w http.ResponseWriter, r *http.Request) {
	var req model.ProductTypeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if err := validation.ValidateProductType(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	client, _ := h.requestClient(r)
	created, err := client.CreateProductType(r.Context(), req)
	if err != nil {
		h.respondError(w, "create product type", err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// Board возвращает последний снимок публичной доски цен.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	snap := h.board.Snapshot()

	resp := struct {
		Data       []model.PriceBatch `json:"data"`
		TotalCount int                `json:"totalCount"`
		Stale      bool               `json:"stale"`
	}{
		Data:       snap.Data,
		TotalCount: snap.TotalCount,
		Stale:      snap.Err != nil,
	}

	writeJSON(w, http.StatusOK, resp)
}
