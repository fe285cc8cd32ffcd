package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rl1809/storefront/internal/adapter/country"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/store"
	"github.com/rl1809/storefront/internal/port"
)

// HTTPHandler exposes the storefront over HTTP. It plays the calling
// collaborator role: checkout preconditions (non-empty cart, valid customer
// info, country check) are enforced here, not inside the cart store.
type HTTPHandler struct {
	catalog   *store.CatalogStore
	cart      *store.CartStore
	ledger    *store.InvoiceLedger
	auth      *store.AuthStore
	countries port.CountryValidator
	logger    *slog.Logger
}

func NewHTTPHandler(catalog *store.CatalogStore, cart *store.CartStore, ledger *store.InvoiceLedger, auth *store.AuthStore, countries port.CountryValidator, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{
		catalog:   catalog,
		cart:      cart,
		ledger:    ledger,
		auth:      auth,
		countries: countries,
		logger:    logger,
	}
}

func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("POST /api/cart/items", h.AddToCart)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.RemoveFromCart)
	mux.HandleFunc("POST /api/cart/clear", h.ClearCart)
	mux.HandleFunc("POST /api/checkout", h.Checkout)
	mux.HandleFunc("GET /api/invoices", h.ListInvoices)
	mux.HandleFunc("GET /api/invoices/{id}", h.GetInvoice)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/logout", h.Logout)
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type cartResponse struct {
	Items      []domain.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	Subtotal   string            `json:"subtotal"`
	Taxes      string            `json:"taxes"`
	Total      string            `json:"total"`
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

type loginRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartSummary())
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, ok := h.catalog.ProductByID(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "product not found"})
		return
	}

	if err := h.cart.AddToCart(r.Context(), product, req.Quantity); err != nil {
		h.writeCartError(w, "add to cart", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartSummary())
}

func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		h.writeCartError(w, "update quantity", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartSummary())
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.cart.RemoveFromCart(r.Context(), productID); err != nil {
		h.writeCartError(w, "remove from cart", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartSummary())
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.ClearCart(r.Context()); err != nil {
		h.writeCartError(w, "clear cart", err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartSummary())
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" || req.Email == "" || req.Country == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "missing required fields"})
		return
	}
	if len(h.cart.Items()) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: "cart is empty"})
		return
	}

	countryName := req.Country
	if h.countries != nil {
		name, err := h.countries.Validate(r.Context(), req.Country)
		if errors.Is(err, country.ErrCountryNotAllowed) {
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: "country is not in the americas region"})
			return
		}
		if err != nil {
			h.logger.Error("country validation failed", "error", err)
			writeJSON(w, http.StatusBadGateway, messageResponse{Message: "country validation unavailable"})
			return
		}
		countryName = name
	}

	info := domain.CustomerInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Country: countryName,
	}

	invoice, err := h.cart.Checkout(r.Context(), info)
	if err != nil {
		h.logger.Error("checkout failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

func (h *HTTPHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	if !h.auth.IsAdmin() {
		writeJSON(w, http.StatusForbidden, messageResponse{Message: "admin only"})
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Invoices())
}

func (h *HTTPHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	if !h.auth.IsAdmin() {
		writeJSON(w, http.StatusForbidden, messageResponse{Message: "admin only"})
		return
	}
	invoice, ok := h.ledger.InvoiceByID(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "invoice not found"})
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	role := domain.RoleCustomer
	if req.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	user, err := h.auth.Login(r.Context(), req.Username, role)
	if err != nil {
		h.logger.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		h.logger.Error("logout failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "logged out"})
}

func (h *HTTPHandler) cartSummary() cartResponse {
	return cartResponse{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		Subtotal:   h.cart.Subtotal().String(),
		Taxes:      h.cart.TotalTax().String(),
		Total:      h.cart.GrandTotal().String(),
	}
}

func (h *HTTPHandler) writeCartError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, store.ErrInsufficientStock) {
		writeJSON(w, http.StatusConflict, messageResponse{Message: "insufficient stock"})
		return
	}
	h.logger.Error(op+" failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid product id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
