package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront-service/internal/app"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Storefront defines the state transitions the HTTP surface dispatches to.
// The renderer drives the session exclusively through these operations; no
// state logic lives in the handlers themselves.
type Storefront interface {
	GridView() app.GridView
	ApplyFilter(criteria domain.Criteria) app.GridView
	SetPage(page int) app.GridView
	ProductDetail(productID int64) (domain.Product, error)
	CartView() app.CartView
	AddToCart(ctx context.Context, productID int64) app.CartView
	RemoveFromCart(ctx context.Context, productID int64) app.CartView
	AdjustQuantity(ctx context.Context, productID int64, delta int) app.CartView
	Checkout(ctx context.Context) (app.Confirmation, error)
	Theme() string
	ToggleTheme(ctx context.Context) string
}

// HTTPHandler holds dependencies for HTTP handlers.
type HTTPHandler struct {
	storefront Storefront
	validate   *validator.Validate
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(s Storefront) *HTTPHandler {
	return &HTTPHandler{
		storefront: s,
		validate:   validator.New(),
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// --- Storefront Handlers ---

func (h *HTTPHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.storefront.GridView())
}

// FilterInput defines the expected input for applying filter criteria.
type FilterInput struct {
	Query    string  `json:"query" validate:"max=255"`
	Category string  `json:"category" validate:"required,max=255"`
	MaxPrice float64 `json:"max_price" validate:"gte=0"`
}

func (h *HTTPHandler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	var input FilterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	view := h.storefront.ApplyFilter(domain.Criteria{
		Query:    input.Query,
		Category: input.Category,
		MaxPrice: input.MaxPrice,
	})
	respondWithJSON(w, http.StatusOK, view)
}

func (h *HTTPHandler) SetPage(w http.ResponseWriter, r *http.Request) {
	pageStr := chi.URLParam(r, "page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid page number")
		return
	}

	respondWithJSON(w, http.StatusOK, h.storefront.SetPage(page))
}

// --- Product Handlers ---

func (h *HTTPHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "productId")
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || productID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.storefront.ProductDetail(productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondWithError(w, http.StatusNotFound, catalog.ErrProductNotFound.Error())
		} else {
			log.Printf("ERROR: ProductDetail for ID %d failed: %v", productID, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to retrieve product")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// --- Cart Handlers ---

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.storefront.CartView())
}

// AddCartItemInput defines the expected input for adding a product to the cart.
type AddCartItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var input AddCartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// A stale product id leaves the cart unchanged; the response is the
	// current cart either way.
	respondWithJSON(w, http.StatusOK, h.storefront.AddToCart(r.Context(), input.ProductID))
}

// AdjustQuantityInput defines the expected input for a quantity adjustment.
// A zero delta is rejected as meaningless.
type AdjustQuantityInput struct {
	Delta int `json:"delta" validate:"required"`
}

func (h *HTTPHandler) AdjustCartItem(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "productId")
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || productID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input AdjustQuantityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, h.storefront.AdjustQuantity(r.Context(), productID, input.Delta))
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "productId")
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || productID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	respondWithJSON(w, http.StatusOK, h.storefront.RemoveFromCart(r.Context(), productID))
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.storefront.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, cart.ErrEmpty) {
			respondWithError(w, http.StatusConflict, cart.ErrEmpty.Error())
		} else {
			log.Printf("ERROR: Checkout failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to check out")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, confirmation)
}

// --- Theme Handlers ---

// ThemeResponse carries the current theme preference.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

func (h *HTTPHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ThemeResponse{Theme: h.storefront.Theme()})
}

func (h *HTTPHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ThemeResponse{Theme: h.storefront.ToggleTheme(r.Context())})
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/storefront", func(r chi.Router) {
		r.Get("/", h.GetStorefront)      // GET /api/v1/storefront
		r.Put("/filter", h.ApplyFilter)  // PUT /api/v1/storefront/filter
		r.Put("/page/{page}", h.SetPage) // PUT /api/v1/storefront/page/{page}
	})

	r.Get("/api/v1/products/{productId}", h.GetProductByID)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)           // GET  /api/v1/cart
		r.Post("/items", h.AddCartItem) // POST /api/v1/cart/items
		r.Post("/checkout", h.Checkout) // POST /api/v1/cart/checkout
		r.Route("/items/{productId}", func(r chi.Router) {
			r.Patch("/", h.AdjustCartItem)  // PATCH  /api/v1/cart/items/{productId}
			r.Delete("/", h.RemoveCartItem) // DELETE /api/v1/cart/items/{productId}
		})
	})

	r.Route("/api/v1/theme", func(r chi.Router) {
		r.Get("/", h.GetTheme)    // GET /api/v1/theme
		r.Put("/", h.ToggleTheme) // PUT /api/v1/theme
	})
}
