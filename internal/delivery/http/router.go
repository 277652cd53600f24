package http

import (
	"net/http"

	"go-product-catalog/internal/delivery/http/handler"
	"go-product-catalog/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	productHandler *handler.ProductHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(productHandler *handler.ProductHandler, corsMiddleware *middleware.CORSMiddleware) *Router {
	return &Router{
		router:         mux.NewRouter(),
		productHandler: productHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product routes
	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", r.productHandler.Create).Methods(http.MethodPost)
	products.HandleFunc("", r.productHandler.List).Methods(http.MethodGet)
	products.HandleFunc("/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	products.HandleFunc("/{id}", r.productHandler.Update).Methods(http.MethodPut)
	products.HandleFunc("/{id}", r.productHandler.Delete).Methods(http.MethodDelete)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
