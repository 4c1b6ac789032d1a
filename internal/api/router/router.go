package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/productmgt/internal/api/handler"
	m "github.com/RoyceAzure/lab/productmgt/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
}

func NewServer(
	orderHandler *handler.OrderHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
) *Server {
	return &Server{
		OrderHandler:    orderHandler,
		ProductHandler:  productHandler,
		CategoryHandler: categoryHandler,
	}
}

func SetupRouter(server *Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/", server.OrderHandler.GetAllOrders)
			r.Get("/{id}", server.OrderHandler.GetOrderByID)
			r.Get("/status/{status}", server.OrderHandler.GetOrdersByStatus)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/", server.ProductHandler.GetAllProducts)
			r.Get("/in-stock", server.ProductHandler.GetProductsInStock)
			r.Get("/{id}", server.ProductHandler.GetProductByID)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
			r.Get("/category/{categoryId}", server.ProductHandler.GetProductsByCategory)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", server.CategoryHandler.CreateCategory)
			r.Get("/", server.CategoryHandler.GetAllCategories)
		})
	})

	return r
}
