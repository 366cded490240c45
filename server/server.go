package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/storefront/cart"
	"github.com/ray-remotestate/storefront/catalog"
	"github.com/ray-remotestate/storefront/handlers"
	"github.com/ray-remotestate/storefront/middlewares"
	"github.com/ray-remotestate/storefront/models"
	"github.com/ray-remotestate/storefront/session"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

// Deps carries the stores the handlers operate on.
type Deps struct {
	Catalog  *catalog.Catalog
	Fetcher  *catalog.Fetcher
	Cart     cart.Store
	Sessions *session.Store
}

func SetupRoutes(deps Deps) *Server {
	branchHandler := handlers.NewBranchHandler(deps.Catalog, deps.Sessions)
	catalogHandler := handlers.NewCatalogHandler(deps.Fetcher, deps.Catalog)
	productHandler := handlers.NewProductHandler(deps.Catalog)
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog)
	orderHandler := handlers.NewOrderHandler(deps.Cart, deps.Catalog, deps.Sessions)
	sessionHandler := handlers.NewSessionHandler(deps.Catalog, deps.Sessions)

	router := mux.NewRouter()
	router.Use(middlewares.SessionMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/register", handlers.Register).Methods("POST")
	router.HandleFunc("/refresh", handlers.RefreshToken).Methods("POST")
	router.HandleFunc("/login", handlers.Login).Methods("POST")
	router.Handle("/logout", middlewares.AuthMiddleware(http.HandlerFunc(handlers.Logout))).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/catalog/refresh", catalogHandler.Refresh).Methods("POST")

	api.HandleFunc("/branches", branchHandler.ListBranches).Methods("GET")
	api.HandleFunc("/branches/{id}", branchHandler.GetBranch).Methods("GET")

	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{productId}", cartHandler.UpdateItem).Methods("PATCH")
	api.HandleFunc("/cart/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")

	api.HandleFunc("/session/navigation", sessionHandler.GetNavigation).Methods("GET")
	api.HandleFunc("/session/navigation", sessionHandler.UpdateNavigation).Methods("PUT")
	api.HandleFunc("/session/checkout", sessionHandler.GetCheckout).Methods("GET")
	api.HandleFunc("/session/checkout", sessionHandler.UpdateCheckout).Methods("PUT")

	api.HandleFunc("/orders", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", orderHandler.GetOrder).Methods("GET")

	// staff only
	admin := api.PathPrefix("/orders").Subrouter()
	admin.Use(middlewares.AuthMiddleware)
	admin.Use(middlewares.RoleBasedMiddleware(models.RoleAdmin))
	admin.HandleFunc("/{id}/status", orderHandler.UpdateOrderStatus).Methods("PATCH")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
