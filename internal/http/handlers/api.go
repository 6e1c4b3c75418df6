package handlers

import (
	"database/sql"
	"time"

	"marketplace/internal/repositories"
	"marketplace/internal/services"

	"go.uber.org/zap"
)

// API bundles the per-family services behind the HTTP boundary. Handlers
// bind payloads, pass the resolved caller explicitly, and map domain
// errors; every access decision lives in the services.
type API struct {
	Auth        services.AuthService
	Dealerships services.DealershipService
	Vehicles    services.VehicleService
	Parts       services.PartService
	Garages     services.GarageService
	Orders      services.OrderService
	PartOrders  services.PartOrderService
	Reviews     services.ReviewService
	Users       services.UserService
	Docs        services.DocsService
}

// NewAPI wires every service onto the shared DB handle.
func NewAPI(db *sql.DB, jwtSecret []byte, tokenTTL time.Duration, log *zap.Logger) API {
	return API{
		Auth: services.AuthService{
			Users:       repositories.UserRepository{DB: db},
			Sessions:    repositories.SessionRepository{DB: db},
			Dealerships: repositories.DealershipRepository{DB: db},
			Secret:      jwtSecret,
			TokenTTL:    tokenTTL,
			Log:         log,
		},
		Dealerships: services.DealershipService{Repo: repositories.DealershipRepository{DB: db}},
		Vehicles:    services.VehicleService{Repo: repositories.VehicleRepository{DB: db}},
		Parts:       services.PartService{Repo: repositories.PartRepository{DB: db}},
		Garages:     services.GarageService{Repo: repositories.GarageRepository{DB: db}},
		Orders:      services.OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}, Log: log},
		PartOrders:  services.PartOrderService{Repo: repositories.PartOrderRepository{DB: db}, Log: log},
		Reviews:     services.ReviewService{Repo: repositories.ReviewRepository{DB: db}},
		Users:       services.UserService{Repo: repositories.UserRepository{DB: db}},
	}
}
