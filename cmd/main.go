package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/poofware/workorders-service/internal/app"
	"github.com/poofware/workorders-service/internal/config"
	"github.com/poofware/workorders-service/internal/controllers"
	"github.com/poofware/workorders-service/internal/middleware"
	"github.com/poofware/workorders-service/internal/routes"
	"github.com/poofware/workorders-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (stores, services)
	application := app.NewApp(cfg)
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	tenantsCtrl := controllers.NewTenantsController(application.TenantService)
	workOrdersCtrl := controllers.NewWorkOrdersController(application.WorkOrderService)

	// 4) Router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogging)
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Tenants, tenantsCtrl.ListTenantsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.TenantByID, tenantsCtrl.GetTenantHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.WorkOrders, workOrdersCtrl.ListWorkOrdersHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.WorkOrders, workOrdersCtrl.CreateWorkOrderHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkOrderByID, workOrdersCtrl.GetWorkOrderHandler).Methods(http.MethodGet)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
