package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/leafgauge/leafgauge/internal/database"
	"github.com/leafgauge/leafgauge/internal/log"
	"github.com/leafgauge/leafgauge/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	httpConfig     config.HTTPData
	chartConfig    config.ChartData
	Server         http.Server
	DB             *database.Client
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		logger:         logger,
	}

	// Load configuration
	cfgData, err := configProvider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %v", err)
	}

	ctrl.httpConfig = cfgData.HTTP
	ctrl.chartConfig = cfgData.Chart

	if cfgData.Storage.Postgres == nil || cfgData.Storage.Postgres.ConnectionString == "" {
		return nil, fmt.Errorf("no postgres storage configured - the REST server requires a database")
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if ctrl.httpConfig.ListenAddr == "" {
		logger.Info("http.listen-addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.httpConfig.ListenAddr = "0.0.0.0"
	}

	ctrl.DB = database.NewClient(cfgData.Storage.Postgres.ConnectionString, logger)
	if err := ctrl.DB.Connect(); err != nil {
		return nil, fmt.Errorf("REST server could not connect to database: %v", err)
	}
	if err := ctrl.DB.Migrate(); err != nil {
		return nil, fmt.Errorf("REST server could not migrate database schema: %v", err)
	}

	// Create handlers
	ctrl.handlers = NewHandlers(ctrl)

	// Set up router
	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.httpConfig.ListenAddr, ctrl.httpConfig.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.httpConfig.Cert != "" && c.httpConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.httpConfig.Cert, c.httpConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", c.handlers.GetHealth).Methods(http.MethodGet)

	api.HandleFunc("/plants", c.handlers.GetPlants).Methods(http.MethodGet)
	api.HandleFunc("/plants", c.handlers.CreatePlant).Methods(http.MethodPost)
	api.HandleFunc("/plants/{id}", c.handlers.GetPlant).Methods(http.MethodGet)
	api.HandleFunc("/plants/{id}", c.handlers.UpdatePlant).Methods(http.MethodPut)
	api.HandleFunc("/plants/{id}", c.handlers.DeletePlant).Methods(http.MethodDelete)

	api.HandleFunc("/locations", c.handlers.GetLocations).Methods(http.MethodGet)
	api.HandleFunc("/locations", c.handlers.CreateLocation).Methods(http.MethodPost)
	api.HandleFunc("/locations/{id}", c.handlers.GetLocation).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", c.handlers.UpdateLocation).Methods(http.MethodPut)
	api.HandleFunc("/locations/{id}", c.handlers.DeleteLocation).Methods(http.MethodDelete)

	api.HandleFunc("/plants/{id}/measurements", c.handlers.GetMeasurements).Methods(http.MethodGet)
	api.HandleFunc("/plants/{id}/measurements", c.handlers.CreateMeasurement).Methods(http.MethodPost)
	api.HandleFunc("/measurements/{id}", c.handlers.UpdateMeasurement).Methods(http.MethodPut)
	api.HandleFunc("/measurements/{id}", c.handlers.DeleteMeasurement).Methods(http.MethodDelete)

	api.HandleFunc("/plants/{id}/chart", c.handlers.GetChart).Methods(http.MethodGet)
	api.HandleFunc("/plants/{id}/hover", c.handlers.GetHover).Methods(http.MethodGet)
	api.HandleFunc("/plants/{id}/frequency", c.handlers.GetFrequency).Methods(http.MethodGet)
	api.HandleFunc("/plants/{id}/calibration", c.handlers.GetCalibration).Methods(http.MethodGet)
	api.HandleFunc("/calibration", c.handlers.GetAllCalibrations).Methods(http.MethodGet)

	return router
}
