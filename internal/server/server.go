package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	saltmux "github.com/goto/salt/mux"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
	"github.com/goto/tagger/internal/server/handlers"
	"github.com/goto/tagger/internal/server/web"
)

type Config struct {
	Host    string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port    int    `yaml:"port" mapstructure:"port" default:"8080"`
	BaseUrl string `yaml:"baseurl" mapstructure:"baseurl" default:"localhost:8080"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

// Serve runs the HTTP server until ctx is cancelled. It hosts the JSON API
// under /v1beta1 and the browser UI at the root.
func Serve(
	ctx context.Context,
	config Config,
	logger log.Logger,
	assetService *asset.Service,
	referenceService *reference.Service,
) error {
	router, err := NewRouter(logger, assetService, referenceService)
	if err != nil {
		return err
	}

	logger.Info("starting server", "addr", config.addr())
	if err := saltmux.Serve(
		ctx,
		saltmux.WithHTTPTarget(config.addr(), &http.Server{
			Handler:      gorillahandlers.CompressHandler(router),
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}),
		saltmux.WithGracePeriod(5*time.Second),
	); !errors.Is(err, context.Canceled) {
		logger.Error("mux serve error", "err", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewRouter wires every handler. Split out from Serve so tests can drive
// the full routing table with httptest.
func NewRouter(
	logger log.Logger,
	assetService *asset.Service,
	referenceService *reference.Service,
) (*mux.Router, error) {
	assetHandler := handlers.NewAssetHandler(logger, assetService)
	countryHandler := handlers.NewReferenceHandler(logger, referenceService, reference.KindCountry)
	manufacturerHandler := handlers.NewReferenceHandler(logger, referenceService, reference.KindManufacturer)
	qrHandler := handlers.NewQRHandler(logger)

	webHandler, err := web.NewHandler(logger, assetService, referenceService)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.Path("/ping").Methods(http.MethodGet).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintln(w, "pong")
	})

	v1 := router.PathPrefix("/v1beta1").Subrouter()
	v1.Path("/assets").Methods(http.MethodGet).HandlerFunc(assetHandler.GetAll)
	v1.Path("/assets/generate").Methods(http.MethodPost).HandlerFunc(assetHandler.Generate)
	v1.Path("/assets/import").Methods(http.MethodPost).HandlerFunc(assetHandler.Import)
	v1.Path("/stats").Methods(http.MethodGet).HandlerFunc(assetHandler.GetStats)
	v1.Path("/tags/{tag}/qr.png").Methods(http.MethodGet).HandlerFunc(qrHandler.Get)

	v1.Path("/countries").Methods(http.MethodGet).HandlerFunc(countryHandler.GetAll)
	v1.Path("/countries").Methods(http.MethodPost).HandlerFunc(countryHandler.Add)
	v1.Path("/countries/{code}").Methods(http.MethodDelete).HandlerFunc(countryHandler.Remove)
	v1.Path("/manufacturers").Methods(http.MethodGet).HandlerFunc(manufacturerHandler.GetAll)
	v1.Path("/manufacturers").Methods(http.MethodPost).HandlerFunc(manufacturerHandler.Add)
	v1.Path("/manufacturers/{code}").Methods(http.MethodDelete).HandlerFunc(manufacturerHandler.Remove)

	router.Path("/").Methods(http.MethodGet).HandlerFunc(webHandler.Index)
	router.Path("/generate").Methods(http.MethodPost).HandlerFunc(webHandler.Generate)
	router.Path("/import").Methods(http.MethodPost).HandlerFunc(webHandler.Import)
	router.Path("/lists").Methods(http.MethodGet).HandlerFunc(webHandler.Lists)
	router.Path("/lists/{kind}/add").Methods(http.MethodPost).HandlerFunc(webHandler.AddEntry)
	router.Path("/lists/{kind}/remove").Methods(http.MethodPost).HandlerFunc(webHandler.RemoveEntry)

	return router, nil
}
