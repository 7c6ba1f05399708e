package todo

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppOptions struct {
	Addr string
	// MaxLimit caps the list page size; zero leaves it unbounded.
	MaxLimit  int64
	Store     Store
	Publisher Publisher
	Logger    log.Logger
}

type App struct {
	addr      string
	maxLimit  int64
	store     Store
	publisher Publisher
	logger    log.Logger
}

func New(options AppOptions) *App {
	logger := options.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &App{
		addr:      options.Addr,
		maxLimit:  options.MaxLimit,
		store:     options.Store,
		publisher: options.Publisher,
		logger:    logger,
	}
}

func (app *App) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/todos", app.list())
	router.POST("/todo/new", app.create())
	router.POST("/todo/update", app.update())
	router.POST("/todo/delete/:id", app.delete())
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	return accessLog(log.With(app.logger, "component", "http"), router)
}

func (app *App) Listen() error {
	app.logger.Log("msg", "listening", "addr", app.addr)

	return http.ListenAndServe(app.addr, app.Handler())
}
