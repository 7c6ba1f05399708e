package cmd

import (
	"context"
	"os"
	"time"

	"github.com/go-kit/kit/log"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/timada-org/todo/internal/app/todo"
	"github.com/timada-org/todo/internal/pkg/core"
	"github.com/timada-org/todo/internal/pkg/db"
	"github.com/timada-org/todo/pkg/client"
)

var (
	cfgFile string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the todo server",

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
			logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

			return serve(cfgFile, logger)
		},
	}
)

func init() {
	serveCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yml", "config file")
}

func serve(path string, logger log.Logger) error {
	config, err := core.NewConfig(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, db.Options{
		URL:      config.Database.URL,
		MaxConns: config.Database.MaxConns,
		MinConns: config.Database.MinConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	duration := kitprometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "todo",
		Subsystem: "store",
		Name:      "request_duration_seconds",
		Help:      "Duration of store calls in seconds.",
		Buckets:   stdprometheus.DefBuckets,
	}, []string{"method", "error"})

	var store todo.Store
	{
		store = todo.NewPostgresStore(pool)
		store = todo.LoggingMiddleware(log.With(logger, "component", "store"))(store)
		store = todo.InstrumentingMiddleware(duration)(store)
	}

	options := todo.AppOptions{
		Addr:     config.Addr,
		MaxLimit: config.MaxLimit,
		Store:    store,
		Logger:   logger,
	}

	if config.Broker.URL != "" {
		c, err := client.New(client.ClientOptions{
			URL:   config.Broker.URL,
			Topic: config.Broker.Topic,
			Name:  config.Broker.Name,
		})
		if err != nil {
			return err
		}
		defer c.Close()

		options.Publisher = c
	}

	return todo.New(options).Listen()
}
