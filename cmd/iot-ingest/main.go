package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/diwise/iot-ingest/internal/pkg/application/alerts"
	"github.com/diwise/iot-ingest/internal/pkg/application/buffer"
	"github.com/diwise/iot-ingest/internal/pkg/application/pipeline"
	"github.com/diwise/iot-ingest/internal/pkg/application/registry"
	"github.com/diwise/iot-ingest/internal/pkg/application/watchdog"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/cidstore"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/ledger"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/mqttrunner"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-ingest/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-ingest/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "iot-ingest"

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	var sensorsFile, notificationsFile string
	flag.StringVar(&sensorsFile, "sensors", "", "a yaml file of known sensors and their thresholds")
	flag.StringVar(&notificationsFile, "notifications", "", "a yaml file of alert notification subscribers")
	flag.Parse()

	servicePort := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")

	s, err := newStorage(ctx)
	exitIf(err, logger, "could not create or connect to database")
	defer s.Close()

	err = s.CreateTables(ctx)
	exitIf(err, logger, "could not create database tables")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	contents, err := cidstore.New(ctx, env.GetVariableOrDefault(ctx, "REDIS_ADDR", "localhost:6379"))
	exitIf(err, logger, "could not connect to content store")
	defer contents.Close()

	sensors := registry.New(s)

	if sensorsFile != "" {
		f, err := os.Open(sensorsFile)
		exitIf(err, logger, "could not open sensors file")
		err = registry.Seed(ctx, s, f)
		f.Close()
		exitIf(err, logger, "could not seed sensors")
	}

	notificationCfg, err := loadNotifications(notificationsFile)
	exitIf(err, logger, "could not load notification config")

	alertSvc := alerts.New(s, messenger)
	sender := alerts.NewEventSender(notificationCfg)

	p, err := pipeline.New(newBufferConfig(ctx), pipeline.Dependencies{
		Registry:     sensors,
		AlertService: alertSvc,
		Store:        s,
		ContentStore: contents,
		Ledger:       ledger.New(env.GetVariableOrDefault(ctx, "LEDGER_URL", "http://ledger:8080/api/v0/submissions")),
		Messenger:    messenger,
	})
	exitIf(err, logger, "could not create ingest pipeline")

	err = messenger.RegisterTopicMessageHandler("sensor-readings", pipeline.NewSensorReadingTopicHandler(p))
	exitIf(err, logger, "failed to register topic message handler")
	err = messenger.RegisterTopicMessageHandler("alerts.alertCreated", alerts.NewAlertCreatedHandler(sender))
	exitIf(err, logger, "failed to register topic message handler")

	messenger.Start()
	defer messenger.Close()

	p.Start(ctx)
	defer p.Stop(ctx)

	silenceWindow := env.GetVariableOrDefault(ctx, "SENSOR_SILENCE_WINDOW", "10m")
	window, err := time.ParseDuration(silenceWindow)
	exitIf(err, logger, "invalid sensor silence window")

	wd := watchdog.New(sensors, alertSvc, messenger, window)
	wd.Start(ctx)
	defer wd.Stop(ctx)

	runner := mqttrunner.New(mqttrunner.Config{
		BrokerURL: env.GetVariableOrDefault(ctx, "MQTT_BROKER", "tcp://localhost:1883"),
		ClientID:  serviceName,
	}, p.Ingest)

	err = runner.Start(ctx)
	exitIf(err, logger, "could not start mqtt runner")
	defer runner.Stop(ctx)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, sensors, alertSvc, s)
	exitIf(err, logger, "failed to register api handlers")

	srv := &http.Server{Addr: ":" + servicePort, Handler: r}

	go func() {
		logger.Info("starting api server", "port", servicePort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("api server failed", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down ...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

func newStorage(ctx context.Context) (*storage.Storage, error) {
	return storage.New(ctx, storage.NewConfig(
		env.GetVariableOrDefault(ctx, "POSTGRES_HOST", "localhost"),
		env.GetVariableOrDefault(ctx, "POSTGRES_USER", "postgres"),
		env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", "password"),
		env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	))
}

func newBufferConfig(ctx context.Context) buffer.Config {
	cfg := buffer.DefaultConfig()

	if v := env.GetVariableOrDefault(ctx, "BUFFER_FLUSH_INTERVAL", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FlushInterval = d
		}
	}
	if v := env.GetVariableOrDefault(ctx, "BUFFER_BATCH_SIZE", ""); v != "" {
		fmt.Sscanf(v, "%d", &cfg.BatchSize)
	}
	if v := env.GetVariableOrDefault(ctx, "BUFFER_MAX_QUEUE_DEPTH", ""); v != "" {
		fmt.Sscanf(v, "%d", &cfg.MaxQueueDepth)
	}

	return cfg
}

func loadNotifications(path string) (*alerts.NotificationConfig, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return alerts.LoadNotificationConfig(f)
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
