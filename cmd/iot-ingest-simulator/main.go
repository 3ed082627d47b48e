package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"log/slog"

	"github.com/diwise/iot-ingest/internal/pkg/application/simulator"
	"github.com/diwise/iot-ingest/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const serviceName string = "iot-ingest-simulator"

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	cfg := simulator.DefaultConfig()

	var trend string
	flag.StringVar(&cfg.SensorPrefix, "prefix", cfg.SensorPrefix, "sensor id prefix")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.StringVar(&trend, "trend", string(cfg.Trend), "temperature trend (stable, increasing, decreasing, fluctuating)")
	flag.Parse()
	cfg.Trend = simulator.TrendMode(trend)

	brokerURL := env.GetVariableOrDefault(ctx, "MQTT_BROKER", "tcp://localhost:1883")
	interval, err := time.ParseDuration(env.GetVariableOrDefault(ctx, "PUBLISH_INTERVAL", "10s"))
	exitIf(err, logger, "invalid publish interval")

	if seed := env.GetVariableOrDefault(ctx, "SIMULATOR_SEED", ""); seed != "" {
		cfg.Seed, err = strconv.ParseInt(seed, 10, 64)
		exitIf(err, logger, "invalid simulator seed")
	}

	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(serviceName)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		exitIf(token.Error(), logger, "could not connect to broker")
	}
	defer client.Disconnect(250)

	logger.Info("publishing simulated readings", "broker", brokerURL, "interval", interval.String(), "seed", cfg.Seed)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, logger, client, simulator.New(cfg), interval)

	logger.Info("shutting down ...")
}

func run(ctx context.Context, logger *slog.Logger, client mqtt.Client, sim *simulator.Simulator, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			for _, reading := range sim.Tick(now.UTC()) {
				publish(logger, client, reading)
			}
		case <-ctx.Done():
			return
		}
	}
}

func publish(logger *slog.Logger, client mqtt.Client, reading types.SensorReading) {
	payload, err := json.Marshal(reading)
	if err != nil {
		logger.Error("could not marshal reading", "err", err.Error())
		return
	}

	topic := fmt.Sprintf("sensors/%s/%s", reading.SensorID, reading.SensorType)

	token := client.Publish(topic, 0, false, payload)
	token.Wait()
	if token.Error() != nil {
		logger.Error("could not publish reading", "topic", topic, "err", token.Error().Error())
	}
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
