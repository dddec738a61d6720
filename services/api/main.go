// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// The api service is the HBNB REST backend: CRUD over users, places,
// amenities and reviews against a process-local in-memory store. All
// state is lost on restart.
package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/hbnb/pkg/logging"
	"github.com/AleutianAI/hbnb/services/api/facade"
	"github.com/AleutianAI/hbnb/services/api/middleware"
	"github.com/AleutianAI/hbnb/services/api/models"
	"github.com/AleutianAI/hbnb/services/api/observability"
	"github.com/AleutianAI/hbnb/services/api/routes"
	"github.com/AleutianAI/hbnb/services/api/store"
)

// initTracer sets up OTLP trace export over gRPC. Returns a shutdown
// function for graceful cleanup.
func initTracer(endpoint string) (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("hbnb-api")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

// logBindAddresses logs the interface addresses the server is reachable
// on, which helps when the process runs inside a container and the
// forwarded URL isn't obvious.
func logBindAddresses(port string) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.To4() == nil {
			continue
		}
		slog.Info("listening", "addr", ipNet.IP.String()+":"+port)
	}
}

// refreshStoreGauges keeps the per-kind record gauges current.
func refreshStoreGauges(f *facade.Facade, metrics *observability.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		for _, kind := range models.Kinds {
			metrics.SetStoreCount(kind, f.Count(kind))
		}
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		Service: "api",
		JSON:    true,
	})
	slog.SetDefault(logger.Slog())

	if cfg.OTLPEndpoint != "" {
		cleanup, err := initTracer(cfg.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to setup the OTLP tracer: %v", err)
		}
		defer cleanup(context.Background())
	} else {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
	}

	// One store and one facade for the whole process, passed in
	// explicitly. No ambient singletons.
	s := store.New()
	f := facade.New(s)
	metrics := observability.NewMetrics()
	go refreshStoreGauges(f, metrics)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(metrics))
	router.Use(otelgin.Middleware("hbnb-api"))

	routes.SetupRoutes(router, f)

	slog.Info("starting the HBNB API server", "addr", cfg.Addr())
	logBindAddresses(cfg.Port)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
