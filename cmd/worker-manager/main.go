// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/aws"
	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/database"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/scoring"

	smr "franchise-fit/internal/workers/communication/send-match-report"
	qc "franchise-fit/internal/workers/data-access/query-catalog"
	arr "franchise-fit/internal/workers/franchise/apply-relevance-ranking"
	cms "franchise-fit/internal/workers/franchise/calculate-match-score"
	gfd "franchise-fit/internal/workers/franchise/get-franchise-detail"
	psf "franchise-fit/internal/workers/franchise/parse-search-filters"
	vp "franchise-fit/internal/workers/profile/validate-profile"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err,
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func newEngine(cfg config.ScoringConfig) (*scoring.Engine, error) {
	model, err := scoring.ParseModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	opts := []scoring.Option{scoring.WithModel(model)}
	if cfg.CurrentYear > 0 {
		opts = append(opts, scoring.WithCurrentYear(cfg.CurrentYear))
	}
	return scoring.New(opts...), nil
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	if err := config.ValidateForWorkers(cfg); err != nil {
		zapLog.Fatal("config invalid for worker manager", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
		TracingEnabled: cfg.Observability.TracingEnabled,
		SampleRatio:    cfg.Observability.SampleRatio,
	})
	if err != nil {
		log.Warn("observability partially disabled", map[string]interface{}{"error": err})
	}

	ctx := context.Background()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, log, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	log.Info("Zeebe client connected successfully", nil)

	// --- PostgreSQL ---
	var pg *database.SQLClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, log, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	log.Info("PostgreSQL connected successfully", nil)

	// --- Elasticsearch ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping(ctx)
	}, 15, 2*time.Second, log, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	log.Info("Elasticsearch connected successfully", nil)

	// --- Redis ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, log, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	log.Info("Redis connected successfully", nil)

	// --- Domain services ---
	catalogDB := pg
	if cfg.Catalog.Source == catalog.SourceSQLite {
		sqlite, err := database.NewSQLite(cfg.Database.SQLite)
		if err != nil {
			zapLog.Fatal("sqlite open failed", zap.Error(err))
		}
		defer sqlite.Close()
		catalogDB = sqlite
	}

	catalogStore := catalog.NewStore(catalogDB)
	if err := catalogStore.EnsureSchema(ctx); err != nil {
		log.Warn("catalog schema not ready", map[string]interface{}{"error": err})
	}

	cat, err := catalog.Load(ctx, cfg.Catalog, catalogDB, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	searchIndex := catalog.NewSearchIndex(esClient.Client, esClient.Index)
	if err := searchIndex.EnsureIndex(ctx); err != nil {
		log.Warn("search index not ready", map[string]interface{}{"index": esClient.Index, "error": err})
	}

	profiles := profile.NewStore(pg.DB, rdb.Client, profile.Options{
		TTL:       time.Duration(cfg.Profiles.CacheTTL) * time.Second,
		KeyPrefix: cfg.Profiles.KeyPrefix,
	}, log)
	if err := profiles.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("profile schema init failed", zap.Error(err))
	}

	engine, err := newEngine(cfg.Scoring)
	if err != nil {
		zapLog.Fatal("scoring engine config invalid", zap.Error(err))
	}

	var mailer smr.Mailer
	var publisher smr.Publisher
	if cfg.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region, cfg.Notifications.Email.FromEmail)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		mailer = sesClient
	}
	if cfg.Notifications.SMS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client init failed", zap.Error(err))
		}
		publisher = snsClient
	}

	// --- Workers ---
	timeoutOf := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}
	var workers []worker.JobWorker
	start := func(taskType string, h worker.JobHandler) {
		if jw := camunda.StartWorker(zeebe.GetClient(), taskType, config.GetWorkerConfig(cfg, taskType), h, log); jw != nil {
			workers = append(workers, jw)
		}
	}

	if config.IsWorkerEnabled(cfg, cms.TaskType) {
		handler := cms.NewHandler(cms.HandlerOptions{
			Config:        &cms.Config{Timeout: timeoutOf(cms.TaskType)},
			Engine:        engine,
			Catalog:       cat,
			Profiles:      profiles,
			Observability: obs,
			Logger:        log,
		})
		start(cms.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, arr.TaskType) {
		handler := arr.NewHandler(arr.HandlerOptions{
			Config:        &arr.Config{MaxItems: cfg.Scoring.TopN, Timeout: timeoutOf(arr.TaskType)},
			Engine:        engine,
			Catalog:       cat,
			Profiles:      profiles,
			Observability: obs,
			Logger:        log,
		})
		start(arr.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, psf.TaskType) {
		psfCfg := psf.LoadConfig()
		psfCfg.Timeout = timeoutOf(psf.TaskType)
		handler := psf.NewHandler(psfCfg, cat, obs, log)
		start(psf.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, qc.TaskType) {
		handler := qc.NewHandler(&qc.Config{Timeout: timeoutOf(qc.TaskType)}, searchIndex, obs, log)
		start(qc.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, gfd.TaskType) {
		gfdCfg := gfd.LoadConfig()
		gfdCfg.Timeout = timeoutOf(gfd.TaskType)
		if cfg.Scoring.CurrentYear > 0 {
			gfdCfg.CurrentYear = cfg.Scoring.CurrentYear
		}
		handler := gfd.NewHandler(gfd.HandlerOptions{
			Config:        gfdCfg,
			Catalog:       cat,
			Store:         catalogStore,
			Observability: obs,
			Logger:        log,
		})
		start(gfd.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, vp.TaskType) {
		handler := vp.NewHandler(&vp.Config{Timeout: timeoutOf(vp.TaskType)}, profiles, obs, log)
		start(vp.TaskType, handler.Handle)
	}

	if config.IsWorkerEnabled(cfg, smr.TaskType) {
		smrCfg := smr.LoadConfig()
		smrCfg.Timeout = timeoutOf(smr.TaskType)
		smrCfg.TopicARN = cfg.Notifications.SMS.TopicARN
		if err := smrCfg.Validate(); err != nil {
			zapLog.Fatal("send-match-report config invalid", zap.Error(err))
		}
		handler := smr.NewHandler(smr.HandlerOptions{
			Config:        smrCfg,
			Mailer:        mailer,
			Publisher:     publisher,
			Observability: obs,
			Logger:        log,
		})
		start(smr.TaskType, handler.Handle)
	}
	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		rctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]string{}
		code := http.StatusOK
		for name, ping := range map[string]func(context.Context) error{
			"zeebe":         zeebe.HealthCheck,
			"postgres":      pg.Ping,
			"elasticsearch": esClient.Ping,
			"redis":         rdb.Ping,
		} {
			if err := ping(rctx); err != nil {
				checks[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}
		checks["status"] = "ready"
		if code != http.StatusOK {
			checks["status"] = "not_ready"
		}
		writeStatus(w, code, checks)
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Observability.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Health/Metrics server listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Health/Metrics server failed", map[string]interface{}{"error": err})
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutdown signal received, stopping workers...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, jw := range workers {
		jw.Close()
		jw.AwaitClose()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error stopping health server", map[string]interface{}{"error": err})
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		log.Error("Error flushing telemetry", map[string]interface{}{"error": err})
	}
	if err := zeebe.Close(); err != nil {
		log.Error("Error closing Zeebe client", map[string]interface{}{"error": err})
	}

	log.Info("Worker manager stopped gracefully", nil)
}

func writeStatus(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
