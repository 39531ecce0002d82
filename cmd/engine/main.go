package main

import (
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
	"jobtrack-engine/internal/extract"
	"jobtrack-engine/internal/httpapi"
	"jobtrack-engine/internal/store"
)

func main() {
	dataDir := os.Getenv("JOBTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; two processes sharing the sqlite file corrupt
	// each other's view.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already holds %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	raw, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(raw)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	for _, warn := range vr.Warnings {
		log.Printf("[config] warning: %s", warn)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "jobtrack.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	schema := domain.DefaultSchema()
	if err := store.Migrate(db.Pool, schema); err != nil {
		log.Fatal(err)
	}

	limiter := extract.NewHostLimiter(cfg.Fetch.HostReqPerSec, cfg.Fetch.HostBurst)
	fetcher := extract.NewFetcher(
		time.Duration(cfg.Fetch.TimeoutSeconds*float64(time.Second)),
		cfg.Fetch.UserAgent,
		limiter,
	)
	builder := extract.NewBuilder(fetcher, schema)

	hub := events.NewHub()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Schema:      schema,
		Build:       builder.BuildJobFromURL,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
