// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command spaced serves the spacelab REST API.  By default it stores
// data in a SQLite file app.db in the current directory and listens
// on port 5555.
//
// Settings come from defaults, then the YAML file named by -config,
// then environment variables (most notably DB_URI), then any
// command-line flags that were given.  Prometheus metrics are served
// on /metrics.
package main

import (
	"flag"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-spacelab/backend"
	"github.com/diffeo/go-spacelab/cache"
	"github.com/diffeo/go-spacelab/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configFile := flag.String("config", "", "global configuration YAML file")
	httpBind := flag.String("http", "", "[ip]:port for HTTP REST interface")
	var database backend.Backend
	flag.Var(&database, "backend", "database URI or impl[:address] of the storage backend")
	logLevel := flag.String("log-level", "", "minimum level of log messages")
	logFile := flag.String("log-file", "", "write logs to this file instead of stderr")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	cacheSize := flag.Int("cache-size", 0, "cache this many records of each type")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not load configuration")
		return
	}

	// Flags that were explicitly given override everything else
	haveBackend := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			cfg.HTTP = *httpBind
		case "backend":
			haveBackend = true
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		case "log-requests":
			cfg.LogRequests = *logRequests
		case "cache-size":
			cfg.CacheSize = *cacheSize
		}
	})
	if !haveBackend {
		if err = database.Set(cfg.Database); err != nil {
			logrus.WithFields(logrus.Fields{
				"err":      err,
				"database": cfg.Database,
			}).Fatal("Invalid database")
			return
		}
	}

	if err = setupLogging(logrus.StandardLogger(), cfg); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not set up logging")
		return
	}

	store, err := database.Store()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": database.String(),
		}).Fatal("Could not create space backend")
		return
	}
	if cfg.CacheSize > 0 {
		store = cache.New(store, cfg.CacheSize)
	}

	if cfg.MetricsInterval > 0 {
		go observeEvery(store, clock.New(), cfg.MetricsInterval, nil)
	}

	h := &HTTP{
		store:       store,
		laddr:       cfg.HTTP,
		logRequests: cfg.LogRequests,
		logger:      logrus.StandardLogger(),
	}
	logrus.WithFields(logrus.Fields{
		"http":    cfg.HTTP,
		"backend": database.String(),
	}).Info("Starting spaced")
	if err = h.Serve(); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("HTTP server failed")
	}
}

// setupLogging configures a logger from the configuration.  A log file
// is rotated once it reaches 100 MB, keeping three old copies.
func setupLogging(logger *logrus.Logger, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if cfg.LogFile != "" {
		var out io.Writer = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		}
		logger.SetOutput(out)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
