package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/studyping/studyping/pkg/config"
	"github.com/studyping/studyping/pkg/llm"
	"github.com/studyping/studyping/pkg/messenger"
	"github.com/studyping/studyping/pkg/repository"
	"github.com/studyping/studyping/pkg/roadmap"
	"github.com/studyping/studyping/pkg/router"
	"github.com/studyping/studyping/pkg/scheduler"
	"github.com/studyping/studyping/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// .env is optional, real deployments use the environment directly
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, cfg.Telegram.Token, cfg.Twilio.AuthToken, cfg.LLM.APIKey)

	log.Printf("[INFO] starting studyping version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] studyping failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close repositories: %v", err)
		}
	}()

	roadmaps := roadmap.NewClient(roadmap.Config{
		Endpoint: cfg.Roadmap.Endpoint,
		Timeout:  cfg.Roadmap.Timeout,
	})

	responder := llm.NewResponder(cfg.GetLLMConfig())

	telegram := messenger.NewTelegramClient(messenger.TelegramConfig{
		Token:    cfg.Telegram.Token,
		Endpoint: cfg.Telegram.Endpoint,
		Timeout:  cfg.Telegram.Timeout,
	})

	var twilio *messenger.TwilioClient
	if cfg.WhatsAppEnabled() {
		twilio = messenger.NewTwilioClient(messenger.TwilioConfig{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
			Endpoint:   cfg.Twilio.Endpoint,
			Timeout:    cfg.Twilio.Timeout,
		})
	} else {
		log.Print("[WARN] twilio is not configured, whatsapp channel disabled")
	}

	dispatcher := messenger.NewDispatcher(telegram, twilio)

	msgRouter := router.New(router.Params{
		Store:       repos.Profile,
		Roadmaps:    roadmaps,
		Responder:   responder,
		Messenger:   dispatcher,
		WebURL:      cfg.App.WebURL,
		TopicsLimit: cfg.Schedule.TopicsLimit,
	})

	sched := scheduler.NewScheduler(repos.Profile, roadmaps, responder, dispatcher, scheduler.Config{
		SendDelay: cfg.Schedule.SendDelay,
	})
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, msgRouter, repos.Profile, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	// empty secrets would redact everything
	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
