package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SiliconMeter/internal/collector"
	"SiliconMeter/internal/config"
	"SiliconMeter/internal/ledger"
	"SiliconMeter/internal/notifier"
	"SiliconMeter/internal/recorder"
	"SiliconMeter/internal/runner"
	"SiliconMeter/internal/scheduler"
	"SiliconMeter/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SiliconMeter starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher, chosen by configuration
	var fetcher collector.Fetcher
	if cfg.Source.Mode == config.ModeScrape {
		fetcher = collector.NewScrapeFetcher(cfg.Source.UserAgent,
			time.Duration(cfg.Source.TimeoutSeconds)*time.Second, cfg.Proxy)
	} else {
		fetcher = collector.NewSimulatedFetcher(cfg.Source.Seed)
	}
	log.Printf("[INFO] price source: %s", fetcher.Name())

	// Init catalog store and ledger
	st := store.New(cfg.Store.DataFile)
	led := ledger.New(cfg.Tracker.MaxHistory, cfg.Tracker.DefaultBaseline)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	run := runner.New(fetcher, st, led, rec)

	// Default: single run-to-completion batch
	if os.Getenv("DAEMON") != "true" {
		report, err := run.Run()
		if err != nil {
			log.Fatalf("[FATAL] tracking run: %v", err)
		}
		log.Printf("[INFO] run complete: %d updated, %d failed in %s",
			report.Updated, report.Failed, report.Duration.Round(time.Millisecond))
		if tn != nil {
			if err := tn.SendWithRetry(context.Background(), notifier.FormatRunReport(report), 3); err != nil {
				log.Printf("[ERROR] send run report: %v", err)
			}
		}
		return
	}

	// Daemon mode: run on the configured cron schedule
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, run, tn)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing tracking task now")
		go sched.RunNow()
	}

	log.Println("[INFO] SiliconMeter is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SiliconMeter stopped")
}
