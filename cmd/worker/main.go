package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"eventscore/internal/config"
	"eventscore/internal/logging"
	"eventscore/internal/mailer"
	"eventscore/internal/metrics"
	"eventscore/internal/queue"
	"eventscore/internal/store"
)

// Worker consumes mail jobs enqueued by the API and delivers them.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logg.Closer()
	log := logg.Sugar

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Infow("shutdown signal received")
		cancel()
	}()

	redisClient := store.NewRedis(cfg.RedisAddr)

	var jobs queue.Queue
	if cfg.QueueBackend == "memory" {
		jobs = queue.NewInMemory(64)
	} else {
		jobs = queue.NewRedisQueue(redisClient.Client, "")
	}

	var mail mailer.Mailer
	if cfg.MailBackend == "log" {
		mail = &mailer.LogOnly{Log: log}
	} else {
		mail = mailer.NewSMTP(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPassword)
	}

	messages, err := jobs.Consume(ctx)
	if err != nil {
		log.Fatalw("queue consume init failed", "err", err)
	}

	log.Infow("worker started, waiting for mail jobs")
	for msg := range messages {
		switch msg.Type {
		case queue.TypeWelcome:
			if err := mail.SendWelcome(ctx, msg.Email, msg.Name); err != nil {
				log.Warnw("welcome mail failed", "id", msg.ID, "to", msg.Email, "err", err)
				metrics.MailJobs.WithLabelValues("failed").Inc()
				continue
			}
			metrics.MailJobs.WithLabelValues("sent").Inc()
			log.Infow("welcome mail sent", "id", msg.ID, "to", msg.Email)
		default:
			log.Warnw("unknown mail job type", "id", msg.ID, "type", msg.Type)
			metrics.MailJobs.WithLabelValues("skipped").Inc()
		}
	}

	log.Infow("worker stopped")
}
