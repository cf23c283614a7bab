package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"classnotify/internal/channel"
	"classnotify/internal/client"
	"classnotify/internal/config"
	"classnotify/internal/db"
	"classnotify/internal/mq"
	"classnotify/internal/mqhandler"
	redisclient "classnotify/internal/redis"
	"classnotify/internal/repository"
	"classnotify/internal/service"
	"classnotify/internal/util"
)

func main() {
	cfg := config.Load()

	logger := util.NewLogger()
	defer logger.Sync()

	logger.Info("Starting notifications worker...")

	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	rdb := redisclient.NewClient(cfg.Redis)
	defer rdb.Close()

	httpTimeout := time.Duration(cfg.Dispatch.HTTPTimeoutSeconds) * time.Second
	emailCache := util.NewCache(rdb, 10*time.Minute)

	// Remote collaborators
	coursesClient := client.NewCoursesClient(cfg.Services.CoursesURL, httpTimeout)
	usersClient := client.NewUsersClient(cfg.Services.UsersURL, httpTimeout, emailCache)
	tokensClient := client.NewTokensClient(cfg.Services.TokensURL, httpTimeout)

	// Channels
	emailChannel := channel.NewEmailChannel(usersClient, channel.NewSMTPSender(cfg.SMTP), logger)
	pushChannel := channel.NewPushChannel(tokensClient, channel.NewFCMSender(cfg.Push, httpTimeout), logger)

	// Core pipeline
	prefRepo := repository.NewPreferenceRepository(dbConn)
	audience := service.NewAudienceResolver(coursesClient, logger)
	dispatcher := service.NewDispatcher(
		prefRepo,
		emailChannel,
		pushChannel,
		cfg.Dispatch.WorkerLimit,
		time.Duration(cfg.Dispatch.RecipientTimeoutSeconds)*time.Second,
		logger,
	)

	router := mqhandler.NewEventRouter(
		mqhandler.NewAssignmentHandler(audience, dispatcher, logger),
		mqhandler.NewForumHandler(audience, dispatcher, logger),
		mqhandler.NewDirectHandler(dispatcher, logger),
		logger,
	)

	if cfg.Metrics.Addr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, nil); err != nil {
				logger.Error("Metrics listener failed", zap.Error(err))
			}
		}()
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Queue, cfg.MQ.RoutingKey, logger)
	if err != nil {
		logger.Fatal("failed to init consumer", zap.Error(err))
	}
	defer consumer.Close()

	consumer.SetHandler(router.Route)

	logger.Info("Worker ready, waiting for events", zap.String("queue", cfg.MQ.Queue))
	if err := consumer.StartConsuming(); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
