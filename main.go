package main

import (
	"context"
	"database/sql"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/hireboardhq/shortlistworker/internal/database"
	"github.com/hireboardhq/shortlistworker/internal/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("error loading config: ", err)
	}

	logg, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		log.Fatal("error building logger: ", err)
	}
	defer logg.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("error opening db", zap.Error(err))
	}
	dbqueries := database.New(db)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		logg.Fatal("error creating aws config", zap.Error(err))
	}
	store := NewR2Store(awsCfg, cfg.R2)

	mailer, err := NewSMTPNotifier(cfg.SMTP, logg)
	if err != nil {
		logg.Fatal("error creating smtp notifier", zap.Error(err))
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logg.Fatal("error connecting to rabbitmq", zap.Error(err))
	}
	defer conn.Close()

	// updates exchange is shared by all workers; declare it once up front
	ch, err := conn.Channel()
	if err != nil {
		logg.Fatal("error opening rabbitmq channel", zap.Error(err))
	}
	if err := ch.ExchangeDeclare(updatesExchange, "topic", true, false, false, false, nil); err != nil {
		logg.Fatal("error declaring updates exchange", zap.Error(err))
	}
	ch.Close()

	workerConfig := &WorkerConfig{
		DB:          dbqueries,
		Store:       store,
		Extractor:   DocExtractor{},
		Mailer:      mailer,
		Logger:      logg,
		RabbitConn:  conn,
		RabbitMQURL: cfg.RabbitMQURL,
	}

	logg.Info("starting shortlist consumer pool", zap.Int("workers", cfg.WorkerCount))
	workerConfig.StartConsumerWorkerPool(cfg.WorkerCount)
}
