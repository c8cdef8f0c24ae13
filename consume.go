package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const (
	shortlistQueue  = "shortlisting"
	updatesExchange = "shortlist_updates"
)

// passUpdate is published per job so the API layer can surface pass
// progress to the HR dashboard. Counts are set on completion only.
type passUpdate struct {
	JobID       uuid.UUID `json:"job_id"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Shortlisted *int      `json:"shortlisted,omitempty"`
	Rejected    *int      `json:"rejected,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	log := workerConfig.Logger.With(zap.Int("worker", id+1))

	// each worker holds its own connection for consuming
	conn, err := amqp.Dial(workerConfig.RabbitMQURL)
	if err != nil {
		log.Fatal("error dialling rabbitmq", zap.Error(err))
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error opening rabbitmq channel", zap.Error(err))
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		shortlistQueue, // queue name
		true,           // durable (survives broker restarts)
		false,          // auto-delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		log.Fatal("failed to declare queue", zap.Error(err))
	}

	msgs, err := ch.Consume(
		shortlistQueue, // queue name
		"",             // consumer tag
		true,           // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq messages", zap.Error(err))
	}

	for msg := range msgs {
		req := ShortlistRequest{}
		if err := json.Unmarshal(msg.Body, &req); err != nil {
			log.Error("error unmarshalling shortlist request", zap.Error(err))
			continue
		}
		workerConfig.handleRequest(log, req)
	}
}

func (workerConfig *WorkerConfig) handleRequest(log *zap.Logger, req ShortlistRequest) {
	ctx := context.Background()
	log = log.With(zap.String("job_id", req.JobID.String()))
	log.Info("processing shortlisting pass", zap.String("hr_id", req.HrID.String()))

	workerConfig.publishUpdate(req.JobID, passUpdate{
		Status:  "processing",
		Message: "shortlisting started",
	})

	result, err := workerConfig.ProcessShortlisting(ctx, req.JobID, req.HrID)
	if err != nil {
		log.Error("shortlisting pass failed", zap.Error(err))
		workerConfig.publishUpdate(req.JobID, passUpdate{
			Status:  "failed",
			Message: err.Error(),
		})
		return
	}

	log.Info("shortlisting pass completed",
		zap.Int("shortlisted", result.Shortlisted),
		zap.Int("rejected", result.Rejected))
	workerConfig.publishUpdate(req.JobID, passUpdate{
		Status: "completed",
		Message: fmt.Sprintf("Shortlisting processed. %d shortlisted, %d rejected.",
			result.Shortlisted, result.Rejected),
		Shortlisted: &result.Shortlisted,
		Rejected:    &result.Rejected,
	})
}

func (workerConfig *WorkerConfig) publishUpdate(jobID uuid.UUID, update passUpdate) {
	ch, err := workerConfig.RabbitConn.Channel()
	if err != nil {
		workerConfig.Logger.Warn("failed to open channel for update", zap.Error(err))
		return
	}
	defer ch.Close()

	update.JobID = jobID
	update.Timestamp = time.Now().UTC()
	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("job.%s", jobID)

	err = ch.Publish(
		updatesExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		workerConfig.Logger.Warn("failed to publish shortlist update", zap.Error(err))
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		workerConfig.Logger.Info("worker started", zap.Int("worker", i+1))
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
