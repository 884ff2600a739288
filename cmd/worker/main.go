package main

import (
	"os"
	"os/signal"
	"syscall"

	"filmoteka/pkg/config"
	"filmoteka/pkg/logger"
	"filmoteka/pkg/queue"
)

// The worker drains the activity queue so published events (views, favorites,
// reviews) are acknowledged and visible in the worker's log. Downstream jobs
// like recommendation rebuilds hook in here.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.ConsumeActivityEvents(func(event map[string]interface{}) error {
		log.Info("activity event: type=%v user=%v movie=%v at=%v",
			event["type"], event["user_id"], event["movie_id"], event["time"])
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Activity worker exiting")
}
