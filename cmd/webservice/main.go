package main

import (
	"context"
	"log"

	"travelmate-api/config"
	"travelmate-api/internal/app"
	"travelmate-api/internal/infrastructure/database/mongodb"
	kafkaDriver "travelmate-api/internal/infrastructure/message-queue/kafka"

	"github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()
	if config.MongoDBConfig.URI == "" {
		log.Fatal("MONGO_URI is not set")
	}

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	var kafkaProducer *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafkaDriver.CreateKafkaProducer(config)
		defer kafkaProducer.Close()
	}

	server := app.App{
		DB:            db,
		Config:        config,
		KafkaProducer: kafkaProducer,
	}

	server.Start()
}
