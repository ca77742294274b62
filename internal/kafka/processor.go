package kafka

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"strings"
	"time"

	"github.com/oslc/oslc-backend/database"
	"github.com/oslc/oslc-backend/events/modules/inventory"
	"github.com/oslc/oslc-backend/internal/services"
	"github.com/oslc/oslc-backend/resolver"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

func RunEventProcessor(ctx context.Context, db database.DBConnection, res *resolver.Resolver) error {
	brokersEnv := os.Getenv("KAFKA_BROKERS")
	var brokers []string
	if brokersEnv != "" {
		brokers = strings.Split(brokersEnv, ",")
	} else {
		brokers = []string{"localhost:9092"}
	}

	// 1. Configure SASL/PLAIN using Environment Variables
	username := os.Getenv("KAFKA_API_KEY")
	password := os.Getenv("KAFKA_API_SECRET")

	var dialer *kafka.Dialer

	// Only configure SASL/TLS if credentials are provided
	if username != "" && password != "" {
		mechanism := plain.Mechanism{
			Username: username,
			Password: password,
		}

		dialer = &kafka.Dialer{
			Timeout:       10 * time.Second,
			DualStack:     true,
			SASLMechanism: mechanism,
			TLS:           &tls.Config{}, // Confluent Cloud requires TLS
		}
	} else {
		// Default dialer for local development (no SASL/TLS)
		dialer = &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
		}
	}

	topic := "inventory-events"
	var conn *kafka.Conn
	var err error

	// Retry logic: 3 tries
	for i := 1; i <= 3; i++ {
		log.Printf("Kafka connection attempt %d/3...", i)
		// Use the configured dialer (with SASL/TLS) for the check
		conn, err = dialer.DialContext(ctx, "tcp", brokers[0])
		if err == nil {
			conn.Close()
			break
		}
		if i < 3 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		return err
	}

	// 2. Configure the Reader to use the Dialer
	readerConfig := kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  "oslc-backend-worker",
		Topic:    topic,
		MaxBytes: 10e6,
		Dialer:   dialer, // Inject the secure dialer here
	}

	reader := kafka.NewReader(readerConfig)

	service := &services.InventoryServiceWrapper{DB: db, Resolver: res}

	// Resolved events are published back to Kafka when a result topic is set.
	var producer *inventory.InventoryProducer
	if resultTopic := os.Getenv("KAFKA_RESULT_TOPIC"); resultTopic != "" {
		producer = inventory.NewInventoryProducer(brokers, resultTopic)
		service.Producer = producer
	}

	go func() {
		defer reader.Close()
		if producer != nil {
			defer producer.Close()
		}

		log.Println("Kafka Event Processor started. Listening for inventory events...")

		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := reader.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					continue
				}
				_ = inventory.HandleAssetScannedWithService(ctx, msg.Value, service)
			}
		}
	}()

	return nil
}
