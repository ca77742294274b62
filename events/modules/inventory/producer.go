// Package inventory handles Kafka event production for asset scan events.
package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/oslc/oslc-backend/model"
	"github.com/segmentio/kafka-go"
)

// InventoryProducer handles sending asset scan events to Kafka
type InventoryProducer struct {
	Writer *kafka.Writer
}

// NewInventoryProducer initializes a new Kafka writer for inventory events
func NewInventoryProducer(brokers []string, topic string) *InventoryProducer {
	return &InventoryProducer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishAssetScanned sends the event to the Kafka topic
func (p *InventoryProducer) PublishAssetScanned(ctx context.Context, asset model.InventoryRecord, scanID, scanner string) error {

	// Construct the Event Contract
	event := AssetScannedEvent{
		EventType:     "inventory.asset.scanned",
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Asset:         asset,
		Scan: ScanReference{
			ScanID:     scanID,
			Scanner:    scanner,
			ObservedAt: time.Now().UTC(),
		},
	}

	// Marshal to JSON
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Write to Kafka
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(asset.Hostname),
		Value: payload,
	})
}

// PublishAssetResolved sends a resolution result to the Kafka topic
func (p *InventoryProducer) PublishAssetResolved(ctx context.Context, asset model.InventoryRecord, resolution model.ResolutionRecord) error {

	event := AssetResolvedEvent{
		EventType:     "inventory.asset.resolved",
		EventID:       uuid.New().String(),
		EventTime:     time.Now().UTC(),
		SchemaVersion: "v1",
		Asset:         asset,
		Resolution:    resolution,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(asset.Hostname),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *InventoryProducer) Close() error {
	return p.Writer.Close()
}
