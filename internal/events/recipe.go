// Package events publishes recipe domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/recipehub/recipehub/internal/logger"
	"github.com/recipehub/recipehub/internal/models"
	"github.com/segmentio/kafka-go"
)

// RecipeCreatedEvent is the payload published when a recipe is stored.
type RecipeCreatedEvent struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	Category   *string   `json:"category"`
	CreatedAt  time.Time `json:"created_at"`
}

// KafkaRecipePublisher writes recipe events to a Kafka topic.
type KafkaRecipePublisher struct {
	writer *kafka.Writer
}

// NewKafkaRecipePublisher creates a publisher for the given brokers and topic.
func NewKafkaRecipePublisher(brokers []string, topic string) *KafkaRecipePublisher {
	return &KafkaRecipePublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishRecipeCreated publishes one event keyed by the recipe id.
func (p *KafkaRecipePublisher) PublishRecipeCreated(ctx context.Context, recipe *models.RecipeDB) error {
	payload, err := json.Marshal(RecipeCreatedEvent{
		ID:         recipe.ID,
		UserID:     recipe.UserID,
		Title:      recipe.Title,
		Difficulty: recipe.Difficulty,
		Category:   recipe.Category,
		CreatedAt:  recipe.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipe.ID.String()),
		Value: payload,
	})

	logger.Log.Infow("recipe created event published",
		"recipe_id", recipe.ID,
		"topic", p.writer.Topic,
		"error", err,
	)

	return err
}

// Close flushes and closes the underlying writer.
func (p *KafkaRecipePublisher) Close() error {
	return p.writer.Close()
}
