package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

type topicPublisher interface {
	publish(ctx context.Context, msg *pubsub.Message) error
	close() error
}

type gcpTopic struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

func (t *gcpTopic) publish(ctx context.Context, msg *pubsub.Message) error {
	_, err := t.topic.Publish(ctx, msg).Get(ctx)
	return err
}

func (t *gcpTopic) close() error {
	t.topic.Stop()
	return t.client.Close()
}

// PubSubConfig selects a Google Cloud Pub/Sub topic. Topic may be a short
// name or a full "projects/<p>/topics/<t>" resource name.
type PubSubConfig struct {
	ProjectID       string
	Topic           string
	CredentialsFile string
}

// PubSubPublisher publishes events as JSON with the event type and user id
// copied into message attributes for subscription filters.
type PubSubPublisher struct {
	topic topicPublisher
}

func NewPubSubPublisher(ctx context.Context, cfg PubSubConfig) (*PubSubPublisher, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}

	return &PubSubPublisher{
		topic: &gcpTopic{client: client, topic: client.Topic(shortTopicName(cfg.Topic))},
	}, nil
}

func (p *PubSubPublisher) Publish(ctx context.Context, event Event) error {
	if p == nil || p.topic == nil {
		return nil
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.topic.publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"type":    event.Type,
			"user_id": event.UserID,
		},
	})
}

func (p *PubSubPublisher) Close() error {
	if p == nil || p.topic == nil {
		return nil
	}
	return p.topic.close()
}

func shortTopicName(topic string) string {
	if parts := strings.Split(topic, "/"); len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return topic
}
