package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cloud.google.com/go/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTopic struct {
	msgs   []*pubsub.Message
	err    error
	closed bool
}

func (f *fakeTopic) publish(ctx context.Context, msg *pubsub.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeTopic) close() error {
	f.closed = true
	return nil
}

func TestPubSubPublisher_Attributes(t *testing.T) {
	topic := &fakeTopic{}
	p := &PubSubPublisher{topic: topic}

	require.NoError(t, p.Publish(context.Background(), Event{Type: TypeArchiveDeleted, UserID: "u1", ArchiveID: "a1"}))
	require.Len(t, topic.msgs, 1)

	msg := topic.msgs[0]
	assert.Equal(t, TypeArchiveDeleted, msg.Attributes["type"])
	assert.Equal(t, "u1", msg.Attributes["user_id"])

	var got Event
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, "a1", got.ArchiveID)
	assert.False(t, got.OccurredAt.IsZero())
}

func TestPubSubPublisher_Errors(t *testing.T) {
	p := &PubSubPublisher{topic: &fakeTopic{err: errors.New("unavailable")}}
	assert.Error(t, p.Publish(context.Background(), Event{Type: TypeAccountDeleted, UserID: "u1"}))

	var nilPublisher *PubSubPublisher
	assert.NoError(t, nilPublisher.Publish(context.Background(), Event{}))
	assert.NoError(t, nilPublisher.Close())
}

func TestPubSubPublisher_Close(t *testing.T) {
	topic := &fakeTopic{}
	p := &PubSubPublisher{topic: topic}
	require.NoError(t, p.Close())
	assert.True(t, topic.closed)
}

func TestShortTopicName(t *testing.T) {
	assert.Equal(t, "growth-events", shortTopicName("projects/demo/topics/growth-events"))
	assert.Equal(t, "growth-events", shortTopicName("growth-events"))
}
