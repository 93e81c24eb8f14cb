package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestProducer_PublishKeysByUser(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), Event{
		Type:       TypeArchiveApproved,
		UserID:     "u1",
		ArchiveID:  "a1",
		Status:     "approved",
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("u1"), msg.Key)
	assert.Equal(t, at, msg.Time)

	var got Event
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, TypeArchiveApproved, got.Type)
	assert.Equal(t, "a1", got.ArchiveID)
}

func TestProducer_StampsTime(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	require.NoError(t, p.Publish(context.Background(), Event{Type: TypeAccountDeleted, UserID: "u1"}))
	require.Len(t, w.msgs, 1)
	assert.False(t, w.msgs[0].Time.IsZero())
}

func TestProducer_PropagatesWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &Producer{writer: &fakeWriter{err: boom}}

	err := p.Publish(context.Background(), Event{Type: TypeArchiveSubmitted, UserID: "u1"})
	assert.ErrorIs(t, err, boom)
}

func TestProducer_NilIsNoop(t *testing.T) {
	var p *Producer
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TypeArchiveSubmitted}))
	assert.NoError(t, p.Close())
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, (&Producer{writer: w}).Close())
	assert.True(t, w.closed)
}

func TestNewProducer_Config(t *testing.T) {
	p := NewProducer(KafkaConfig{Broker: "localhost:9092", Topic: "t", Username: "u", Password: "p", TLS: true})

	kw, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "t", kw.Topic)

	tr, ok := kw.Transport.(*kafka.Transport)
	require.True(t, ok)
	assert.NotNil(t, tr.SASL)
	assert.NotNil(t, tr.TLS)
}
