package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishDeliversToEverySubscriberOfUser(t *testing.T) {
	hub := NewHub()
	first, cleanupFirst := hub.Subscribe("1")
	defer cleanupFirst()
	second, cleanupSecond := hub.Subscribe("1")
	defer cleanupSecond()
	other, cleanupOther := hub.Subscribe("2")
	defer cleanupOther()

	sent := hub.Publish("1", "bookmark.toggled", map[string]int{"employee_id": 7})

	got := <-first
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, "bookmark.toggled", got.Name)
	assert.Equal(t, sent.ID, (<-second).ID)

	select {
	case e := <-other:
		t.Fatalf("unexpected event for other user: %+v", e)
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("1")
	assert.Equal(t, 1, hub.SubscriberCount("1"))

	cleanup()
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("1"))
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("1")
	defer cleanup()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish("1", "tick", i)
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestEvent_WriteTo(t *testing.T) {
	e := Event{ID: "abc", Name: "bookmark.toggled", Data: map[string]bool{"is_bookmarked": true}}

	var buf bytes.Buffer
	_, err := e.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "id: abc\nevent: bookmark.toggled\ndata: {\"is_bookmarked\":true}\n\n", buf.String())
}
