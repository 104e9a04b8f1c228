package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_PublishSubscribe(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe("run")
	ch2, cancel2 := h.Subscribe("run")
	defer cancel2()

	assert.Equal(t, 2, h.Publish("run", "hello"))
	assert.Equal(t, "hello", <-ch1)
	assert.Equal(t, "hello", <-ch2)

	assert.Equal(t, 0, h.Publish("other", "ignored"))

	cancel1()
	assert.Equal(t, 1, h.Subscribers("run"))
	assert.Equal(t, 1, h.Publish("run", "again"))
	assert.Equal(t, "again", <-ch2)
}

func TestHub_SlowSubscriberDropsMessages(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("run")
	defer cancel()

	delivered := 0
	for i := 0; i < 20; i++ {
		delivered += h.Publish("run", "m")
	}
	assert.Equal(t, 16, delivered)
}

func TestHub_CancelRemovesEmptyRun(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("run")
	cancel()
	assert.Equal(t, 0, h.Subscribers("run"))
	assert.Empty(t, h.conns)
}
