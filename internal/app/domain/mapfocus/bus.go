package mapfocus

import (
	"sync"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// Bus is the explicit subject carrying location-focus signals from the plan
// display to the map. Subscribers get their own buffered channel; slow
// subscribers drop events instead of blocking publishers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[chan models.GeoPoint]struct{}
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[chan models.GeoPoint]struct{}),
	}
}

// Subscribe registers a listener. The returned cancel function unregisters
// it and closes the channel; it is safe to call more than once.
func (b *Bus) Subscribe() (<-chan models.GeoPoint, func()) {
	ch := make(chan models.GeoPoint, 8)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish fans the point out to every subscriber without blocking.
func (b *Bus) Publish(point models.GeoPoint) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subscribers {
		select {
		case ch <- point:
		default:
		}
	}
}
