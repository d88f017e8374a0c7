package render

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

var fontCache = newFaceLRU(32)

// SetFontCacheCapacity changes the max number of cached font faces.
func SetFontCacheCapacity(capacity int) {
	fontCache = newFaceLRU(capacity)
}

// ClearFontCache releases all cached font.Face objects.
func ClearFontCache() {
	fontCache.clear()
}

type faceEntry struct {
	key  string
	face font.Face
}

// faceLRU is a thread-safe LRU cache of font.Face objects. Fonts are
// process-global and may be shared by trees laid out on different
// threads, so this cache keeps its own lock even though the engine
// itself is single-threaded per tree. Evicted faces that implement
// Close() are closed.
type faceLRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // usage order, oldest first
}

func newFaceLRU(capacity int) *faceLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &faceLRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *faceLRU) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*faceEntry).face, true
	}
	return nil, false
}

func (c *faceLRU) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*faceEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Front(); oldest != nil {
			ent := oldest.Value.(*faceEntry)
			if closer, ok := ent.face.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&faceEntry{key: key, face: face})
	c.items[key] = el
}

func (c *faceLRU) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, el := range c.items {
		ent := el.Value.(*faceEntry)
		if closer, ok := ent.face.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
	c.items = make(map[string]*list.Element)
	c.order.Init()
}
