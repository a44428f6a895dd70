package soap

import (
	"container/list"
	"sync"
)

type memoEntry struct {
	key   string
	value string
}

// memo is an LRU of sanitize results keyed by input text. It is cleared
// whenever the replacement table changes.
type memo struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// newMemo returns nil for non-positive capacity; a nil memo never stores anything.
func newMemo(capacity int) *memo {
	if capacity <= 0 {
		return nil
	}
	return &memo{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (m *memo) get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.eviction.MoveToFront(elem)
		return elem.Value.(*memoEntry).value, true
	}
	return "", false
}

func (m *memo) put(key, value string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.eviction.MoveToFront(elem)
		elem.Value.(*memoEntry).value = value
		return
	}

	m.items[key] = m.eviction.PushFront(&memoEntry{key: key, value: value})
	if m.eviction.Len() > m.capacity {
		if oldest := m.eviction.Back(); oldest != nil {
			m.eviction.Remove(oldest)
			delete(m.items, oldest.Value.(*memoEntry).key)
		}
	}
}

func (m *memo) len() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eviction.Len()
}

func (m *memo) clear() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]*list.Element)
	m.eviction.Init()
}
