package score

// Entry is one header key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Header is the metadata block of a score: an insertion-ordered mapping.
// Setting an existing key replaces its value and keeps its original position.
type Header struct {
	entries []Entry
	index   map[string]int
}

// NewHeader returns an empty header.
func NewHeader() *Header {
	return &Header{index: make(map[string]int)}
}

// Set stores value under key.
func (h *Header) Set(key, value string) {
	if h.index == nil {
		h.index = make(map[string]int)
	}
	if i, ok := h.index[key]; ok {
		h.entries[i].Value = value
		return
	}
	h.index[key] = len(h.entries)
	h.entries = append(h.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (h *Header) Get(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	i, ok := h.index[key]
	if !ok {
		return "", false
	}
	return h.entries[i].Value, true
}

// Len returns the number of distinct keys.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Keys returns the keys in insertion order.
func (h *Header) Keys() []string {
	if h == nil {
		return nil
	}
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (h *Header) Entries() []Entry {
	if h == nil {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Map returns the header as a plain map.
func (h *Header) Map() map[string]string {
	m := make(map[string]string, h.Len())
	if h == nil {
		return m
	}
	for _, e := range h.entries {
		m[e.Key] = e.Value
	}
	return m
}
