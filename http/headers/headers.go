package headers

import (
	"github.com/indigo-web/utils/strcomp"
)

type Header struct {
	Key, Value string
}

// Headers is an ordered storage of header pairs, as they arrived. Keys aren't normalized
// and duplicates aren't merged, so the raw head can always be inspected positionally.
// All the lookups are case-insensitive linear scans.
type Headers struct {
	headers    []Header
	uniqueBuff []string
	valuesBuff []string
}

func New() *Headers {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance with pre-allocated underlying storage
func NewPrealloc(n int) *Headers {
	return &Headers{
		headers: make([]Header, 0, n),
	}
}

// FromPairs builds the storage from alternating keys and values. A trailing key without
// a value is ignored.
func FromPairs(pairs ...string) *Headers {
	h := NewPrealloc(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Add(pairs[i], pairs[i+1])
	}

	return h
}

// Add appends a new pair of key and value
func (h *Headers) Add(key, value string) *Headers {
	h.headers = append(h.headers, Header{
		Key:   key,
		Value: value,
	})

	return h
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns the first value corresponding to the key and a bool, indicating whether the key
// exists
func (h *Headers) Get(key string) (string, bool) {
	for _, header := range h.headers {
		if strcomp.EqualFold(key, header.Key) {
			return header.Value, true
		}
	}

	return "", false
}

// Values returns all values by the key in their arrival order. Returns nil if key doesn't exist.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use
func (h *Headers) Values(key string) []string {
	h.valuesBuff = h.valuesBuff[:0]

	for _, header := range h.headers {
		if strcomp.EqualFold(header.Key, key) {
			h.valuesBuff = append(h.valuesBuff, header.Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique presented keys, in their original case of the first occurrence.
//
// WARNING: calling it twice will override values, returned by the first call. Consider
// copying the returned slice for safe use
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, header := range h.headers {
		if contains(h.uniqueBuff, header.Key) {
			continue
		}

		h.uniqueBuff = append(h.uniqueBuff, header.Key)
	}

	return h.uniqueBuff
}

// Has indicates, whether there's an entry of the key
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// At returns the i-th header in arrival order. Panics if i is out of range
func (h *Headers) At(i int) Header {
	return h.headers[i]
}

// Len returns the total number of pairs, duplicates included
func (h *Headers) Len() int {
	return len(h.headers)
}

// Expose reveals underlying storage. The returned slice must not be modified
func (h *Headers) Expose() []Header {
	return h.headers
}

// Clone creates a deep copy, which may be used later or stored somewhere safely
func (h *Headers) Clone() *Headers {
	return &Headers{
		headers: clone(h.headers),
	}
}

// Clear all the entries. However, all the allocated space won't be freed
func (h *Headers) Clear() {
	h.headers = h.headers[:0]
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
