package text

import "sort"

// Counter counts occurrences of comparable values and remembers the order in
// which each value was first added.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

// Entry is a value together with its count.
type Entry[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

func NewCounter[K comparable](items ...K) *Counter[K] {
	c := &Counter[K]{counts: make(map[K]int)}
	c.AddAll(items)
	return c
}

// Add increments key by n. A key added with n == 0 is still tracked.
func (c *Counter[K]) Add(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

func (c *Counter[K]) AddAll(items []K) {
	for _, item := range items {
		c.Add(item, 1)
	}
}

func (c *Counter[K]) Get(key K) int {
	return c.counts[key]
}

func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Keys returns the tracked keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	out := make([]K, len(c.order))
	copy(out, c.order)
	return out
}

// Total is the sum of all counts.
func (c *Counter[K]) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// MostCommon returns the n highest counts, highest first. Equal counts keep
// first-seen order. n <= 0 returns every entry.
func (c *Counter[K]) MostCommon(n int) []Entry[K] {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Entries returns every entry in first-seen order.
func (c *Counter[K]) Entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, Entry[K]{Key: k, Count: c.counts[k]})
	}
	return entries
}

// Map returns a copy of the counts.
func (c *Counter[K]) Map() map[K]int {
	out := make(map[K]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
