package model

import (
	"fmt"
	"strings"
)

// Layout defaults shared by the feed and detail screens
const (
	DefaultRowHeight float32 = 300
	ThumbnailHeight  float32 = 200
)

// FeedItem describes one feed entry
type FeedItem struct {
	Title  string
	Detail string
	Date   string
	Image  string  // asset name resolvable to image bytes
	Height float32 // row height in the feed list
}

// Feed is a fixed, insertion-ordered sequence of feed items.
// It is never mutated after construction.
type Feed struct {
	items []FeedItem
}

// NewFeed creates a feed holding a copy of items
func NewFeed(items ...FeedItem) *Feed {
	cp := make([]FeedItem, len(items))
	copy(cp, items)
	return &Feed{items: cp}
}

// Len returns the number of items
func (f *Feed) Len() int {
	return len(f.items)
}

// Contains reports whether i is a valid position
func (f *Feed) Contains(i int) bool {
	return i >= 0 && i < len(f.items)
}

// At returns the item at position i.
// Querying outside [0, Len()) is a programming error and panics.
func (f *Feed) At(i int) FeedItem {
	if !f.Contains(i) {
		panic(fmt.Sprintf("model: feed index %d out of range [0,%d)", i, len(f.items)))
	}
	return f.items[i]
}

// Search returns positions of items whose title or detail contains query,
// ignoring case. An empty query matches every item.
func (f *Feed) Search(query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]int, 0, len(f.items))
	for i, item := range f.items {
		if q == "" ||
			strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Detail), q) {
			matches = append(matches, i)
		}
	}
	return matches
}
