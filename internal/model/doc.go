package model

// Package model defines the feed's domain data: immutable feed items, the
// ordered feed sequence they live in, and the thumbnail load states shown by
// card views. Values here carry no UI types and are safe to share read-only.
