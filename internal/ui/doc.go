package ui

// Package ui contains the Fyne-based user interface for the recipes feed.
// A Shell hosts screens behind a shared navigation bar and a collapsible side
// panel; the FeedScreen renders the feed as recycled card rows and loads
// thumbnails in the background. All UI strings are localized via Localization.
