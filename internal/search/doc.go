package search

// Package search implements the controller behind the search screen. It owns
// the view state, runs one lookup per submission and applies the outcome of
// the newest submission only.
