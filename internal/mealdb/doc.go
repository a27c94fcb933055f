package mealdb

// Package mealdb is the HTTP client for TheMealDB lookup endpoint. It issues a
// single GET per lookup, without retries, and classifies every failure as
// either a NetworkError or a NotFoundError.
