// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (catalog, forms, wire payloads) and contracts
// (interfaces) only, plus the error kinds every layer reports with.
package domain
