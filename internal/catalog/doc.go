// Package catalog holds the studio's package table.
//
// The table is the single source of prices on the server: create-intent,
// confirm-payment and contract submission all resolve a package id through
// Lookup, and nothing a client sends can change an amount. The built-in
// table can be replaced by a YAML file at startup; it is never mutated
// afterwards.
package catalog
