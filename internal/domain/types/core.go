package types

import "fmt"

// PackageID identifies a catalog entry, e.g. "essential".
type PackageID string

// String returns the string form of the package id.
func (id PackageID) String() string { return string(id) }

// Cents is an amount in minor currency units.
type Cents int64

// String formats c as dollars with two decimals, e.g. "$340.00".
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// Currency is a lower-case ISO 4217 code as the processor expects it.
type Currency string

// USD is the only currency the studio charges in.
const USD Currency = "usd"
