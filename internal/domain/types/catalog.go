package types

// Package is an immutable catalog entry. Amounts are in minor units.
type Package struct {
	ID          PackageID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Price       Cents     `json:"price" yaml:"price"`
	Retainer    Cents     `json:"retainerAmount" yaml:"retainer"`
	Coverage    string    `json:"coverage,omitempty" yaml:"coverage"`
	Turnaround  string    `json:"turnaround,omitempty" yaml:"turnaround"`
	Highlight   string    `json:"highlight,omitempty" yaml:"highlight"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Includes    []string  `json:"includes,omitempty" yaml:"includes"`
}
