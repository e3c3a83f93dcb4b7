package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"everafter/internal/domain"
)

// Catalog is an immutable, ordered package table.
type Catalog struct {
	order []domain.PackageID
	byID  map[domain.PackageID]domain.Package
	md    goldmark.Markdown
}

var _ domain.Catalog = (*Catalog)(nil)

// New validates pkgs and builds a catalog preserving their order.
func New(pkgs []domain.Package) (*Catalog, error) {
	if len(pkgs) == 0 {
		return nil, errors.New("catalog: no packages")
	}
	c := &Catalog{
		order: make([]domain.PackageID, 0, len(pkgs)),
		byID:  make(map[domain.PackageID]domain.Package, len(pkgs)),
		md:    goldmark.New(),
	}
	for _, p := range pkgs {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate package %q", p.ID)
		}
		p = clone(p)
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = p
	}
	return c, nil
}

func validate(p domain.Package) error {
	switch {
	case strings.TrimSpace(string(p.ID)) == "":
		return errors.New("catalog: package with empty id")
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("catalog: package %q has no name", p.ID)
	case p.Retainer <= 0:
		return fmt.Errorf("catalog: package %q retainer must be positive", p.ID)
	case p.Price <= 0:
		return fmt.Errorf("catalog: package %q price must be positive", p.ID)
	case p.Retainer > p.Price:
		return fmt.Errorf("catalog: package %q retainer %s exceeds price %s", p.ID, p.Retainer, p.Price)
	}
	return nil
}

// file is the YAML layout of a catalog override.
type file struct {
	Packages []domain.Package `yaml:"packages"`
}

// LoadFile reads a YAML catalog override from path.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a YAML catalog document.
func Parse(b []byte) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(f.Packages)
}

// Lookup resolves id. Unknown ids are a validation error wrapping
// domain.ErrUnknownPackage.
func (c *Catalog) Lookup(id domain.PackageID) (domain.Package, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Package{}, domain.Validationf(domain.ErrUnknownPackage, "Invalid package selection.")
	}
	return clone(p), nil
}

// List returns the packages in catalog order.
func (c *Catalog) List() []domain.Package {
	out := make([]domain.Package, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.byID[id]))
	}
	return out
}

func clone(p domain.Package) domain.Package {
	p.Includes = append([]string(nil), p.Includes...)
	return p
}

// DescriptionHTML renders p's markdown description. Raw HTML in the source is
// dropped by the renderer.
func (c *Catalog) DescriptionHTML(p domain.Package) (string, error) {
	if p.Description == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(p.Description), &buf); err != nil {
		return "", fmt.Errorf("catalog: render %q: %w", p.ID, err)
	}
	return buf.String(), nil
}
