package products

import (
	"sort"
	"strings"
)

const (
	// NotFound is the sentinel category for unresolvable product ids.
	NotFound = "not_found"

	columnAttributes  = "attributes"
	columnArtikelcode = "Artikelcode"
	attributeBereich  = "bereich"

	masterSKULen = 14
	fullSKULen   = 22
)

// Resolver answers category and article-code lookups against the static
// product catalog. It is pure after construction and safe for shared use.
type Resolver struct {
	catalog Catalog
}

func NewResolver(catalog Catalog) *Resolver {
	if catalog == nil {
		catalog = Catalog{}
	}
	return &Resolver{catalog: catalog}
}

// Resolve returns the parsed attribute set of a product. Full-length skus
// are stripped to their 14-character master prefix; any other length or a
// lookup miss yields an empty set.
func (r *Resolver) Resolve(productID string) map[string][]string {
	return parseAttributes(r.row(productID)[columnAttributes])
}

// Bereich returns the single category value of a product, or NotFound when
// the product is unknown or carries no bereich attribute.
func (r *Resolver) Bereich(productID string) string {
	values := r.Resolve(productID)[attributeBereich]
	if len(values) == 0 {
		return NotFound
	}
	// there should be only one bereich
	return values[0]
}

// Artikelcode returns the first digits characters of the product's article
// code, or "" when unavailable.
func (r *Resolver) Artikelcode(productID string, digits int) string {
	code := r.row(productID)[columnArtikelcode]
	if digits < 0 {
		digits = 0
	}
	if len(code) > digits {
		code = code[:digits]
	}
	return code
}

func (r *Resolver) row(productID string) map[string]string {
	switch len(productID) {
	case fullSKULen:
		return r.catalog[productID[:masterSKULen]]
	case masterSKULen:
		return r.catalog[productID]
	default:
		return nil
	}
}

// parseAttributes parses a brace-delimited, comma-separated list of
// name-value pairs, e.g. `{bereich-electronics,bereich-sale}`. Values per
// name are collected and sorted. Malformed input yields an empty map.
func parseAttributes(raw string) map[string][]string {
	raw = strings.Trim(raw, `"{}`)
	if raw == "" {
		return map[string][]string{}
	}

	attributes := make(map[string][]string)
	for _, attr := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(attr, "-")
		if !ok {
			continue
		}
		attributes[name] = append(attributes[name], value)
	}
	for _, values := range attributes {
		sort.Strings(values)
	}
	return attributes
}
