package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ID identifies a product. The catalog endpoint may send it as a JSON number
// or a string, both decode to the same textual form.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unable to decode product id %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

// Product is a single catalog record. Products are never mutated once fetched,
// a new fetch replaces the whole sequence.
type Product struct {
	ID       ID      `json:"id" yaml:"id" validate:"required"`
	Title    string  `json:"title" yaml:"title" validate:"required"`
	Price    float64 `json:"price" yaml:"price" validate:"gte=0"`
	Category string  `json:"category" yaml:"category" validate:""`
	Image    string  `json:"image" yaml:"image" validate:""`
}

var validate = validator.New()

func (p *Product) Validate() error {
	return validate.Struct(*p)
}

// ProductsByPrice orders products by ascending price. Use with sort.Stable so
// ties keep their catalog order.
type ProductsByPrice []Product

func (p ProductsByPrice) Len() int           { return len(p) }
func (p ProductsByPrice) Less(i, j int) bool { return p[i].Price < p[j].Price }
func (p ProductsByPrice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// SortKey selects the ordering of the catalog.
type SortKey string

const (
	SortByPrice SortKey = "price"
	SortByName  SortKey = "name"

	DefaultSortKey = SortByPrice
)

var sortKeys = []SortKey{SortByPrice, SortByName}

// ParseSortKey accepts "price" or "name" in any case. The empty string yields
// the default key.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSortKey, nil
	}
	for _, k := range sortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q, expected one of %v", s, sortKeys)
}

// Next cycles through the sort keys, used by the sort selector.
func (k SortKey) Next() SortKey {
	for i, x := range sortKeys {
		if x == k {
			return sortKeys[(i+1)%len(sortKeys)]
		}
	}
	return DefaultSortKey
}

func (k SortKey) String() string { return string(k) }
