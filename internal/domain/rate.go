package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rate is a percentage carried as a decimal, decodable from YAML and JSON
// scalars. yaml.v3 cannot populate decimal.Decimal directly, so the wrapper
// bridges the two.
type Rate struct {
	decimal.Decimal
}

// NewRate builds a Rate from a decimal.
func NewRate(d decimal.Decimal) Rate {
	return Rate{Decimal: d}
}

// RateFromInt builds a whole-number percentage rate.
func RateFromInt(n int64) Rate {
	return Rate{Decimal: decimal.NewFromInt(n)}
}

// UnmarshalYAML decodes a YAML scalar into the rate.
func (r *Rate) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", value.Value, err)
	}
	r.Decimal = d
	return nil
}

// MarshalYAML encodes the rate as a scalar.
func (r Rate) MarshalYAML() (interface{}, error) {
	return r.Decimal.String(), nil
}
