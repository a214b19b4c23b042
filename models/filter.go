package models

import "fmt"

// FilterOperator identifies a property-filter predicate.
type FilterOperator string

const (
	OpEquals    FilterOperator = "equals"
	OpNotEquals FilterOperator = "not-equals"
	OpContains  FilterOperator = "contains"
	OpExists    FilterOperator = "exists"
	OpNotExists FilterOperator = "not-exists"
)

// PropertyFilter is a single metadata predicate. Filters are immutable
// once constructed; build them with NewPropertyFilter so a malformed
// operator never reaches the filter engine.
type PropertyFilter struct {
	Key      string         `json:"key" mapstructure:"key" validate:"required"`
	Operator FilterOperator `json:"operator" mapstructure:"operator" validate:"required,oneof=equals not-equals contains exists not-exists"`
	Value    string         `json:"value,omitempty" mapstructure:"value"`
}

// NewPropertyFilter builds a validated PropertyFilter.
func NewPropertyFilter(key string, op FilterOperator, value string) (PropertyFilter, error) {
	f := PropertyFilter{Key: key, Operator: op, Value: value}
	if err := validate.Struct(f); err != nil {
		return PropertyFilter{}, fmt.Errorf("invalid property filter %q %s %q: %w", key, op, value, err)
	}
	return f, nil
}

// ValidateFilters validates a whole filter list, e.g. one loaded from config.
func ValidateFilters(filters []PropertyFilter) error {
	for i, f := range filters {
		if err := validate.Struct(f); err != nil {
			return fmt.Errorf("filter %d (%s): %w", i, f.Key, err)
		}
	}
	return nil
}
