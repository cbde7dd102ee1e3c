package render

import (
	"fmt"

	"github.com/xavier-fernandez/slick/internal/types"
)

// UnsupportedFeatureError indicates a construct the target vendor cannot
// express. The feature name is always specific so callers can tell which
// query feature to avoid for this dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnmappedTypeError indicates a logical type without a vendor mapping. It is
// raised when a dialect is constructed, never mid-render: a successfully
// constructed engine is total over the logical type set.
type UnmappedTypeError struct {
	Dialect string
	Type    types.TypeCode
}

func (e UnmappedTypeError) Error() string {
	return fmt.Sprintf("%s: logical type %s has no vendor type mapping", e.Dialect, e.Type)
}
