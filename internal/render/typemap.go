package render

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/xavier-fernandez/slick/internal/types"
)

// baseTypeNames is the vendor-neutral mapping from logical type to SQL type
// name. Dialects override individual entries and inherit the rest.
var baseTypeNames = map[types.TypeCode]string{
	types.TBool:      "BOOLEAN",
	types.TSmallInt:  "SMALLINT",
	types.TInt:       "INTEGER",
	types.TBigInt:    "BIGINT",
	types.TDouble:    "DOUBLE PRECISION",
	types.TDecimal:   "DECIMAL(21,2)",
	types.TChar:      "CHAR(1)",
	types.TString:    "VARCHAR(254)",
	types.TBytes:     "BLOB",
	types.TDate:      "DATE",
	types.TTime:      "TIME",
	types.TTimestamp: "TIMESTAMP",
	types.TUUID:      "UUID",
}

// LiteralFormatter renders one non-nil value as a SQL literal fragment,
// replacing the shared default for its logical type.
type LiteralFormatter func(v any) (string, error)

// TypeMap is a total, immutable logical-to-vendor type mapping composed at
// dialect construction from the base table plus dialect overrides. Literal
// formatting follows the same pattern: a per-type formatter override is
// consulted before the shared default, so vendors with divergent literal
// syntax (bit booleans, 0x binary, backslash string escapes) replace only
// the types that differ.
type TypeMap struct {
	dialect  string
	names    map[types.TypeCode]string
	literals map[types.TypeCode]LiteralFormatter
}

// NewTypeMap composes the base mapping with dialect overrides. Overriding
// with an empty name removes the entry, which turns composition into an
// UnmappedTypeError: a dialect cannot ship with a hole in its type set.
func NewTypeMap(dialect string, overrides map[types.TypeCode]string, literals map[types.TypeCode]LiteralFormatter) (*TypeMap, error) {
	names := make(map[types.TypeCode]string, len(baseTypeNames))
	for code, name := range baseTypeNames {
		names[code] = name
	}
	for code, name := range overrides {
		if name == "" {
			delete(names, code)
			continue
		}
		names[code] = name
	}
	for _, code := range types.AllTypeCodes {
		if names[code] == "" {
			return nil, UnmappedTypeError{Dialect: dialect, Type: code}
		}
	}
	return &TypeMap{dialect: dialect, names: names, literals: literals}, nil
}

// Name returns the vendor SQL type name for a logical type. The map is total
// by construction, so lookup cannot fail.
func (m *TypeMap) Name(code types.TypeCode) string {
	return m.names[code]
}

// Literal renders a Go value as a SQL literal fragment for the given logical
// type. A nil value renders NULL regardless of type; dialect formatter
// overrides see only non-nil values.
func (m *TypeMap) Literal(code types.TypeCode, v any) (string, error) {
	if v == nil {
		return "NULL", nil
	}
	if f := m.literals[code]; f != nil {
		return f(v)
	}
	switch code {
	case types.TBool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("%s: %s literal requires bool, got %T", m.dialect, code, v)
		}
		if b {
			return "TRUE", nil
		}
		return "FALSE", nil
	case types.TSmallInt, types.TInt, types.TBigInt:
		return integerLiteral(m.dialect, code, v)
	case types.TDouble:
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
		default:
			return integerLiteral(m.dialect, code, v)
		}
	case types.TDecimal:
		switch n := v.(type) {
		case string:
			return n, nil
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		default:
			return integerLiteral(m.dialect, code, v)
		}
	case types.TChar, types.TString, types.TUUID:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%s: %s literal requires string, got %T", m.dialect, code, v)
		}
		return "'" + EscapeString(s) + "'", nil
	case types.TBytes:
		b, ok := v.([]byte)
		if !ok {
			return "", fmt.Errorf("%s: %s literal requires []byte, got %T", m.dialect, code, v)
		}
		return "X'" + hex.EncodeToString(b) + "'", nil
	case types.TDate:
		return timeLiteral(m.dialect, code, v, "2006-01-02")
	case types.TTime:
		return timeLiteral(m.dialect, code, v, "15:04:05")
	case types.TTimestamp:
		return timeLiteral(m.dialect, code, v, "2006-01-02 15:04:05")
	default:
		return "", fmt.Errorf("%s: no literal form for logical type %s", m.dialect, code)
	}
}

func integerLiteral(dialect string, code types.TypeCode, v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	default:
		return "", fmt.Errorf("%s: %s literal requires integer, got %T", dialect, code, v)
	}
}

func timeLiteral(dialect string, code types.TypeCode, v any, layout string) (string, error) {
	switch t := v.(type) {
	case time.Time:
		return "'" + t.Format(layout) + "'", nil
	case string:
		return "'" + EscapeString(t) + "'", nil
	default:
		return "", fmt.Errorf("%s: %s literal requires time.Time or string, got %T", dialect, code, v)
	}
}
