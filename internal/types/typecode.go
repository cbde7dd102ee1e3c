package types

// TypeCode identifies a logical column type. The set is closed: every
// dialect's type map must be total over it, checked at construction.
type TypeCode int

const (
	TBool TypeCode = iota
	TSmallInt
	TInt
	TBigInt
	TDouble
	TDecimal
	TChar
	TString
	TBytes
	TDate
	TTime
	TTimestamp
	TUUID
)

// AllTypeCodes lists every logical type, in declaration order. Used for
// totality checks when composing a dialect's type map.
var AllTypeCodes = []TypeCode{
	TBool, TSmallInt, TInt, TBigInt, TDouble, TDecimal,
	TChar, TString, TBytes, TDate, TTime, TTimestamp, TUUID,
}

// String returns the logical type name used in error messages.
func (t TypeCode) String() string {
	switch t {
	case TBool:
		return "Bool"
	case TSmallInt:
		return "SmallInt"
	case TInt:
		return "Int"
	case TBigInt:
		return "BigInt"
	case TDouble:
		return "Double"
	case TDecimal:
		return "Decimal"
	case TChar:
		return "Char"
	case TString:
		return "String"
	case TBytes:
		return "Bytes"
	case TDate:
		return "Date"
	case TTime:
		return "Time"
	case TTimestamp:
		return "Timestamp"
	case TUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}
