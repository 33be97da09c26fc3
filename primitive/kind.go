package primitive

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the built-in scalar types of the model schema language.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, it marks a type name that is not built in

	KindInt
	KindUint
	KindLong
	KindUlong
	KindShort
	KindUshort
	KindByte
	KindSbyte
	KindFloat
	KindDouble
	KindDecimal
	KindBool
	KindChar
	KindString
	KindDateTime
	KindGuid

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindsByName = map[string]KindEnum{
	"int":      KindInt,
	"uint":     KindUint,
	"long":     KindLong,
	"ulong":    KindUlong,
	"short":    KindShort,
	"ushort":   KindUshort,
	"byte":     KindByte,
	"sbyte":    KindSbyte,
	"float":    KindFloat,
	"double":   KindDouble,
	"decimal":  KindDecimal,
	"bool":     KindBool,
	"char":     KindChar,
	"string":   KindString,
	"DateTime": KindDateTime,
	"Guid":     KindGuid,
}

// goTypes holds the Go representation of every kind. decimal has no exact
// counterpart in the standard library and is carried as float64.
var goTypes = [KindTotal]reflect.Type{
	KindInt:      reflect.TypeFor[int32](),
	KindUint:     reflect.TypeFor[uint32](),
	KindLong:     reflect.TypeFor[int64](),
	KindUlong:    reflect.TypeFor[uint64](),
	KindShort:    reflect.TypeFor[int16](),
	KindUshort:   reflect.TypeFor[uint16](),
	KindByte:     reflect.TypeFor[uint8](),
	KindSbyte:    reflect.TypeFor[int8](),
	KindFloat:    reflect.TypeFor[float32](),
	KindDouble:   reflect.TypeFor[float64](),
	KindDecimal:  reflect.TypeFor[float64](),
	KindBool:     reflect.TypeFor[bool](),
	KindChar:     reflect.TypeFor[rune](),
	KindString:   reflect.TypeFor[string](),
	KindDateTime: reflect.TypeFor[time.Time](),
	KindGuid:     reflect.TypeFor[uuid.UUID](),
}

// LookupKind returns the built-in kind for a normalized type name, or the zero
// KindEnum when the name is not built in. The lookup is case-sensitive.
func LookupKind(name string) KindEnum {
	return kindsByName[name]
}

// IsValid reports whether k names a built-in kind.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// GoType returns the Go type a kind is rendered as, or nil for invalid kinds.
func (k KindEnum) GoType() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return goTypes[k]
}

// GoPackage returns the import path and the type name of the Go type for k.
// The import path is empty for predeclared types.
func (k KindEnum) GoPackage() (pkgPath, name string) {
	t := k.GoType()
	if t == nil {
		return "", ""
	}

	return t.PkgPath(), t.Name()
}
