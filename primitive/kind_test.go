package primitive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"model-generator/primitive"
)

func Example() {
	fmt.Println(primitive.LookupKind("int"))
	fmt.Println(primitive.LookupKind("DateTime"))
	fmt.Println(primitive.LookupKind("Address"))
	fmt.Println(primitive.Classify("Guid?"))
	fmt.Println(primitive.Classify("Address"))
	// Output:
	// KindInt
	// KindDateTime
	// KindEnum(0)
	// CategorySimple
	// CategoryComposite
}

func TestKindEnum_GoPackage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    primitive.KindEnum
		pkgPath string
		name    string
	}{
		{primitive.KindInt, "", "int32"},
		{primitive.KindLong, "", "int64"},
		{primitive.KindByte, "", "uint8"},
		{primitive.KindDecimal, "", "float64"},
		{primitive.KindChar, "", "int32"},
		{primitive.KindString, "", "string"},
		{primitive.KindDateTime, "time", "Time"},
		{primitive.KindGuid, "github.com/google/uuid", "UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			pkgPath, name := tt.kind.GoPackage()
			assert.Equal(t, tt.pkgPath, pkgPath)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestKindEnum_Invalid(t *testing.T) {
	t.Parallel()

	var k primitive.KindEnum
	assert.False(t, k.IsValid())
	assert.Nil(t, k.GoType())

	for i := 1; i < primitive.KindTotal; i++ {
		assert.True(t, primitive.KindEnum(i).IsValid())
		assert.NotNil(t, primitive.KindEnum(i).GoType(), primitive.KindEnum(i).String())
	}
}
