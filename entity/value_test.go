package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {

	assert.True(t, Value{}.Absent())
	assert.Equal(t, "", Value{}.String())
	assert.False(t, Value{}.Truthy())

	assert.Equal(t, "7.5", Number(7.5).String())
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Text("true").Truthy())

	f, err := Text("3.25").Float()
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	_, err = Text("three").Float()
	assert.ErrorContains(t, err, `value is not numeric: "three"`)

	i, err := Value{Raw: int64(4)}.Int()
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	_, err = Bool(true).Int()
	assert.EqualError(t, err, "value is not an int64: bool")
}

func TestValuesClone(t *testing.T) {

	var none Values
	assert.NotNil(t, none.Clone())
	assert.True(t, none.Get("x").Absent())

	vals := Values{"a": Text("x")}
	clone := vals.Clone()
	clone["a"] = Text("y")
	assert.Equal(t, "x", vals.Get("a").String())
}

func TestColumn(t *testing.T) {

	col := Column{Name: "role", Kind: KindSelect, Options: []string{"updater", "builder"}}
	assert.True(t, col.Valid(Value{}, ""))
	assert.True(t, col.HasOption("builder"))
	assert.False(t, col.HasOption("admin"))

	col.Validate = func(val Value, key string) bool { return key != "" || val.String() != "" }
	assert.False(t, col.Valid(Value{}, ""))
	assert.True(t, col.Valid(Value{}, "k"))

	assert.Equal(t, "Builder", Builder.Label())
	assert.Equal(t, "admin", Role("admin").Label())
}
