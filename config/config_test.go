package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config") {
		assert.Fail(t, "zero-value field", field)
	}
}

func TestDefault(t *testing.T) {
	t.Run("independent instances", func(t *testing.T) {
		a, b := Default(), Default()
		a.Body.ChunkSize = 1
		require.Equal(t, 8192, b.Body.ChunkSize)
	})

	t.Run("line fits into the limits", func(t *testing.T) {
		cfg := Default()
		require.LessOrEqual(t, cfg.Headers.Number.Default, cfg.Headers.Number.Maximal)
		require.Greater(t, cfg.Headers.MaxLineLength, len("GET / HTTP/1.1"))
	})
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := range a.Value.NumField() {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fieldname := a.Type.Field(field).Name
			fields = append(fields, visit(v1, name+"."+fieldname)...)
		}

		return fields
	}

	if a.Value.IsZero() {
		return []string{name}
	}

	return nil
}
