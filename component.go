package stockpile

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// maxComponentTypes bounds how many distinct component types a single
// registry can hold. The bound is one mask word; exceeding it returns
// ErrComponentLimit rather than silently corrupting masks.
const maxComponentTypes = 64

// schema assigns each component type a stable row index, which doubles as
// the type's bit position in entity masks.
type schema struct {
	rows map[reflect.Type]uint32
}

func newSchema() schema {
	return schema{rows: make(map[reflect.Type]uint32)}
}

func (s *schema) register(t reflect.Type) (uint32, error) {
	if row, ok := s.rows[t]; ok {
		return row, nil
	}
	if len(s.rows) >= maxComponentTypes {
		return 0, eris.Wrapf(ErrComponentLimit, "cannot register %s (max %d)", t, maxComponentTypes)
	}
	row := uint32(len(s.rows))
	s.rows[t] = row
	return row, nil
}

func (s *schema) rowOf(t reflect.Type) (uint32, bool) {
	row, ok := s.rows[t]
	return row, ok
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
