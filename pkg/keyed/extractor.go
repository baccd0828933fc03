package keyed

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/mandelsoft/jeemodel/pkg/utils"
)

// KeyExtractor derives the lookup key of a value.
// An extractor may return the zero value of K, which is used as
// the default bucket of a collection.
type KeyExtractor[K comparable, V any] interface {
	Extract(v V) (K, error)
}

// ExtractorFunc is a KeyExtractor given by a plain function.
type ExtractorFunc[K comparable, V any] func(v V) (K, error)

func (f ExtractorFunc[K, V]) Extract(v V) (K, error) {
	return f(v)
}

// Func provides an extractor for a function not able to fail.
func Func[K comparable, V any](f func(v V) K) KeyExtractor[K, V] {
	return ExtractorFunc[K, V](func(v V) (K, error) {
		return f(v), nil
	})
}

// Keyable is implemented by values providing their own key.
type Keyable[K comparable] interface {
	Key() K
}

// KeyOf returns the extractor for Keyable values.
func KeyOf[K comparable, V Keyable[K]]() KeyExtractor[K, V] {
	return ExtractorFunc[K, V](func(v V) (K, error) {
		var _nil K
		if isNil(v) {
			return _nil, fmt.Errorf("nil value")
		}
		return v.Key(), nil
	})
}

////////////////////////////////////////////////////////////////////////////////

var errorType = utils.TypeOf[error]()

type property[K comparable, V any] struct {
	name   string
	index  int
	failer bool
}

// ForProperty provides an extractor calling the accessor method
// Get<Name> of the value type V. The accessor must not take
// arguments and return a K or a K and an error.
// The method is resolved once here, a missing or incompatible
// accessor is reported as ConfigurationError.
func ForProperty[K comparable, V any](name string) (KeyExtractor[K, V], error) {
	t := utils.TypeOf[V]()
	kt := utils.TypeOf[K]()

	if name == "" {
		return nil, &ConfigurationError{Type: t, Property: name, Reason: "empty property name"}
	}
	mname := "Get" + capitalize(name)
	m, ok := t.MethodByName(mname)
	if !ok {
		return nil, &ConfigurationError{Type: t, Property: name, Reason: fmt.Sprintf("no accessor method %s", mname)}
	}

	ft := m.Type
	in := 0
	if t.Kind() != reflect.Interface {
		// method expression includes the receiver
		in = 1
	}
	if ft.NumIn() != in {
		return nil, &ConfigurationError{Type: t, Property: name, Reason: fmt.Sprintf("accessor %s must not take arguments", mname)}
	}
	switch ft.NumOut() {
	case 2:
		if ft.Out(1) != errorType {
			return nil, &ConfigurationError{Type: t, Property: name, Reason: fmt.Sprintf("second result of %s must be an error", mname)}
		}
		fallthrough
	case 1:
		if !ft.Out(0).AssignableTo(kt) {
			return nil, &ConfigurationError{Type: t, Property: name, Reason: fmt.Sprintf("result type %s of %s is not assignable to %s", ft.Out(0), mname, kt)}
		}
	default:
		return nil, &ConfigurationError{Type: t, Property: name, Reason: fmt.Sprintf("accessor %s must return a key", mname)}
	}
	return &property[K, V]{name: mname, index: m.Index, failer: ft.NumOut() == 2}, nil
}

// MustForProperty is like ForProperty, but panics on configuration errors.
// It is intended for package level variables.
func MustForProperty[K comparable, V any](name string) KeyExtractor[K, V] {
	e, err := ForProperty[K, V](name)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *property[K, V]) Extract(v V) (key K, err error) {
	if isNil(v) {
		return key, extractionError(v, fmt.Errorf("nil value"))
	}
	defer func() {
		if r := recover(); r != nil {
			err = extractionError(v, fmt.Errorf("%s panicked: %v", p.name, r))
		}
	}()

	out := reflect.ValueOf(&v).Elem().Method(p.index).Call(nil)
	if p.failer && !out[1].IsNil() {
		return key, extractionError(v, out[1].Interface().(error))
	}
	reflect.ValueOf(&key).Elem().Set(out[0])
	return key, nil
}

// isNil checks for nil pointers, also when wrapped by an
// interface. Values of other kinds are never nil.
func isNil[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
