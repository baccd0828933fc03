package binding

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/mandelsoft/jeemodel/pkg/jee"
	"github.com/mandelsoft/jeemodel/pkg/utils"
)

var ErrUnknownDescriptor = errors.New("unknown descriptor type")

// Scheme is a set of descriptor types mapping root element
// names to Go types.
type Scheme interface {
	Names() []string
	HasType(name string) bool
	Create(name string) (jee.Descriptor, error)
	Register(name string, proto jee.Descriptor) error
}

type scheme struct {
	lock  sync.RWMutex
	types map[string]reflect.Type
}

var _ Scheme = (*scheme)(nil)

func NewScheme() Scheme {
	return &scheme{types: map[string]reflect.Type{}}
}

func (s *scheme) Register(name string, proto jee.Descriptor) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Pointer {
		return fmt.Errorf("proto type for %s must be pointer", name)
	}
	t = t.Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("proto type for %s must be pointer to struct", name)
	}
	if old := s.types[name]; old != nil && old != t {
		log.Debug("descriptor type {{name}} redefined from {{old}} to {{new}}", "name", name, "old", old, "new", t)
	}
	s.types[name] = t
	return nil
}

func (s *scheme) HasType(name string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.types[name] != nil
}

func (s *scheme) Create(name string) (jee.Descriptor, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	t := s.types[name]
	if t == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownDescriptor, name)
	}
	return reflect.New(t).Interface().(jee.Descriptor), nil
}

func (s *scheme) Names() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return utils.OrderedMapKeys(s.types)
}

type DescriptorType[P any] interface {
	jee.Descriptor
	*P
}

// Register registers the descriptor type T under the root element
// name provided by its GetDescriptorType method.
func Register[T any, P DescriptorType[T]](s Scheme) error {
	var proto T
	return s.Register(P(&proto).GetDescriptorType(), P(&proto))
}

func MustRegister[T any, P DescriptorType[T]](s Scheme) {
	err := Register[T, P](s)
	if err != nil {
		panic(err)
	}
}

// DefaultScheme knows all descriptor types of package jee.
var DefaultScheme = NewScheme()

func init() {
	MustRegister[jee.EjbJar](DefaultScheme)
	MustRegister[jee.WebApp](DefaultScheme)
	MustRegister[jee.Persistence](DefaultScheme)
}
