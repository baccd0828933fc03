package loader

import (
	"github.com/mandelsoft/jeemodel/pkg/jee"
	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

// Descriptor is a decoded descriptor found in a module.
type Descriptor struct {
	Location string         `json:"location"`
	Type     string         `json:"type"`
	Object   jee.Descriptor `json:"-"`
}

func (d *Descriptor) GetLocation() string {
	return d.Location
}

var byLocation = keyed.MustForProperty[string, *Descriptor]("location")

// Module is the set of descriptors of a module directory
// indexed by their location relative to the module root.
type Module struct {
	Path        string
	descriptors *keyed.Collection[string, *Descriptor]
}

func NewModule(path string) *Module {
	return &Module{Path: path, descriptors: keyed.New[string, *Descriptor](byLocation)}
}

func (m *Module) Add(d *Descriptor) error {
	return m.descriptors.Add(d)
}

func (m *Module) Len() int {
	return m.descriptors.Len()
}

func (m *Module) Descriptors() []*Descriptor {
	return m.descriptors.List()
}

func (m *Module) Get(location string) *Descriptor {
	return m.descriptors.Get(location)
}

func (m *Module) EjbJar() *jee.EjbJar {
	return first[*jee.EjbJar](m)
}

func (m *Module) WebApp() *jee.WebApp {
	return first[*jee.WebApp](m)
}

// Persistence returns all persistence descriptors, a web module
// may provide one in WEB-INF/classes.
func (m *Module) Persistence() []*jee.Persistence {
	return all[*jee.Persistence](m)
}

// PersistenceUnits returns the persistence units of all persistence
// descriptors. Later definitions override earlier ones.
func (m *Module) PersistenceUnits() (*keyed.Collection[string, *jee.PersistenceUnit], error) {
	r := keyed.New[string, *jee.PersistenceUnit]()
	for _, p := range m.Persistence() {
		for _, u := range p.PersistenceUnits.List() {
			if r.Has(u.Name) {
				log.Info("persistence unit {{unit}} redefined in module {{module}}", "unit", u.Name, "module", m.Path)
			}
			if err := r.Add(u); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Consumers returns all elements of the module owning a
// JNDI environment.
func (m *Module) Consumers() []jee.JndiConsumer {
	var r []jee.JndiConsumer
	if w := m.WebApp(); w != nil {
		r = append(r, w)
	}
	if j := m.EjbJar(); j != nil {
		for _, b := range j.GetEnterpriseBeans() {
			r = append(r, b)
		}
	}
	return r
}

func first[T jee.Descriptor](m *Module) T {
	var _nil T
	for _, d := range m.descriptors.List() {
		if o, ok := d.Object.(T); ok {
			return o
		}
	}
	return _nil
}

func all[T jee.Descriptor](m *Module) []T {
	var r []T
	for _, d := range m.descriptors.List() {
		if o, ok := d.Object.(T); ok {
			r = append(r, o)
		}
	}
	return r
}
