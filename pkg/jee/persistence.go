package jee

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

const TYPE_PERSISTENCE = "persistence"

// Persistence is the root of a persistence.xml descriptor.
type Persistence struct {
	XMLName xml.Name `xml:"persistence" json:"-"`
	DescriptorMeta

	PersistenceUnits *keyed.Collection[string, *PersistenceUnit] `xml:"persistence-unit" json:"persistenceUnits,omitempty"`
}

var _ Descriptor = (*Persistence)(nil)

func NewPersistence(version string) *Persistence {
	return &Persistence{DescriptorMeta: DescriptorMeta{Version: version}}
}

func (p *Persistence) GetDescriptorType() string {
	return TYPE_PERSISTENCE
}

func (p *Persistence) DefaultNamespace() string {
	return NamespacePersistenceJakarta
}

func (p *Persistence) AddPersistenceUnit(u *PersistenceUnit) error {
	return add(&p.PersistenceUnits, u)
}

func (p *Persistence) GetPersistenceUnit(name string) *PersistenceUnit {
	return p.PersistenceUnits.Get(name)
}

type PersistenceTransactionType string

const (
	PersistenceJTA           PersistenceTransactionType = "JTA"
	PersistenceResourceLocal PersistenceTransactionType = "RESOURCE_LOCAL"
)

func (t *PersistenceTransactionType) UnmarshalText(data []byte) error {
	s := strings.TrimSpace(string(data))
	for _, v := range []PersistenceTransactionType{PersistenceJTA, PersistenceResourceLocal} {
		if strings.EqualFold(s, string(v)) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("invalid persistence transaction type %q", s)
}

type PersistenceUnit struct {
	Name            string                     `xml:"name,attr" json:"name"`
	TransactionType PersistenceTransactionType `xml:"transaction-type,attr,omitempty" json:"transactionType,omitempty"`

	Description            string                 `xml:"description,omitempty" json:"description,omitempty"`
	Provider               string                 `xml:"provider,omitempty" json:"provider,omitempty"`
	JtaDataSource          string                 `xml:"jta-data-source,omitempty" json:"jtaDataSource,omitempty"`
	NonJtaDataSource       string                 `xml:"non-jta-data-source,omitempty" json:"nonJtaDataSource,omitempty"`
	MappingFiles           []string               `xml:"mapping-file" json:"mappingFiles,omitempty"`
	JarFiles               []string               `xml:"jar-file" json:"jarFiles,omitempty"`
	Classes                []string               `xml:"class" json:"classes,omitempty"`
	ExcludeUnlistedClasses *Boolean               `xml:"exclude-unlisted-classes,omitempty" json:"excludeUnlistedClasses,omitempty"`
	SharedCacheMode        string                 `xml:"shared-cache-mode,omitempty" json:"sharedCacheMode,omitempty"`
	ValidationMode         string                 `xml:"validation-mode,omitempty" json:"validationMode,omitempty"`
	Properties             *PersistenceProperties `xml:"properties,omitempty" json:"properties,omitempty"`
}

func NewPersistenceUnit(name string, typ PersistenceTransactionType) *PersistenceUnit {
	return &PersistenceUnit{Name: name, TransactionType: typ}
}

func (u *PersistenceUnit) Key() string {
	return u.Name
}

// GetProperty returns the value of the given unit property.
func (u *PersistenceUnit) GetProperty(name string) (string, bool) {
	if u.Properties == nil {
		return "", false
	}
	p, ok := u.Properties.Property.Lookup(name)
	if !ok {
		return "", false
	}
	return p.Value, true
}

func (u *PersistenceUnit) SetProperty(name, value string) error {
	if u.Properties == nil {
		u.Properties = &PersistenceProperties{}
	}
	return add(&u.Properties.Property, &PersistenceProperty{Name: name, Value: value})
}

// GetPropertyMap returns a plain map of the unit properties.
func (u *PersistenceUnit) GetPropertyMap() map[string]string {
	if u.Properties == nil {
		return map[string]string{}
	}
	return PropertyMap(u.Properties.Property, func(p *PersistenceProperty) string { return p.Value })
}

type PersistenceProperties struct {
	Property *keyed.Collection[string, *PersistenceProperty] `xml:"property" json:"property,omitempty"`
}

// PersistenceProperty is a property given by attributes.
type PersistenceProperty struct {
	Name  string `xml:"name,attr" json:"name"`
	Value string `xml:"value,attr" json:"value"`
}

func (p *PersistenceProperty) Key() string {
	return p.Name
}
