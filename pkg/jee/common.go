package jee

import (
	"github.com/mandelsoft/jeemodel/pkg/i18n"
	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

const (
	NamespaceJ2EE    = "http://java.sun.com/xml/ns/j2ee"
	NamespaceJavaEE  = "http://java.sun.com/xml/ns/javaee"
	NamespaceJCP     = "http://xmlns.jcp.org/xml/ns/javaee"
	NamespaceJakarta = "https://jakarta.ee/xml/ns/jakartaee"

	NamespacePersistenceJavaEE  = "http://java.sun.com/xml/ns/persistence"
	NamespacePersistenceJCP     = "http://xmlns.jcp.org/xml/ns/persistence"
	NamespacePersistenceJakarta = "https://jakarta.ee/xml/ns/persistence"
)

// Descriptor is the root object of a deployment descriptor.
type Descriptor interface {
	// GetDescriptorType returns the local name of the root element.
	GetDescriptorType() string
	// DefaultNamespace is the namespace used for serialization
	// if the descriptor does not provide one.
	DefaultNamespace() string

	GetNamespace() string
	SetNamespace(ns string)
	GetVersion() string
}

// DescriptorMeta holds the attributes common to all root elements.
type DescriptorMeta struct {
	Namespace string `xml:"xmlns,attr,omitempty" json:"-"`
	Version   string `xml:"version,attr,omitempty" json:"version,omitempty"`
	Id        string `xml:"id,attr,omitempty" json:"id,omitempty"`
}

func (m *DescriptorMeta) GetNamespace() string {
	return m.Namespace
}

func (m *DescriptorMeta) SetNamespace(ns string) {
	m.Namespace = ns
}

func (m *DescriptorMeta) GetVersion() string {
	return m.Version
}

////////////////////////////////////////////////////////////////////////////////

type Icon struct {
	Lang      string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty" json:"lang,omitempty"`
	SmallIcon string `xml:"small-icon,omitempty" json:"smallIcon,omitempty"`
	LargeIcon string `xml:"large-icon,omitempty" json:"largeIcon,omitempty"`
}

func (i *Icon) GetLang() string {
	if i == nil {
		return ""
	}
	return i.Lang
}

// DescriptionGroup is the localized description, display name and icon
// set shared by most descriptor elements.
type DescriptionGroup struct {
	Descriptions *i18n.TextMap                `xml:"description" json:"descriptions,omitempty"`
	DisplayNames *i18n.TextMap                `xml:"display-name" json:"displayNames,omitempty"`
	Icons        *i18n.LocalCollection[*Icon] `xml:"icon" json:"icons,omitempty"`
}

func (g *DescriptionGroup) GetDescription(lang string) string {
	return g.Descriptions.Get(lang)
}

func (g *DescriptionGroup) SetDescription(lang, text string) {
	if g.Descriptions == nil {
		g.Descriptions = &i18n.TextMap{}
	}
	g.Descriptions.Set(lang, text)
}

func (g *DescriptionGroup) GetDisplayName(lang string) string {
	return g.DisplayNames.Get(lang)
}

func (g *DescriptionGroup) SetDisplayName(lang, text string) {
	if g.DisplayNames == nil {
		g.DisplayNames = &i18n.TextMap{}
	}
	g.DisplayNames.Set(lang, text)
}

// GetIcon returns the icon for the given language, or the
// icon without language.
func (g *DescriptionGroup) GetIcon(lang string) *Icon {
	i, _ := g.Icons.Resolve(lang)
	return i
}

func (g *DescriptionGroup) AddIcon(i *Icon) {
	if g.Icons == nil {
		g.Icons = &i18n.LocalCollection[*Icon]{}
	}
	// the language key extractor cannot fail
	_ = g.Icons.Add(i)
}

////////////////////////////////////////////////////////////////////////////////

// ParamValue is a name/value pair like context-param or init-param.
type ParamValue struct {
	Descriptions *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	ParamName    string        `xml:"param-name" json:"paramName"`
	ParamValue   string        `xml:"param-value" json:"paramValue"`
}

func NewParamValue(name, value string) *ParamValue {
	return &ParamValue{ParamName: name, ParamValue: value}
}

func (p *ParamValue) Key() string {
	return p.ParamName
}

// Property is a name/value pair given by nested elements.
type Property struct {
	Name  string `xml:"name" json:"name"`
	Value string `xml:"value" json:"value"`
}

func NewProperty(name, value string) *Property {
	return &Property{Name: name, Value: value}
}

func (p *Property) Key() string {
	return p.Name
}

// PropertyMap provides a plain map view on a property collection.
func PropertyMap[V keyed.Keyable[string]](c *keyed.Collection[string, V], value func(V) string) map[string]string {
	r := map[string]string{}
	for k, v := range c.Map() {
		r[k] = value(v)
	}
	return r
}

func add[V keyed.Keyable[string]](c **keyed.Collection[string, V], v V) error {
	if *c == nil {
		*c = keyed.New[string, V]()
	}
	return (*c).Add(v)
}
