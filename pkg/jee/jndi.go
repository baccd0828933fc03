package jee

import (
	"github.com/mandelsoft/jeemodel/pkg/i18n"
	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

// JndiConsumer is an element owning a JNDI environment,
// for example an enterprise bean or a web application.
type JndiConsumer interface {
	GetJndiConsumerName() string
	GetEnvironment() *JndiEnvironment
}

// JndiReference is implemented by all environment entries.
type JndiReference interface {
	keyed.Keyable[string]
	GetName() string
	GetMappedName() string
	GetLookupName() string
}

// ReferenceBase holds the common fields of all environment entries.
type ReferenceBase struct {
	MappedName string `xml:"mapped-name,omitempty" json:"mappedName,omitempty"`
	LookupName string `xml:"lookup-name,omitempty" json:"lookupName,omitempty"`
}

func (r *ReferenceBase) GetMappedName() string {
	return r.MappedName
}

func (r *ReferenceBase) GetLookupName() string {
	return r.LookupName
}

type EnvEntry struct {
	Descriptions  *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	EnvEntryName  string        `xml:"env-entry-name" json:"envEntryName"`
	EnvEntryType  string        `xml:"env-entry-type,omitempty" json:"envEntryType,omitempty"`
	EnvEntryValue string        `xml:"env-entry-value,omitempty" json:"envEntryValue,omitempty"`
	ReferenceBase
}

func NewEnvEntry(name, typ, value string) *EnvEntry {
	return &EnvEntry{EnvEntryName: name, EnvEntryType: typ, EnvEntryValue: value}
}

func (e *EnvEntry) Key() string     { return e.EnvEntryName }
func (e *EnvEntry) GetName() string { return e.EnvEntryName }

type EjbRef struct {
	Descriptions *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	EjbRefName   string        `xml:"ejb-ref-name" json:"ejbRefName"`
	EjbRefType   string        `xml:"ejb-ref-type,omitempty" json:"ejbRefType,omitempty"`
	Home         string        `xml:"home,omitempty" json:"home,omitempty"`
	Remote       string        `xml:"remote,omitempty" json:"remote,omitempty"`
	EjbLink      string        `xml:"ejb-link,omitempty" json:"ejbLink,omitempty"`
	ReferenceBase
}

func (e *EjbRef) Key() string     { return e.EjbRefName }
func (e *EjbRef) GetName() string { return e.EjbRefName }

type EjbLocalRef struct {
	Descriptions *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	EjbRefName   string        `xml:"ejb-ref-name" json:"ejbRefName"`
	EjbRefType   string        `xml:"ejb-ref-type,omitempty" json:"ejbRefType,omitempty"`
	LocalHome    string        `xml:"local-home,omitempty" json:"localHome,omitempty"`
	Local        string        `xml:"local,omitempty" json:"local,omitempty"`
	EjbLink      string        `xml:"ejb-link,omitempty" json:"ejbLink,omitempty"`
	ReferenceBase
}

func (e *EjbLocalRef) Key() string     { return e.EjbRefName }
func (e *EjbLocalRef) GetName() string { return e.EjbRefName }

type ResAuth string

const (
	ResAuthApplication ResAuth = "Application"
	ResAuthContainer   ResAuth = "Container"
)

type ResourceRef struct {
	Descriptions    *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	ResRefName      string        `xml:"res-ref-name" json:"resRefName"`
	ResType         string        `xml:"res-type,omitempty" json:"resType,omitempty"`
	ResAuth         ResAuth       `xml:"res-auth,omitempty" json:"resAuth,omitempty"`
	ResSharingScope string        `xml:"res-sharing-scope,omitempty" json:"resSharingScope,omitempty"`
	ReferenceBase
}

func NewResourceRef(name, typ string) *ResourceRef {
	return &ResourceRef{ResRefName: name, ResType: typ}
}

func (r *ResourceRef) Key() string     { return r.ResRefName }
func (r *ResourceRef) GetName() string { return r.ResRefName }

type ResourceEnvRef struct {
	Descriptions       *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	ResourceEnvRefName string        `xml:"resource-env-ref-name" json:"resourceEnvRefName"`
	ResourceEnvRefType string        `xml:"resource-env-ref-type,omitempty" json:"resourceEnvRefType,omitempty"`
	ReferenceBase
}

func (r *ResourceEnvRef) Key() string     { return r.ResourceEnvRefName }
func (r *ResourceEnvRef) GetName() string { return r.ResourceEnvRefName }

type MessageDestinationRef struct {
	Descriptions              *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	MessageDestinationRefName string        `xml:"message-destination-ref-name" json:"messageDestinationRefName"`
	MessageDestinationType    string        `xml:"message-destination-type,omitempty" json:"messageDestinationType,omitempty"`
	MessageDestinationUsage   string        `xml:"message-destination-usage,omitempty" json:"messageDestinationUsage,omitempty"`
	MessageDestinationLink    string        `xml:"message-destination-link,omitempty" json:"messageDestinationLink,omitempty"`
	ReferenceBase
}

func (r *MessageDestinationRef) Key() string     { return r.MessageDestinationRefName }
func (r *MessageDestinationRef) GetName() string { return r.MessageDestinationRefName }

type PersistenceContextType string

const (
	PersistenceContextTransaction PersistenceContextType = "Transaction"
	PersistenceContextExtended    PersistenceContextType = "Extended"
)

type PersistenceContextRef struct {
	Descriptions              *i18n.TextMap                        `xml:"description" json:"descriptions,omitempty"`
	PersistenceContextRefName string                               `xml:"persistence-context-ref-name" json:"persistenceContextRefName"`
	PersistenceUnitName       string                               `xml:"persistence-unit-name,omitempty" json:"persistenceUnitName,omitempty"`
	PersistenceContextType    PersistenceContextType               `xml:"persistence-context-type,omitempty" json:"persistenceContextType,omitempty"`
	PersistenceProperties     *keyed.Collection[string, *Property] `xml:"persistence-property" json:"persistenceProperties,omitempty"`
	ReferenceBase
}

func (r *PersistenceContextRef) Key() string     { return r.PersistenceContextRefName }
func (r *PersistenceContextRef) GetName() string { return r.PersistenceContextRefName }

func (r *PersistenceContextRef) AddPersistenceProperty(p *Property) error {
	return add(&r.PersistenceProperties, p)
}

type PersistenceUnitRef struct {
	Descriptions           *i18n.TextMap `xml:"description" json:"descriptions,omitempty"`
	PersistenceUnitRefName string        `xml:"persistence-unit-ref-name" json:"persistenceUnitRefName"`
	PersistenceUnitName    string        `xml:"persistence-unit-name,omitempty" json:"persistenceUnitName,omitempty"`
	ReferenceBase
}

func (r *PersistenceUnitRef) Key() string     { return r.PersistenceUnitRefName }
func (r *PersistenceUnitRef) GetName() string { return r.PersistenceUnitRefName }

type DataSource struct {
	Descriptions  *i18n.TextMap                        `xml:"description" json:"descriptions,omitempty"`
	Name          string                               `xml:"name" json:"name"`
	ClassName     string                               `xml:"class-name,omitempty" json:"className,omitempty"`
	ServerName    string                               `xml:"server-name,omitempty" json:"serverName,omitempty"`
	PortNumber    int                                  `xml:"port-number,omitempty" json:"portNumber,omitempty"`
	DatabaseName  string                               `xml:"database-name,omitempty" json:"databaseName,omitempty"`
	Url           string                               `xml:"url,omitempty" json:"url,omitempty"`
	User          string                               `xml:"user,omitempty" json:"user,omitempty"`
	Password      string                               `xml:"password,omitempty" json:"password,omitempty"`
	Properties    *keyed.Collection[string, *Property] `xml:"property" json:"properties,omitempty"`
	Transactional *Boolean                             `xml:"transactional,omitempty" json:"transactional,omitempty"`
	MaxPoolSize   int                                  `xml:"max-pool-size,omitempty" json:"maxPoolSize,omitempty"`
	MinPoolSize   int                                  `xml:"min-pool-size,omitempty" json:"minPoolSize,omitempty"`
}

func (d *DataSource) Key() string           { return d.Name }
func (d *DataSource) GetName() string       { return d.Name }
func (d *DataSource) GetMappedName() string { return "" }
func (d *DataSource) GetLookupName() string { return "" }

func (d *DataSource) AddProperty(p *Property) error {
	return add(&d.Properties, p)
}

////////////////////////////////////////////////////////////////////////////////

// JndiEnvironment is the group of environment references
// of a JndiConsumer, each indexed by its reference name.
type JndiEnvironment struct {
	EnvEntries             *keyed.Collection[string, *EnvEntry]              `xml:"env-entry" json:"envEntries,omitempty"`
	EjbRefs                *keyed.Collection[string, *EjbRef]                `xml:"ejb-ref" json:"ejbRefs,omitempty"`
	EjbLocalRefs           *keyed.Collection[string, *EjbLocalRef]           `xml:"ejb-local-ref" json:"ejbLocalRefs,omitempty"`
	ResourceRefs           *keyed.Collection[string, *ResourceRef]           `xml:"resource-ref" json:"resourceRefs,omitempty"`
	ResourceEnvRefs        *keyed.Collection[string, *ResourceEnvRef]        `xml:"resource-env-ref" json:"resourceEnvRefs,omitempty"`
	MessageDestinationRefs *keyed.Collection[string, *MessageDestinationRef] `xml:"message-destination-ref" json:"messageDestinationRefs,omitempty"`
	PersistenceContextRefs *keyed.Collection[string, *PersistenceContextRef] `xml:"persistence-context-ref" json:"persistenceContextRefs,omitempty"`
	PersistenceUnitRefs    *keyed.Collection[string, *PersistenceUnitRef]    `xml:"persistence-unit-ref" json:"persistenceUnitRefs,omitempty"`
	DataSources            *keyed.Collection[string, *DataSource]            `xml:"data-source" json:"dataSources,omitempty"`
}

func (e *JndiEnvironment) GetEnvironment() *JndiEnvironment {
	return e
}

func (e *JndiEnvironment) AddEnvEntry(r *EnvEntry) error {
	return add(&e.EnvEntries, r)
}

func (e *JndiEnvironment) AddEjbRef(r *EjbRef) error {
	return add(&e.EjbRefs, r)
}

func (e *JndiEnvironment) AddEjbLocalRef(r *EjbLocalRef) error {
	return add(&e.EjbLocalRefs, r)
}

func (e *JndiEnvironment) AddResourceRef(r *ResourceRef) error {
	return add(&e.ResourceRefs, r)
}

func (e *JndiEnvironment) AddResourceEnvRef(r *ResourceEnvRef) error {
	return add(&e.ResourceEnvRefs, r)
}

func (e *JndiEnvironment) AddMessageDestinationRef(r *MessageDestinationRef) error {
	return add(&e.MessageDestinationRefs, r)
}

func (e *JndiEnvironment) AddPersistenceContextRef(r *PersistenceContextRef) error {
	return add(&e.PersistenceContextRefs, r)
}

func (e *JndiEnvironment) AddPersistenceUnitRef(r *PersistenceUnitRef) error {
	return add(&e.PersistenceUnitRefs, r)
}

func (e *JndiEnvironment) AddDataSource(r *DataSource) error {
	return add(&e.DataSources, r)
}

// References returns all references in schema order.
func (e *JndiEnvironment) References() []JndiReference {
	var r []JndiReference
	r = appendRefs(r, e.EnvEntries)
	r = appendRefs(r, e.EjbRefs)
	r = appendRefs(r, e.EjbLocalRefs)
	r = appendRefs(r, e.ResourceRefs)
	r = appendRefs(r, e.ResourceEnvRefs)
	r = appendRefs(r, e.MessageDestinationRefs)
	r = appendRefs(r, e.PersistenceContextRefs)
	r = appendRefs(r, e.PersistenceUnitRefs)
	r = appendRefs(r, e.DataSources)
	return r
}

func appendRefs[V JndiReference](list []JndiReference, c *keyed.Collection[string, V]) []JndiReference {
	for _, v := range c.List() {
		list = append(list, v)
	}
	return list
}
