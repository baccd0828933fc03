package jee

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

const TYPE_EJB_JAR = "ejb-jar"

// EjbJar is the root of an ejb-jar.xml descriptor.
type EjbJar struct {
	XMLName xml.Name `xml:"ejb-jar" json:"-"`
	DescriptorMeta
	MetadataComplete *Boolean `xml:"metadata-complete,attr,omitempty" json:"metadataComplete,omitempty"`

	ModuleName string `xml:"module-name,omitempty" json:"moduleName,omitempty"`
	DescriptionGroup
	EnterpriseBeans *EnterpriseBeans `xml:"enterprise-beans,omitempty" json:"enterpriseBeans,omitempty"`
	EjbClientJar    string           `xml:"ejb-client-jar,omitempty" json:"ejbClientJar,omitempty"`
}

var _ Descriptor = (*EjbJar)(nil)

func NewEjbJar(version string) *EjbJar {
	return &EjbJar{DescriptorMeta: DescriptorMeta{Version: version}}
}

func (e *EjbJar) GetDescriptorType() string {
	return TYPE_EJB_JAR
}

func (e *EjbJar) DefaultNamespace() string {
	return NamespaceJakarta
}

func (e *EjbJar) beans() *EnterpriseBeans {
	if e.EnterpriseBeans == nil {
		e.EnterpriseBeans = &EnterpriseBeans{}
	}
	return e.EnterpriseBeans
}

func (e *EjbJar) AddSessionBean(b *SessionBean) error {
	return add(&e.beans().Sessions, b)
}

func (e *EjbJar) AddMessageDrivenBean(b *MessageDrivenBean) error {
	return add(&e.beans().MessageDriven, b)
}

// GetEnterpriseBean returns the bean with the given ejb-name.
func (e *EjbJar) GetEnterpriseBean(name string) EnterpriseBean {
	if e.EnterpriseBeans == nil {
		return nil
	}
	if b, ok := e.EnterpriseBeans.Sessions.Lookup(name); ok {
		return b
	}
	if b, ok := e.EnterpriseBeans.MessageDriven.Lookup(name); ok {
		return b
	}
	return nil
}

// GetEnterpriseBeans returns the effective beans, session beans first.
func (e *EjbJar) GetEnterpriseBeans() []EnterpriseBean {
	if e.EnterpriseBeans == nil {
		return nil
	}
	var r []EnterpriseBean
	for _, b := range e.EnterpriseBeans.Sessions.Values() {
		r = append(r, b)
	}
	for _, b := range e.EnterpriseBeans.MessageDriven.Values() {
		r = append(r, b)
	}
	return r
}

type EnterpriseBeans struct {
	Id            string                                        `xml:"id,attr,omitempty" json:"id,omitempty"`
	Sessions      *keyed.Collection[string, *SessionBean]       `xml:"session" json:"sessions,omitempty"`
	MessageDriven *keyed.Collection[string, *MessageDrivenBean] `xml:"message-driven" json:"messageDriven,omitempty"`
}

// EnterpriseBean is the common interface of all bean kinds.
type EnterpriseBean interface {
	JndiConsumer
	keyed.Keyable[string]
	GetEjbName() string
	GetEjbClass() string
	GetDescription(lang string) string
}

////////////////////////////////////////////////////////////////////////////////

type SessionType string

const (
	SessionStateless SessionType = "Stateless"
	SessionStateful  SessionType = "Stateful"
	SessionSingleton SessionType = "Singleton"
)

func (t *SessionType) UnmarshalText(data []byte) error {
	s := strings.TrimSpace(string(data))
	for _, v := range []SessionType{SessionStateless, SessionStateful, SessionSingleton} {
		if strings.EqualFold(s, string(v)) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("invalid session type %q", s)
}

type TransactionType string

const (
	TransactionBean      TransactionType = "Bean"
	TransactionContainer TransactionType = "Container"
)

func (t *TransactionType) UnmarshalText(data []byte) error {
	s := strings.TrimSpace(string(data))
	for _, v := range []TransactionType{TransactionBean, TransactionContainer} {
		if strings.EqualFold(s, string(v)) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("invalid transaction type %q", s)
}

// Timeout is an amount of time given in a TimeUnit.
type Timeout struct {
	Timeout int64    `xml:"timeout" json:"timeout"`
	Unit    TimeUnit `xml:"unit" json:"unit"`
}

func NewTimeout(n int64, unit TimeUnit) *Timeout {
	return &Timeout{Timeout: n, Unit: unit}
}

func (t *Timeout) Duration() time.Duration {
	if t == nil {
		return 0
	}
	return t.Unit.Duration(t.Timeout)
}

type SessionBean struct {
	Id string `xml:"id,attr,omitempty" json:"id,omitempty"`
	DescriptionGroup
	EjbName         string          `xml:"ejb-name" json:"ejbName"`
	MappedName      string          `xml:"mapped-name,omitempty" json:"mappedName,omitempty"`
	Home            string          `xml:"home,omitempty" json:"home,omitempty"`
	Remote          string          `xml:"remote,omitempty" json:"remote,omitempty"`
	LocalHome       string          `xml:"local-home,omitempty" json:"localHome,omitempty"`
	Local           string          `xml:"local,omitempty" json:"local,omitempty"`
	BusinessLocal   []string        `xml:"business-local" json:"businessLocal,omitempty"`
	BusinessRemote  []string        `xml:"business-remote" json:"businessRemote,omitempty"`
	EjbClass        string          `xml:"ejb-class,omitempty" json:"ejbClass,omitempty"`
	SessionType     SessionType     `xml:"session-type,omitempty" json:"sessionType,omitempty"`
	StatefulTimeout *Timeout        `xml:"stateful-timeout,omitempty" json:"statefulTimeout,omitempty"`
	InitOnStartup   *Boolean        `xml:"init-on-startup,omitempty" json:"initOnStartup,omitempty"`
	AccessTimeout   *Timeout        `xml:"access-timeout,omitempty" json:"accessTimeout,omitempty"`
	TransactionType TransactionType `xml:"transaction-type,omitempty" json:"transactionType,omitempty"`
	JndiEnvironment
}

var _ EnterpriseBean = (*SessionBean)(nil)

func NewSessionBean(name, class string, typ SessionType) *SessionBean {
	return &SessionBean{EjbName: name, EjbClass: class, SessionType: typ}
}

func (b *SessionBean) Key() string                 { return b.EjbName }
func (b *SessionBean) GetEjbName() string          { return b.EjbName }
func (b *SessionBean) GetEjbClass() string         { return b.EjbClass }
func (b *SessionBean) GetJndiConsumerName() string { return b.EjbName }

////////////////////////////////////////////////////////////////////////////////

type ActivationConfigProperty struct {
	Name  string `xml:"activation-config-property-name" json:"name"`
	Value string `xml:"activation-config-property-value" json:"value"`
}

func (p *ActivationConfigProperty) Key() string {
	return p.Name
}

type ActivationConfig struct {
	DescriptionGroup
	Properties *keyed.Collection[string, *ActivationConfigProperty] `xml:"activation-config-property" json:"properties,omitempty"`
}

func (c *ActivationConfig) Get(name string) string {
	if p, ok := c.Properties.Lookup(name); ok {
		return p.Value
	}
	return ""
}

func (c *ActivationConfig) Set(name, value string) error {
	return add(&c.Properties, &ActivationConfigProperty{Name: name, Value: value})
}

type MessageDrivenBean struct {
	Id string `xml:"id,attr,omitempty" json:"id,omitempty"`
	DescriptionGroup
	EjbName                string            `xml:"ejb-name" json:"ejbName"`
	MappedName             string            `xml:"mapped-name,omitempty" json:"mappedName,omitempty"`
	EjbClass               string            `xml:"ejb-class,omitempty" json:"ejbClass,omitempty"`
	MessagingType          string            `xml:"messaging-type,omitempty" json:"messagingType,omitempty"`
	TransactionType        TransactionType   `xml:"transaction-type,omitempty" json:"transactionType,omitempty"`
	MessageDestinationType string            `xml:"message-destination-type,omitempty" json:"messageDestinationType,omitempty"`
	MessageDestinationLink string            `xml:"message-destination-link,omitempty" json:"messageDestinationLink,omitempty"`
	ActivationConfig       *ActivationConfig `xml:"activation-config,omitempty" json:"activationConfig,omitempty"`
	JndiEnvironment
}

var _ EnterpriseBean = (*MessageDrivenBean)(nil)

func NewMessageDrivenBean(name, class string) *MessageDrivenBean {
	return &MessageDrivenBean{EjbName: name, EjbClass: class}
}

func (b *MessageDrivenBean) Key() string                 { return b.EjbName }
func (b *MessageDrivenBean) GetEjbName() string          { return b.EjbName }
func (b *MessageDrivenBean) GetEjbClass() string         { return b.EjbClass }
func (b *MessageDrivenBean) GetJndiConsumerName() string { return b.EjbName }

// GetActivationProperty returns an activation config property value.
func (b *MessageDrivenBean) GetActivationProperty(name string) string {
	if b.ActivationConfig == nil {
		return ""
	}
	return b.ActivationConfig.Get(name)
}

func (b *MessageDrivenBean) SetActivationProperty(name, value string) error {
	if b.ActivationConfig == nil {
		b.ActivationConfig = &ActivationConfig{}
	}
	return b.ActivationConfig.Set(name, value)
}
