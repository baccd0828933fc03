package jee

import (
	"encoding/xml"

	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

const TYPE_WEB_APP = "web-app"

// WebApp is the root of a web.xml descriptor.
type WebApp struct {
	XMLName xml.Name `xml:"web-app" json:"-"`
	DescriptorMeta
	MetadataComplete *Boolean `xml:"metadata-complete,attr,omitempty" json:"metadataComplete,omitempty"`

	ModuleName string `xml:"module-name,omitempty" json:"moduleName,omitempty"`
	DescriptionGroup
	ContextParams   *keyed.Collection[string, *ParamValue] `xml:"context-param" json:"contextParams,omitempty"`
	Servlets        *keyed.Collection[string, *Servlet]    `xml:"servlet" json:"servlets,omitempty"`
	ServletMappings []*ServletMapping                      `xml:"servlet-mapping" json:"servletMappings,omitempty"`
	WelcomeFiles    []string                               `xml:"welcome-file-list>welcome-file,omitempty" json:"welcomeFiles,omitempty"`
	JndiEnvironment
}

var (
	_ Descriptor   = (*WebApp)(nil)
	_ JndiConsumer = (*WebApp)(nil)
)

func NewWebApp(version string) *WebApp {
	return &WebApp{DescriptorMeta: DescriptorMeta{Version: version}}
}

func (w *WebApp) GetDescriptorType() string {
	return TYPE_WEB_APP
}

func (w *WebApp) DefaultNamespace() string {
	return NamespaceJakarta
}

func (w *WebApp) GetJndiConsumerName() string {
	return w.ModuleName
}

func (w *WebApp) AddContextParam(p *ParamValue) error {
	return add(&w.ContextParams, p)
}

// GetContextParam returns the value of the given context parameter.
func (w *WebApp) GetContextParam(name string) (string, bool) {
	p, ok := w.ContextParams.Lookup(name)
	if !ok {
		return "", false
	}
	return p.ParamValue, true
}

func (w *WebApp) AddServlet(s *Servlet) error {
	return add(&w.Servlets, s)
}

func (w *WebApp) AddServletMapping(servlet string, patterns ...string) {
	w.ServletMappings = append(w.ServletMappings, &ServletMapping{ServletName: servlet, UrlPatterns: patterns})
}

// GetServletMappings returns all url patterns for the given servlet.
func (w *WebApp) GetServletMappings(servlet string) []string {
	var r []string
	for _, m := range w.ServletMappings {
		if m.ServletName == servlet {
			r = append(r, m.UrlPatterns...)
		}
	}
	return r
}

type Servlet struct {
	Id string `xml:"id,attr,omitempty" json:"id,omitempty"`
	DescriptionGroup
	ServletName    string                                 `xml:"servlet-name" json:"servletName"`
	ServletClass   string                                 `xml:"servlet-class,omitempty" json:"servletClass,omitempty"`
	JspFile        string                                 `xml:"jsp-file,omitempty" json:"jspFile,omitempty"`
	InitParams     *keyed.Collection[string, *ParamValue] `xml:"init-param" json:"initParams,omitempty"`
	LoadOnStartup  *LoadOnStartup                         `xml:"load-on-startup,omitempty" json:"loadOnStartup,omitempty"`
	Enabled        *Boolean                               `xml:"enabled,omitempty" json:"enabled,omitempty"`
	AsyncSupported *Boolean                               `xml:"async-supported,omitempty" json:"asyncSupported,omitempty"`
}

func NewServlet(name, class string) *Servlet {
	return &Servlet{ServletName: name, ServletClass: class}
}

func (s *Servlet) Key() string {
	return s.ServletName
}

func (s *Servlet) AddInitParam(p *ParamValue) error {
	return add(&s.InitParams, p)
}

type ServletMapping struct {
	ServletName string   `xml:"servlet-name" json:"servletName"`
	UrlPatterns []string `xml:"url-pattern" json:"urlPatterns"`
}
