package app

import (
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/jeemodel/pkg/jee"
	"github.com/mandelsoft/jeemodel/pkg/loader"
)

type Describe struct {
	cmd *cobra.Command

	mainopts *Options
	sort     string
}

func NewDescribe(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <descriptor file, module directory or archive> <options>",
		Short: "list the named elements of deployment descriptors",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Describe{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.sort, "sort", "s", "", "sort field")
	return cmd
}

func (c *Describe) Run(args []string) error {
	var descriptors []*loader.Descriptor

	l := c.mainopts.Loader()
	dir, err := vfs.DirExists(c.mainopts.fs, args[0])
	if err != nil {
		return err
	}
	if dir || loader.IsArchive(args[0]) {
		m, err := l.LoadModule(args[0])
		if err != nil {
			return err
		}
		descriptors = m.Descriptors()
	} else {
		d, err := l.LoadFile(args[0])
		if err != nil {
			return err
		}
		descriptors = append(descriptors, d)
	}

	var entries []*Entry
	for _, d := range descriptors {
		entries = append(entries, Entries(d, c.mainopts.lang)...)
	}
	if err := SortRows(entries, c.sort); err != nil {
		return err
	}

	switch f := normalizeFormat(c.mainopts.output); f {
	case "", "table":
		PrintTable(c.cmd.OutOrStdout(), []string{"LOCATION", "KIND", "NAME", "DESCRIPTION"}, entries)
		return nil
	default:
		return PrintStructured(c.cmd.OutOrStdout(), f, entries)
	}
}

type Entry struct {
	Location    string `json:"location"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (e *Entry) GetLocation() string    { return e.Location }
func (e *Entry) GetKind() string        { return e.Kind }
func (e *Entry) GetName() string        { return e.Name }
func (e *Entry) GetDescription() string { return e.Description }

func (e *Entry) Fields() []string {
	return []string{e.Location, e.Kind, e.Name, e.Description}
}

// Entries lists the named elements of a descriptor with their
// description for the given language.
func Entries(d *loader.Descriptor, lang string) []*Entry {
	var r []*Entry

	add := func(kind, name, desc string) {
		r = append(r, &Entry{Location: d.Location, Kind: kind, Name: name, Description: desc})
	}
	refs := func(c jee.JndiConsumer) {
		for _, ref := range c.GetEnvironment().References() {
			add(ReferenceKind(ref), c.GetJndiConsumerName()+"/"+ref.GetName(), "")
		}
	}

	switch o := d.Object.(type) {
	case *jee.EjbJar:
		for _, b := range o.GetEnterpriseBeans() {
			kind := "session"
			if _, ok := b.(*jee.MessageDrivenBean); ok {
				kind = "message-driven"
			}
			add(kind, b.GetEjbName(), b.GetDescription(lang))
			refs(b)
		}
	case *jee.WebApp:
		for _, p := range o.ContextParams.Values() {
			add("context-param", p.ParamName, p.Descriptions.Get(lang))
		}
		for _, s := range o.Servlets.Values() {
			add("servlet", s.ServletName, s.GetDescription(lang))
		}
		refs(o)
	case *jee.Persistence:
		for _, u := range o.PersistenceUnits.Values() {
			add("persistence-unit", u.Name, u.Description)
		}
	}
	return r
}

func ReferenceKind(r jee.JndiReference) string {
	switch r.(type) {
	case *jee.EnvEntry:
		return "env-entry"
	case *jee.EjbRef:
		return "ejb-ref"
	case *jee.EjbLocalRef:
		return "ejb-local-ref"
	case *jee.ResourceRef:
		return "resource-ref"
	case *jee.ResourceEnvRef:
		return "resource-env-ref"
	case *jee.MessageDestinationRef:
		return "message-destination-ref"
	case *jee.PersistenceContextRef:
		return "persistence-context-ref"
	case *jee.PersistenceUnitRef:
		return "persistence-unit-ref"
	case *jee.DataSource:
		return "data-source"
	default:
		return "reference"
	}
}
