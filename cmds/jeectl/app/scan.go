package app

import (
	"github.com/spf13/cobra"

	"github.com/mandelsoft/jeemodel/pkg/loader"
)

type Scan struct {
	cmd *cobra.Command

	mainopts *Options
	sort     string
}

func NewScan(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory> <options>",
		Short: "list the modules and descriptors found in a directory",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Scan{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.sort, "sort", "s", "", "sort field")
	return cmd
}

type Module struct {
	Path        string               `json:"path"`
	Descriptors []*loader.Descriptor `json:"descriptors"`
}

type Found struct {
	Module   string
	Location string
	Type     string
	Version  string
}

func (f *Found) GetModule() string   { return f.Module }
func (f *Found) GetLocation() string { return f.Location }
func (f *Found) GetType() string     { return f.Type }
func (f *Found) GetVersion() string  { return f.Version }

func (f *Found) Fields() []string {
	return []string{f.Module, f.Location, f.Type, f.Version}
}

func (c *Scan) Run(args []string) error {
	modules, err := c.mainopts.Loader().Scan(args[0])
	if err != nil {
		return err
	}

	switch f := normalizeFormat(c.mainopts.output); f {
	case "", "table":
		var rows []*Found
		for _, m := range modules {
			for _, d := range m.Descriptors() {
				rows = append(rows, &Found{
					Module:   m.Path,
					Location: d.Location,
					Type:     d.Type,
					Version:  d.Object.GetVersion(),
				})
			}
		}
		if err := SortRows(rows, c.sort); err != nil {
			return err
		}
		PrintTable(c.cmd.OutOrStdout(), []string{"MODULE", "LOCATION", "TYPE", "VERSION"}, rows)
		return nil
	default:
		var list []*Module
		for _, m := range modules {
			list = append(list, &Module{Path: m.Path, Descriptors: m.Descriptors()})
		}
		return PrintStructured(c.cmd.OutOrStdout(), f, list)
	}
}
