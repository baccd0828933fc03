package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/jeemodel/pkg/binding"
)

type Hash struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewHash(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash {<descriptor file>}",
		Short: "calculate content fingerprints of deployment descriptors",
		Long: `
The fingerprint of a descriptor is the sha256 hash of its
canonical JSON representation. It is independent of the
formatting, the namespace and comments of the XML document.
`,
		Args: cobra.MinimumNArgs(1),
	}
	TweakCommand(cmd)

	c := &Hash{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Hash) Run(args []string) error {
	l := c.mainopts.Loader()
	for _, a := range args {
		d, err := l.LoadFile(a)
		if err != nil {
			return err
		}
		h, err := binding.Fingerprint(d.Object)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s  %s\n", h, a)
	}
	return nil
}
