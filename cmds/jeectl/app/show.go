package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/jeemodel/pkg/binding"
)

type Show struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewShow(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <descriptor file> <options>",
		Short: "show a normalized deployment descriptor",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Show{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Show) Run(args []string) error {
	d, err := c.mainopts.Loader().LoadFile(args[0])
	if err != nil {
		return err
	}

	switch f := normalizeFormat(c.mainopts.output); f {
	case "", "xml":
		data, err := binding.Marshal(d.Object)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s", string(data))
	default:
		return PrintStructured(c.cmd.OutOrStdout(), f, d.Object)
	}
	return nil
}
