package app

import (
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/jeemodel/pkg/binding"
	"github.com/mandelsoft/jeemodel/pkg/loader"
	"github.com/mandelsoft/jeemodel/pkg/utils"
)

type Options struct {
	fs       vfs.FileSystem
	lang     string
	output   string
	env      bool
	vars     map[string]string
	logLevel string
}

// Complete fills all options not given on the command line
// from the configuration.
func (o *Options) Complete(cmd *cobra.Command) error {
	cfg := GetConfig(o.fs)
	flags := cmd.Flags()

	if !flags.Changed("lang") && cfg.Lang != nil {
		o.lang = *cfg.Lang
	}
	if !flags.Changed("output") && cfg.Output != nil {
		o.output = *cfg.Output
	}
	if !flags.Changed("env") && cfg.Env != nil {
		o.env = *cfg.Env
	}
	if !flags.Changed("log-level") && cfg.LogLevel != nil {
		o.logLevel = *cfg.LogLevel
	}
	for k, v := range cfg.Variables {
		if _, ok := o.vars[k]; !ok {
			if o.vars == nil {
				o.vars = map[string]string{}
			}
			o.vars[k] = v
		}
	}
	if o.logLevel != "" {
		return SetLogLevel(o.logLevel)
	}
	return nil
}

func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.lang, "lang", "l", "", "language used for descriptions")
	flags.StringVarP(&o.output, "output", "o", "", "output format (xml, yaml, json, table)")
	flags.BoolVarP(&o.env, "env", "e", false, "substitute variables from environment")
	flags.StringToStringVarP(&o.vars, "var", "D", nil, "variable for substitution")
	flags.StringVarP(&o.logLevel, "log-level", "L", "", "log level")
}

func (o *Options) Loader() *loader.Loader {
	var opts []binding.Option
	if o.env {
		opts = append(opts, binding.WithEnv())
	}
	if len(o.vars) > 0 {
		opts = append(opts, binding.WithVariables(o.vars))
	}
	return loader.New(o.fs).WithOptions(opts...)
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "jeectl <options> <cmd> <args>",
		Short: "inspect deployment descriptors",
		Long: `
This command can be used to inspect Java EE deployment descriptors
(ejb-jar.xml, web.xml and persistence.xml) of a module or of an
exploded application archive.
`,
		Run:              nil,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete(cmd)
		},
	}
	TweakCommand(maincmd)

	opts.AddFlags(maincmd.PersistentFlags())

	maincmd.AddCommand(NewShow(opts))
	maincmd.AddCommand(NewDescribe(opts))
	maincmd.AddCommand(NewHash(opts))
	maincmd.AddCommand(NewScan(opts))
	return maincmd
}

func TweakCommand(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
