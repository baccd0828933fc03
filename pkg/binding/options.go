package binding

import (
	"os"

	"github.com/drone/envsubst"
)

type Option interface {
	ApplyTo(o *Options)
}

// Options controls the decoding of descriptors.
type Options struct {
	Scheme    Scheme
	Variables map[string]string
	Env       bool
}

func (o *Options) ApplyTo(t *Options) {
	if o.Scheme != nil {
		t.Scheme = o.Scheme
	}
	if o.Variables != nil {
		if t.Variables == nil {
			t.Variables = map[string]string{}
		}
		for k, v := range o.Variables {
			t.Variables[k] = v
		}
	}
	if o.Env {
		t.Env = true
	}
}

func (o *Options) substitution() bool {
	return o.Env || len(o.Variables) > 0
}

// lookup resolves variables from the explicit variables first,
// then from the process environment if enabled.
// Unresolved variables are replaced by the empty string, so that
// defaults given by ${NAME:-default} apply.
func (o *Options) lookup(name string) string {
	if v, ok := o.Variables[name]; ok {
		return v
	}
	if o.Env {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
	}
	log.Debug("variable {{name}} not resolved", "name", name)
	return ""
}

func (o *Options) substitute(data []byte) ([]byte, error) {
	if !o.substitution() {
		return data, nil
	}
	r, err := envsubst.Eval(string(data), o.lookup)
	if err != nil {
		return nil, err
	}
	return []byte(r), nil
}

func eval(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt.ApplyTo(o)
	}
	if o.Scheme == nil {
		o.Scheme = DefaultScheme
	}
	return o
}

////////////////////////////////////////////////////////////////////////////////

type schemeOpt struct {
	scheme Scheme
}

func (o schemeOpt) ApplyTo(t *Options) {
	t.Scheme = o.scheme
}

// WithScheme uses the given scheme to map root elements to types.
func WithScheme(s Scheme) Option {
	return schemeOpt{s}
}

type variablesOpt map[string]string

func (o variablesOpt) ApplyTo(t *Options) {
	(&Options{Variables: o}).ApplyTo(t)
}

// WithVariables enables ${NAME} substitution with the given values.
func WithVariables(vars map[string]string) Option {
	return variablesOpt(vars)
}

type envOpt struct{}

func (envOpt) ApplyTo(t *Options) {
	t.Env = true
}

// WithEnv enables ${NAME} substitution from the process environment.
func WithEnv() Option {
	return envOpt{}
}
