package binding

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/jeemodel/pkg/jee"
	"github.com/mandelsoft/jeemodel/pkg/utils"
)

// ToYAML provides the YAML rendition of a descriptor based
// on its JSON serialization.
func ToYAML(obj jee.Descriptor) ([]byte, error) {
	return yaml.Marshal(obj)
}

// FromYAML decodes the YAML (or JSON) rendition of a descriptor
// of the given type.
func FromYAML(typ string, data []byte, opts ...Option) (jee.Descriptor, error) {
	o := eval(opts...)

	data, err := o.substitute(data)
	if err != nil {
		return nil, fmt.Errorf("variable substitution failed: %w", err)
	}
	obj, err := o.Scheme.Create(typ)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, obj); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", typ, err)
	}
	return obj, nil
}

type fingerprint struct {
	Type       string         `json:"type"`
	Descriptor jee.Descriptor `json:"descriptor"`
}

// Fingerprint provides a hash for the content of a descriptor
// independent of its formatting and namespace.
func Fingerprint(obj jee.Descriptor) (string, error) {
	return utils.HashData(&fingerprint{obj.GetDescriptorType(), obj})
}
