package binding

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/mandelsoft/jeemodel/pkg/jee"
)

var knownNamespaces = map[string]bool{
	"":                              true,
	jee.NamespaceJ2EE:               true,
	jee.NamespaceJavaEE:             true,
	jee.NamespaceJCP:                true,
	jee.NamespaceJakarta:            true,
	jee.NamespacePersistenceJavaEE:  true,
	jee.NamespacePersistenceJCP:     true,
	jee.NamespacePersistenceJakarta: true,
}

// RootElement returns the name of the root element of an XML document.
func RootElement(data []byte) (xml.Name, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		t, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.Name{}, fmt.Errorf("no root element found")
			}
			return xml.Name{}, err
		}
		if s, ok := t.(xml.StartElement); ok {
			return s.Name, nil
		}
	}
}

// Decode decodes a descriptor document. The descriptor type
// is determined by the local name of the root element, the
// namespace is ignored.
func Decode(data []byte, opts ...Option) (jee.Descriptor, error) {
	o := eval(opts...)

	data, err := o.substitute(data)
	if err != nil {
		return nil, fmt.Errorf("variable substitution failed: %w", err)
	}
	root, err := RootElement(data)
	if err != nil {
		return nil, err
	}
	obj, err := o.Scheme.Create(root.Local)
	if err != nil {
		return nil, err
	}
	if err := xml.Unmarshal(data, obj); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", root.Local, err)
	}
	if !knownNamespaces[root.Space] {
		log.Warn("unknown namespace {{namespace}} for {{type}}", "namespace", root.Space, "type", root.Local)
	}
	log.Trace("decoded {{type}} version {{version}}", "type", root.Local, "version", obj.GetVersion())
	return obj, nil
}

// Unmarshal decodes a descriptor document into the given object.
func Unmarshal(data []byte, obj jee.Descriptor, opts ...Option) error {
	o := eval(opts...)

	data, err := o.substitute(data)
	if err != nil {
		return fmt.Errorf("variable substitution failed: %w", err)
	}
	root, err := RootElement(data)
	if err != nil {
		return err
	}
	if root.Local != obj.GetDescriptorType() {
		return fmt.Errorf("%w: found %q, but expected %q", ErrUnknownDescriptor, root.Local, obj.GetDescriptorType())
	}
	return xml.Unmarshal(data, obj)
}

// Marshal provides an indented XML document for a descriptor.
// If no namespace is set, the default namespace of the
// descriptor is set before.
func Marshal(obj jee.Descriptor) ([]byte, error) {
	if obj.GetNamespace() == "" {
		obj.SetNamespace(obj.DefaultNamespace())
	}
	data, err := xml.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}
