package keyed

import (
	"encoding/json"
	"encoding/xml"
)

var (
	_ xml.Marshaler    = (*Collection[string, any])(nil)
	_ xml.Unmarshaler  = (*Collection[string, any])(nil)
	_ json.Marshaler   = (*Collection[string, any])(nil)
	_ json.Unmarshaler = (*Collection[string, any])(nil)
)

// MarshalXML writes one element per value using the element name
// of the collection field. The insertion order is kept.
func (c *Collection[K, V]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if c == nil {
		return nil
	}
	for _, v := range c.values {
		if err := e.EncodeElement(v, start); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalXML is called for every occurrence of the element
// and adds the decoded value.
func (c *Collection[K, V]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v V
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	return c.Add(v)
}

// MarshalJSON provides the value list as JSON array.
func (c *Collection[K, V]) MarshalJSON() ([]byte, error) {
	if c == nil || c.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.values)
}

func (c *Collection[K, V]) UnmarshalJSON(data []byte) error {
	var list []V
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	return c.Replace(list)
}
