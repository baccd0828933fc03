package i18n

import (
	"encoding/json"
	"encoding/xml"

	"github.com/mandelsoft/jeemodel/pkg/keyed"
)

// Localizable is implemented by values bound to a language.
// An empty language denotes the default.
type Localizable interface {
	GetLang() string
}

// LangKey is the key extractor for localized values.
func LangKey[V Localizable]() keyed.KeyExtractor[string, V] {
	return keyed.Func(func(v V) string {
		return NormalizeLang(v.GetLang())
	})
}

// LocalCollection is an ordered collection of localized values
// indexed by their normalized language tag.
// The zero value is ready to use.
type LocalCollection[V Localizable] struct {
	coll *keyed.Collection[string, V]
}

var (
	_ xml.Marshaler    = (*LocalCollection[Text])(nil)
	_ xml.Unmarshaler  = (*LocalCollection[Text])(nil)
	_ json.Marshaler   = (*LocalCollection[Text])(nil)
	_ json.Unmarshaler = (*LocalCollection[Text])(nil)
)

func NewLocalCollection[V Localizable](values ...V) (*LocalCollection[V], error) {
	c := &LocalCollection[V]{}
	if err := c.SetAll(values...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *LocalCollection[V]) collection() *keyed.Collection[string, V] {
	if c.coll == nil {
		c.coll = keyed.New[string, V](LangKey[V]())
	}
	return c.coll
}

func (c *LocalCollection[V]) Add(v V) error {
	return c.collection().Add(v)
}

// SetAll replaces the content by the given values.
func (c *LocalCollection[V]) SetAll(values ...V) error {
	return c.collection().Replace(values)
}

// All returns all values in their original order.
func (c *LocalCollection[V]) All() []V {
	if c == nil {
		return nil
	}
	return c.coll.List()
}

// Lookup returns the value for exactly the given language.
func (c *LocalCollection[V]) Lookup(lang string) (V, bool) {
	if c == nil {
		var _nil V
		return _nil, false
	}
	return c.coll.Lookup(NormalizeLang(lang))
}

// Resolve returns the value for the requested language. If there
// is none, the value without language is used.
func (c *LocalCollection[V]) Resolve(lang string) (V, bool) {
	if v, ok := c.Lookup(lang); ok {
		return v, true
	}
	return c.Lookup(Default)
}

// Map returns a snapshot of the values per language.
func (c *LocalCollection[V]) Map() map[string]V {
	if c == nil {
		return map[string]V{}
	}
	return c.coll.Map()
}

// Langs returns the normalized languages in order of appearance.
func (c *LocalCollection[V]) Langs() []string {
	if c == nil {
		return nil
	}
	return c.coll.Keys()
}

func (c *LocalCollection[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.coll.Len()
}

func (c *LocalCollection[V]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if c == nil {
		return nil
	}
	return c.coll.MarshalXML(e, start)
}

func (c *LocalCollection[V]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return c.collection().UnmarshalXML(d, start)
}

func (c *LocalCollection[V]) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return c.coll.MarshalJSON()
}

func (c *LocalCollection[V]) UnmarshalJSON(data []byte) error {
	return c.collection().UnmarshalJSON(data)
}
