package i18n

// Text is a string in a dedicated language, for example
// the content of a description element with an xml:lang attribute.
type Text struct {
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty" json:"lang,omitempty"`
	Value string `xml:",chardata" json:"value"`
}

func NewText(lang, value string) Text {
	return Text{Lang: lang, Value: value}
}

func (t Text) GetLang() string {
	return t.Lang
}

// TextMap is a localized collection of texts.
type TextMap struct {
	LocalCollection[Text]
}

func NewTextMap(texts ...Text) (*TextMap, error) {
	m := &TextMap{}
	if err := m.SetAll(texts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Set adds a text for the given language.
func (m *TextMap) Set(lang, value string) {
	// the language key extractor cannot fail
	_ = m.Add(NewText(lang, value))
}

// Resolve returns the text for the requested language, falling
// back to the text without language.
func (m *TextMap) Resolve(lang string) (string, bool) {
	if m == nil {
		return "", false
	}
	t, ok := m.LocalCollection.Resolve(lang)
	return t.Value, ok
}

// Get is like Resolve, but returns an empty string
// if there is no matching text.
func (m *TextMap) Get(lang string) string {
	s, _ := m.Resolve(lang)
	return s
}
