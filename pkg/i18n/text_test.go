package i18n_test

import (
	"encoding/json"
	"encoding/xml"

	. "github.com/mandelsoft/jeemodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/jeemodel/pkg/i18n"
)

var _ = Describe("text map", func() {
	var texts []me.Text

	BeforeEach(func() {
		texts = []me.Text{
			me.NewText("en", "Hello"),
			me.NewText("fr", "Bonjour"),
			me.NewText("", "Hi"),
		}
	})

	It("resolves languages", func() {
		m := Must(me.NewTextMap(texts...))
		Expect(m.Get("fr")).To(Equal("Bonjour"))
		Expect(m.Get("en")).To(Equal("Hello"))
		Expect(m.Get("es")).To(Equal("Hi"))
		Expect(m.Len()).To(Equal(3))
		Expect(m.All()).To(Equal(texts))
	})

	It("falls back to default", func() {
		m := Must(me.NewTextMap(me.NewText("", "default"), me.NewText("fr", "bonjour")))
		Expect(m.Get("fr")).To(Equal("bonjour"))
		Expect(m.Get("de")).To(Equal("default"))
	})

	It("reports absence without default", func() {
		m := Must(me.NewTextMap(me.NewText("fr", "bonjour")))
		s, ok := m.Resolve("de")
		Expect(ok).To(BeFalse())
		Expect(s).To(Equal(""))
	})

	It("does not match language prefixes", func() {
		m := Must(me.NewTextMap(me.NewText("fr", "bonjour")))
		_, ok := m.Resolve("fr-CA")
		Expect(ok).To(BeFalse())

		m = Must(me.NewTextMap(me.NewText("fr-CA", "allo")))
		_, ok = m.Resolve("fr")
		Expect(ok).To(BeFalse())
	})

	It("normalizes language tags", func() {
		m := Must(me.NewTextMap(me.NewText("EN-us", "howdy")))
		Expect(m.Get("en-US")).To(Equal("howdy"))
		Expect(m.Langs()).To(Equal([]string{"en-US"}))
		Expect(m.All()[0].Lang).To(Equal("EN-us"))
	})

	It("keeps deprecated language codes distinct", func() {
		Expect(me.NormalizeLang("iw")).To(Equal("iw"))
		Expect(me.NormalizeLang("mo")).To(Equal("mo"))
		Expect(me.NormalizeLang("IN")).To(Equal("in"))

		m := Must(me.NewTextMap(me.NewText("iw", "shalom")))
		_, ok := m.Resolve("he")
		Expect(ok).To(BeFalse())

		MustBeSuccessful(m.Add(me.NewText("he", "shalom he")))
		Expect(m.Langs()).To(Equal([]string{"iw", "he"}))
		Expect(m.Get("iw")).To(Equal("shalom"))
		Expect(m.Get("he")).To(Equal("shalom he"))
	})

	It("encodes zero collections without modification", func() {
		var c me.LocalCollection[me.Text]
		Expect(string(Must(c.MarshalJSON()))).To(Equal("[]"))
		buf := Must(xml.Marshal(&struct {
			XMLName xml.Name                     `xml:"doc"`
			Texts   *me.LocalCollection[me.Text] `xml:"text"`
		}{Texts: &c}))
		Expect(string(buf)).To(Equal("<doc></doc>"))
		Expect(c).To(Equal(me.LocalCollection[me.Text]{}))
	})

	It("keeps invalid tags verbatim", func() {
		Expect(me.NormalizeLang(" not a tag ")).To(Equal("not a tag"))
		Expect(me.NormalizeLang("")).To(Equal(me.Default))
	})

	It("uses the latest text per language", func() {
		m := &me.TextMap{}
		m.Set("fr", "salut")
		m.Set("fr", "bonjour")
		Expect(m.Get("fr")).To(Equal("bonjour"))
		Expect(m.Len()).To(Equal(2))
	})

	It("replaces all texts", func() {
		m := Must(me.NewTextMap(texts...))
		MustBeSuccessful(m.SetAll(me.NewText("de", "Hallo")))
		Expect(m.All()).To(Equal([]me.Text{me.NewText("de", "Hallo")}))
		_, ok := m.Resolve("en")
		Expect(ok).To(BeFalse())
	})

	It("handles nil maps", func() {
		var m *me.TextMap
		Expect(m.Get("en")).To(Equal(""))
	})

	Context("encoding", func() {
		type Bean struct {
			XMLName     xml.Name    `xml:"bean"`
			Description *me.TextMap `xml:"description" json:"description,omitempty"`
			Name        string      `xml:"name" json:"name"`
		}

		data := `<bean><description xml:lang="en">Hello</description><description>Hi</description><name>b</name></bean>`

		It("decodes localized elements", func() {
			var b Bean
			MustBeSuccessful(xml.Unmarshal([]byte(data), &b))
			Expect(b.Description.Get("en")).To(Equal("Hello"))
			Expect(b.Description.Get("fr")).To(Equal("Hi"))
			Expect(b.Description.All()).To(Equal([]me.Text{me.NewText("en", "Hello"), me.NewText("", "Hi")}))
		})

		It("encodes localized elements", func() {
			b := Bean{Description: Must(me.NewTextMap(me.NewText("en", "Hello"), me.NewText("", "Hi"))), Name: "b"}
			Expect(string(Must(xml.Marshal(&b)))).To(Equal(data))
		})

		It("encodes json", func() {
			b := Bean{Description: Must(me.NewTextMap(me.NewText("en", "Hello"), me.NewText("", "Hi"))), Name: "b"}
			out := Must(json.Marshal(&b))
			Expect(string(out)).To(Equal(`{"description":[{"lang":"en","value":"Hello"},{"value":"Hi"}],"name":"b"}`))

			var n Bean
			MustBeSuccessful(json.Unmarshal(out, &n))
			Expect(n.Description.Get("en")).To(Equal("Hello"))
		})
	})
})
