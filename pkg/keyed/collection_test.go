package keyed_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"

	"github.com/go-test/deep"
	. "github.com/mandelsoft/jeemodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/jeemodel/pkg/keyed"
)

var byName = me.MustForProperty[string, *Item]("name")

var _ = Describe("collection", func() {
	var a1, a2, b, c *Item
	var coll *me.Collection[string, *Item]

	BeforeEach(func() {
		a1 = NewItem("a", "1")
		a2 = NewItem("a", "2")
		b = NewItem("b", "3")
		c = NewItem("c", "4")
		coll = me.New[string, *Item](byName)
	})

	It("preserves order for distinct keys", func() {
		list := []*Item{c, a1, b}
		coll = Must(me.NewFor(byName, list...))
		Expect(coll.List()).To(Equal(list))
		Expect(coll.Len()).To(Equal(3))
		Expect(coll.Keys()).To(Equal([]string{"c", "a", "b"}))
	})

	It("uses last write on key collisions", func() {
		MustBeSuccessful(coll.Add(a1))
		MustBeSuccessful(coll.Add(b))
		MustBeSuccessful(coll.Add(a2))

		Expect(coll.Get("a")).To(BeIdenticalTo(a2))
		Expect(coll.List()).To(Equal([]*Item{a1, b, a2}))
		Expect(coll.Len()).To(Equal(3))
		Expect(coll.Map()).To(HaveLen(2))
		Expect(coll.Keys()).To(Equal([]string{"a", "b"}))
		Expect(coll.Values()).To(Equal([]*Item{a2, b}))
	})

	It("supports the zero key", func() {
		d := NewItem("", "default")
		MustBeSuccessful(coll.Add(a1))
		MustBeSuccessful(coll.Add(d))
		Expect(coll.Get("")).To(BeIdenticalTo(d))
		Expect(coll.Has("")).To(BeTrue())
	})

	It("reports absent keys", func() {
		MustBeSuccessful(coll.Add(a1))
		v, ok := coll.Lookup("x")
		Expect(ok).To(BeFalse())
		Expect(v).To(BeNil())
		Expect(coll.Get("x")).To(BeNil())
	})

	It("replaces content", func() {
		MustBeSuccessful(coll.Add(a1))
		MustBeSuccessful(coll.Add(b))

		MustBeSuccessful(coll.Replace([]*Item{c, a2}))
		Expect(coll.List()).To(Equal([]*Item{c, a2}))
		Expect(coll.Has("b")).To(BeFalse())
		Expect(coll.Get("a")).To(BeIdenticalTo(a2))
	})

	It("keeps state on failing replace", func() {
		coll = me.New[string, *Item](me.MustForProperty[string, *Item]("value"))
		MustBeSuccessful(coll.Add(a1))

		err := coll.Replace([]*Item{b, NewItem("x", "fail"), c})
		Expect(errors.Is(err, me.ErrExtraction)).To(BeTrue())
		Expect(coll.List()).To(Equal([]*Item{a1}))
		Expect(coll.Get("1")).To(BeIdenticalTo(a1))
	})

	It("propagates extraction errors on add", func() {
		err := coll.Add(nil)
		Expect(errors.Is(err, me.ErrExtraction)).To(BeTrue())
		Expect(coll.Len()).To(Equal(0))
	})

	It("round trips", func() {
		MustBeSuccessful(coll.Add(a1))
		MustBeSuccessful(coll.Add(b))
		MustBeSuccessful(coll.Add(a2))

		n := me.New[string, *Item](byName)
		MustBeSuccessful(n.Replace(coll.List()))
		Expect(n.List()).To(Equal(coll.List()))
		Expect(n.Map()).To(Equal(coll.Map()))
	})

	It("provides snapshots", func() {
		MustBeSuccessful(coll.Add(a1))
		m := coll.Map()
		l := coll.List()
		m["x"] = c
		l[0] = c
		Expect(coll.Has("x")).To(BeFalse())
		Expect(coll.List()).To(Equal([]*Item{a1}))
	})

	It("clones", func() {
		MustBeSuccessful(coll.Add(a1))
		n := coll.Clone()
		MustBeSuccessful(n.Add(b))
		Expect(coll.Len()).To(Equal(1))
		Expect(n.Len()).To(Equal(2))
	})

	Context("delete", func() {
		It("deletes unique key", func() {
			MustBeSuccessful(coll.Replace([]*Item{a1, b}))
			Expect(mustDelete(coll, "a")).To(BeIdenticalTo(a1))
			Expect(coll.List()).To(Equal([]*Item{b}))
			Expect(coll.Has("a")).To(BeFalse())
		})

		It("falls back to previous value", func() {
			a3 := NewItem("a", "5")
			MustBeSuccessful(coll.Replace([]*Item{a1, b, a2, c, a3}))
			Expect(mustDelete(coll, "a")).To(BeIdenticalTo(a3))
			Expect(coll.Get("a")).To(BeIdenticalTo(a2))
			Expect(mustDelete(coll, "a")).To(BeIdenticalTo(a2))
			Expect(coll.Get("a")).To(BeIdenticalTo(a1))
			Expect(coll.List()).To(Equal([]*Item{a1, b, c}))
		})

		It("ignores unknown key", func() {
			MustBeSuccessful(coll.Add(a1))
			_, ok := coll.Delete("x")
			Expect(ok).To(BeFalse())
			Expect(coll.Len()).To(Equal(1))
		})
	})

	Context("zero value", func() {
		It("uses keyable values", func() {
			var z me.Collection[string, *Item]
			MustBeSuccessful(z.Add(a1))
			Expect(z.Get("a")).To(BeIdenticalTo(a1))
		})

		It("rejects non keyable values", func() {
			var z me.Collection[string, string]
			Expect(errors.Is(z.Add("a"), me.ErrExtraction)).To(BeTrue())
		})

		It("handles nil collections", func() {
			var z *me.Collection[string, *Item]
			Expect(z.Len()).To(Equal(0))
			Expect(z.List()).To(BeNil())
			Expect(z.Values()).To(BeNil())
			Expect(z.Has("a")).To(BeFalse())
			Expect(z.Map()).To(BeEmpty())
		})

		It("reindexes on new extractor", func() {
			var z me.Collection[string, *Item]
			MustBeSuccessful(z.Add(a1))
			MustBeSuccessful(z.SetExtractor(me.MustForProperty[string, *Item]("value")))
			Expect(z.Get("1")).To(BeIdenticalTo(a1))
			Expect(z.Has("a")).To(BeFalse())
		})

		It("keeps state on failing reindex", func() {
			fail := NewItem("x", "fail")
			MustBeSuccessful(coll.Add(a1))
			MustBeSuccessful(coll.Add(fail))
			MustBeSuccessful(coll.Add(a2))

			err := coll.SetExtractor(me.MustForProperty[string, *Item]("value"))
			Expect(errors.Is(err, me.ErrExtraction)).To(BeTrue())
			Expect(coll.List()).To(Equal([]*Item{a1, fail, a2}))
			Expect(coll.Map()).To(Equal(map[string]*Item{"a": a2, "x": fail}))

			MustBeSuccessful(coll.Add(b))
			Expect(coll.Get("b")).To(BeIdenticalTo(b))
			Expect(coll.Has("3")).To(BeFalse())
		})
	})

	Context("encoding", func() {
		type Doc struct {
			XMLName xml.Name                      `xml:"doc"`
			Entries *me.Collection[string, *Item] `xml:"entry" json:"entries,omitempty"`
		}

		It("decodes repeated xml elements", func() {
			var doc Doc
			data := `<doc><entry><name>a</name><value>1</value></entry><entry><name>b</name><value>3</value></entry><entry><name>a</name><value>2</value></entry></doc>`
			MustBeSuccessful(xml.Unmarshal([]byte(data), &doc))
			Expect(doc.Entries.Len()).To(Equal(3))
			Expect(deep.Equal(doc.Entries.Get("a"), a2)).To(BeNil())
			Expect(deep.Equal(doc.Entries.List(), []*Item{a1, b, a2})).To(BeNil())

			out := Must(xml.Marshal(&doc))
			Expect(string(out)).To(Equal(data))
		})

		It("encodes nil collections", func() {
			var z *me.Collection[string, *Item]
			Expect(string(Must(z.MarshalJSON()))).To(Equal("[]"))

			buf := &bytes.Buffer{}
			enc := xml.NewEncoder(buf)
			MustBeSuccessful(z.MarshalXML(enc, xml.StartElement{Name: xml.Name{Local: "entry"}}))
			MustBeSuccessful(enc.Flush())
			Expect(buf.String()).To(Equal(""))
		})

		It("omits empty collections", func() {
			doc := Doc{Entries: me.New[string, *Item]()}
			Expect(string(Must(xml.Marshal(&doc)))).To(Equal("<doc></doc>"))
		})

		It("encodes json lists", func() {
			doc := Doc{Entries: Must(me.NewFor(byName, a1, b))}
			data := Must(json.Marshal(&doc))
			Expect(string(data)).To(Equal(`{"entries":[{"name":"a","value":"1"},{"name":"b","value":"3"}]}`))

			var n Doc
			MustBeSuccessful(json.Unmarshal(data, &n))
			Expect(deep.Equal(n.Entries.List(), doc.Entries.List())).To(BeNil())
			Expect(n.Entries.Get("b").Value).To(Equal("3"))
		})
	})
})

func mustDelete(c *me.Collection[string, *Item], key string) *Item {
	v, ok := c.Delete(key)
	ExpectWithOffset(1, ok).To(BeTrue())
	return v
}
