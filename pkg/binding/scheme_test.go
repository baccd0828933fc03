package binding_test

import (
	"errors"

	. "github.com/mandelsoft/jeemodel/pkg/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	me "github.com/mandelsoft/jeemodel/pkg/binding"
	"github.com/mandelsoft/jeemodel/pkg/jee"
)

var _ = Describe("scheme", func() {
	It("knows the standard descriptors", func() {
		Expect(me.DefaultScheme.Names()).To(Equal([]string{jee.TYPE_EJB_JAR, jee.TYPE_PERSISTENCE, jee.TYPE_WEB_APP}))
		Expect(me.DefaultScheme.HasType(jee.TYPE_WEB_APP)).To(BeTrue())
		Expect(me.DefaultScheme.HasType("application")).To(BeFalse())
	})

	It("creates new objects", func() {
		o := Must(me.DefaultScheme.Create(jee.TYPE_EJB_JAR))
		Expect(o).To(BeAssignableToTypeOf(&jee.EjbJar{}))
		Expect(o).NotTo(BeIdenticalTo(Must(me.DefaultScheme.Create(jee.TYPE_EJB_JAR))))
	})

	It("rejects unknown types", func() {
		_, err := me.DefaultScheme.Create("application")
		Expect(errors.Is(err, me.ErrUnknownDescriptor)).To(BeTrue())
		MustFailWithMessage(err, `unknown descriptor type "application"`)
	})

	It("registers types", func() {
		s := me.NewScheme()
		MustBeSuccessful(me.Register[jee.Persistence](s))
		Expect(s.Names()).To(Equal([]string{jee.TYPE_PERSISTENCE}))
		Expect(Must(s.Create(jee.TYPE_PERSISTENCE))).To(BeAssignableToTypeOf(&jee.Persistence{}))
	})

	It("rejects non pointer prototypes", func() {
		s := me.NewScheme()
		MustFailWithMessage(s.Register("x", nil), "proto type for x must be pointer")
	})
})
