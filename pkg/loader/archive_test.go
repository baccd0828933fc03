package loader_test

import (
	"errors"

	"github.com/klauspost/compress/zip"
	. "github.com/mandelsoft/jeemodel/pkg/testutils"
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mandelsoft/jeemodel/pkg/jee"
	me "github.com/mandelsoft/jeemodel/pkg/loader"
)

func writeArchive(fs vfs.FileSystem, path string, files map[string]string) {
	f := Must(fs.Create(path))
	w := zip.NewWriter(f)
	for n, c := range files {
		e := Must(w.Create(n))
		Must(e.Write([]byte(c)))
	}
	MustBeSuccessful(w.Close())
	MustBeSuccessful(f.Close())
}

var _ = Describe("archives", func() {
	var fs vfs.FileSystem
	var loader *me.Loader

	BeforeEach(func() {
		fs = Must(TestFileSystem(map[string]string{
			"/ear/shop/WEB-INF/web.xml": webXML,
			"/ear/readme.txt":           "text",
			"/ear/broken.jar":           "no zip",
		}))
		writeArchive(fs, "/ear/orders.jar", map[string]string{
			"META-INF/MANIFEST.MF":     "Manifest-Version: 1.0\n",
			"META-INF/ejb-jar.xml":     ejbJarXML,
			"META-INF/persistence.xml": persistenceXML,
			"com/acme/Orders.class":    "",
		})
		writeArchive(fs, "/ear/empty.war", map[string]string{
			"index.html": "<html/>",
		})
		loader = me.New(fs)
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	It("detects archives", func() {
		Expect(me.IsArchive("a/b.jar")).To(BeTrue())
		Expect(me.IsArchive("b.WAR")).To(BeTrue())
		Expect(me.IsArchive("b.ear")).To(BeFalse())
		Expect(me.IsArchive("META-INF")).To(BeFalse())
	})

	It("loads archives", func() {
		m := Must(loader.LoadArchive("/ear/orders.jar"))
		Expect(m.Path).To(Equal("/ear/orders.jar"))
		Expect(m.Len()).To(Equal(2))
		Expect(m.Get("META-INF/ejb-jar.xml").Type).To(Equal(jee.TYPE_EJB_JAR))
		Expect(m.EjbJar().GetEnterpriseBean("Orders")).NotTo(BeNil())
		Expect(m.Persistence()).To(HaveLen(1))
	})

	It("reports archives without descriptors", func() {
		_, err := loader.LoadArchive("/ear/empty.war")
		Expect(errors.Is(err, me.ErrNotFound)).To(BeTrue())
		_, err = loader.LoadArchive("/ear/missing.jar")
		Expect(errors.Is(err, me.ErrNotFound)).To(BeTrue())
	})

	It("reports invalid archives", func() {
		_, err := loader.LoadArchive("/ear/broken.jar")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, me.ErrNotFound)).To(BeFalse())
	})

	It("loads modules of both kinds", func() {
		Expect(Must(loader.LoadModule("/ear/orders.jar")).EjbJar()).NotTo(BeNil())
		Expect(Must(loader.LoadModule("/ear/shop")).WebApp()).NotTo(BeNil())
	})

	It("scans archives", func() {
		MustBeSuccessful(fs.Remove("/ear/broken.jar"))
		list := Must(loader.Scan("/ear"))
		paths := []string{}
		for _, m := range list {
			paths = append(paths, m.Path)
		}
		Expect(paths).To(Equal([]string{"/ear/orders.jar", "/ear/shop"}))
	})
})
