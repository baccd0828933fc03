package loader

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/jeemodel/pkg/binding"
	"github.com/mandelsoft/jeemodel/pkg/utils"
)

var ErrNotFound = errors.New("not found")

// Locations are the well-known descriptor locations of a module.
var Locations = []string{
	"META-INF/ejb-jar.xml",
	"WEB-INF/web.xml",
	"META-INF/persistence.xml",
	"WEB-INF/classes/META-INF/persistence.xml",
}

type Loader struct {
	fs   vfs.FileSystem
	opts []binding.Option
}

func New(fss ...vfs.FileSystem) *Loader {
	return &Loader{fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)}
}

// WithOptions returns a loader using the given decoding options.
func (l *Loader) WithOptions(opts ...binding.Option) *Loader {
	return &Loader{fs: l.fs, opts: append(append([]binding.Option{}, l.opts...), opts...)}
}

// LoadFile decodes a single descriptor file.
func (l *Loader) LoadFile(path string) (*Descriptor, error) {
	data, err := vfs.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, fmt.Errorf("descriptor %s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	o, err := binding.Decode(data, l.opts...)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return &Descriptor{Location: path, Type: o.GetDescriptorType(), Object: o}, nil
}

// Load decodes the descriptors found at the well-known
// locations of a module directory.
func (l *Loader) Load(dir string) (*Module, error) {
	ok, err := vfs.DirExists(l.fs, dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("module directory %s: %w", dir, ErrNotFound)
	}
	m := NewModule(dir)
	for _, loc := range Locations {
		d, err := l.LoadFile(filepath.Join(dir, loc))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		d.Location = loc
		log.Debug("found {{type}} in {{module}}", "type", d.Type, "module", dir)
		if err := m.Add(d); err != nil {
			return nil, err
		}
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("no descriptors in %s: %w", dir, ErrNotFound)
	}
	return m, nil
}

// Scan loads the module in the given directory and all
// modules found in direct sub directories or archives, like
// the modules of an exploded application archive.
func (l *Loader) Scan(root string) ([]*Module, error) {
	var result []*Module

	m, err := l.Load(root)
	switch {
	case err == nil:
		result = append(result, m)
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	list, err := vfs.ReadDir(l.fs, root)
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.IsDir() {
			if e.Name() == "META-INF" || e.Name() == "WEB-INF" {
				continue
			}
		} else if !IsArchive(e.Name()) {
			continue
		}
		m, err := l.LoadModule(filepath.Join(root, e.Name()))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		result = append(result, m)
	}
	log.Info("found {{count}} module(s) in {{root}}", "count", len(result), "root", root)
	return result, nil
}
