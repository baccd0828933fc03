package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/jeemodel/pkg/binding"
)

// ArchiveTypes are the file extensions of module archives.
var ArchiveTypes = []string{".jar", ".war", ".rar"}

func IsArchive(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, t := range ArchiveTypes {
		if ext == t {
			return true
		}
	}
	return false
}

// LoadArchive decodes the descriptors found at the well-known
// locations of a module archive.
func (l *Loader) LoadArchive(path string) (*Module, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, vfs.ErrNotExist) {
			return nil, fmt.Errorf("module archive %s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("module archive %s: %w", path, err)
	}

	entries := map[string]*zip.File{}
	for _, e := range r.File {
		entries[strings.TrimPrefix(e.Name, "/")] = e
	}

	m := NewModule(path)
	for _, loc := range Locations {
		e := entries[loc]
		if e == nil {
			continue
		}
		data, err := readEntry(e)
		if err != nil {
			return nil, fmt.Errorf("module archive %s: %s: %w", path, loc, err)
		}
		o, err := binding.Decode(data, l.opts...)
		if err != nil {
			return nil, fmt.Errorf("descriptor %s!%s: %w", path, loc, err)
		}
		log.Debug("found {{type}} in archive {{module}}", "type", o.GetDescriptorType(), "module", path)
		if err := m.Add(&Descriptor{Location: loc, Type: o.GetDescriptorType(), Object: o}); err != nil {
			return nil, err
		}
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("no descriptors in %s: %w", path, ErrNotFound)
	}
	return m, nil
}

func readEntry(e *zip.File) ([]byte, error) {
	r, err := e.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// LoadModule loads a module directory or a module archive.
func (l *Loader) LoadModule(path string) (*Module, error) {
	if IsArchive(path) {
		ok, err := vfs.FileExists(l.fs, path)
		if err != nil {
			return nil, err
		}
		if ok {
			return l.LoadArchive(path)
		}
	}
	return l.Load(path)
}
