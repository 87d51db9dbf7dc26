package gofmi

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ModelDescriptionFile is the name of the model description inside an FMU.
const ModelDescriptionFile = "modelDescription.xml"

// FMUExtension is the file extension of FMU archives.
const FMUExtension = ".fmu"

// Source opens one model description document.
type Source interface {
	// Open returns the document content and a name used in error messages.
	// The caller closes the reader.
	Open() (io.ReadCloser, string, error)
}

// --- File Source (a modelDescription.xml on disk) ---

type fileSource struct {
	path string
}

// File creates a Source reading the XML document at path.
// The file is opened on each Load.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open() (io.ReadCloser, string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, s.path, err
	}
	return f, s.path, nil
}

// --- Dir Source (an extracted FMU) ---

// Dir creates a Source for an extracted FMU directory, reading its
// modelDescription.xml.
func Dir(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: dir, Err: os.ErrInvalid}
	}
	return &fileSource{path: filepath.Join(dir, ModelDescriptionFile)}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(dir string) Source {
	src, err := Dir(dir)
	if err != nil {
		panic(err)
	}
	return src
}

// --- FS Source (for embed.FS, testing, zip archives) ---

type fsSource struct {
	name string
	fsys fs.FS
	path string
}

// FS creates a Source reading the file at path within fsys.
// The name is used for error messages.
func FS(name string, fsys fs.FS, path string) Source {
	return &fsSource{name: name, fsys: fsys, path: path}
}

func (s *fsSource) Open() (io.ReadCloser, string, error) {
	display := s.name + ":" + s.path
	f, err := s.fsys.Open(s.path)
	if err != nil {
		return nil, display, err
	}
	return f, display, nil
}

// --- FMU Source (zip archive) ---

type fmuSource struct {
	path string
}

// FMU creates a Source reading modelDescription.xml from the FMU archive
// at path. The archive is opened on each Load and closed with the reader.
func FMU(path string) Source {
	return &fmuSource{path: path}
}

func (s *fmuSource) Open() (io.ReadCloser, string, error) {
	display := s.path + ":" + ModelDescriptionFile
	zr, err := zip.OpenReader(s.path)
	if err != nil {
		return nil, display, err
	}
	rc, _, err := FS(s.path, zr, ModelDescriptionFile).Open()
	if err != nil {
		_ = zr.Close()
		return nil, display, err
	}
	return &archiveEntry{ReadCloser: rc, archive: zr}, display, nil
}

// archiveEntry closes the archive together with the entry.
type archiveEntry struct {
	io.ReadCloser
	archive io.Closer
}

func (e *archiveEntry) Close() error {
	return errors.Join(e.ReadCloser.Close(), e.archive.Close())
}

// --- Bytes Source (in-memory document) ---

type bytesSource struct {
	name string
	data []byte
}

// Bytes creates a Source over an in-memory document.
func Bytes(name string, data []byte) Source {
	return &bytesSource{name: name, data: data}
}

func (s *bytesSource) Open() (io.ReadCloser, string, error) {
	return io.NopCloser(bytes.NewReader(s.data)), s.name, nil
}

// --- Helpers ---

// Detect picks a Source for path: FMU for ".fmu" files, Dir for
// directories, File otherwise.
func Detect(p string) (Source, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return Dir(p)
	case strings.EqualFold(filepath.Ext(p), FMUExtension):
		return FMU(p), nil
	default:
		return File(p), nil
	}
}
