package schema

import (
	"path/filepath"
)

// Source identifies where a schema document originated.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindEmbedded SourceKind = "embedded"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type embeddedSource struct {
	name string
}

func (s embeddedSource) Location() string {
	return s.name
}

func (s embeddedSource) Kind() SourceKind {
	return SourceKindEmbedded
}

// SourceFromEmbedded identifies a document bundled with the binary.
func SourceFromEmbedded(name string) Source {
	return embeddedSource{name: name}
}
