package ports

import "github.com/beevik/etree"

// ProjectDocument is a parsed LMMS project plus the compression state of
// the bytes it was decoded from.
type ProjectDocument struct {
	Tree       *etree.Document
	Compressed bool
}

type ProjectCodecPort interface {
	// Load reads and decodes a project file. The returned document notes
	// whether the on-disk bytes were compressed.
	Load(path string) (ProjectDocument, error)
	// Save serializes the tree to path. The output filename's extension
	// alone decides whether the bytes are compressed, regardless of how
	// the input was framed.
	Save(doc ProjectDocument, path string, force bool) error
}
