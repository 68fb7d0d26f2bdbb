package adapters

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"mmpa/internal/ports"
	"mmpa/internal/shared"
)

// ProjectFileAdapter is the document codec for LMMS project files. The
// compressed mmpz variant frames a zlib stream with a 4-byte big-endian
// length of the uncompressed XML.
type ProjectFileAdapter struct{}

func NewProjectFileAdapter() ProjectFileAdapter {
	return ProjectFileAdapter{}
}

const compressedExt = "mmpz"

func (a ProjectFileAdapter) Load(path string) (ports.ProjectDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.ProjectDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read project file").
			WithCause(err)
	}

	if xmlData, ok := inflate(raw); ok {
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(xmlData); err != nil {
			return ports.ProjectDocument{}, decodeError(err)
		}
		return ports.ProjectDocument{Tree: doc, Compressed: true}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return ports.ProjectDocument{}, decodeError(err)
	}
	return ports.ProjectDocument{Tree: doc, Compressed: false}, nil
}

func (a ProjectFileAdapter) Save(doc ports.ProjectDocument, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("output file already exists, pass --force to overwrite")
	}
	data, err := doc.Tree.WriteToBytes()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize project tree").
			WithCause(err)
	}
	if shared.FileExt(path) == compressedExt {
		data = deflate(data)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write output file").
			WithCause(err)
	}
	return nil
}

// inflate attempts the mmpz framing: 4-byte size field, then a zlib
// stream. A plain XML file fails the zlib header check and falls through.
func inflate(raw []byte) ([]byte, bool) {
	if len(raw) <= 4 {
		return nil, false
	}
	reader, err := zlib.NewReader(bytes.NewReader(raw[4:]))
	if err != nil {
		return nil, false
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, false
	}
	return data, true
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(data)))
	buf.Write(size)
	writer := zlib.NewWriter(&buf)
	_, _ = writer.Write(data)
	_ = writer.Close()
	return buf.Bytes()
}

func decodeError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("not a valid LMMS project file").
		WithCause(err)
}

var _ ports.ProjectCodecPort = ProjectFileAdapter{}
