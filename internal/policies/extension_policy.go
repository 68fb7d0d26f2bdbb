package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mmpa/internal/shared"
	"mmpa/internal/types"
)

var classExtensions = map[types.ResourceClass][]string{
	types.ClassAudio:     {"wav", "ogg", "mp3", "flac", "aiff", "ds", "spx", "voc", "aif", "au"},
	types.ClassSoundfont: {"sf2", "sf3"},
	types.ClassVST:       {"dll", "exe", "so"},
}

// ClassOf classifies a resource path by its file extension.
func ClassOf(path string) types.ResourceClass {
	ext := shared.FileExt(path)
	for class, exts := range classExtensions {
		for _, e := range exts {
			if e == ext {
				return class
			}
		}
	}
	return types.ClassUnknown
}

// CheckReplacement rejects a replacement whose extension belongs to a
// different resource class than the path it replaces, so a sample is never
// remapped onto a VST binary. Paths of unknown class pass through.
func CheckReplacement(oldPath string, newPath string) error {
	oldClass := ClassOf(oldPath)
	if oldClass == types.ClassUnknown {
		return nil
	}
	newExt := shared.FileExt(newPath)
	if newExt == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("replacement %q has no file extension (allowed: %s)",
				newPath, strings.Join(classExtensions[oldClass], ", ")))
	}
	if ClassOf(newPath) != oldClass {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("cannot remap %s resource %q to %q (allowed extensions: %s)",
				oldClass, oldPath, newPath, strings.Join(classExtensions[oldClass], ", ")))
	}
	return nil
}
