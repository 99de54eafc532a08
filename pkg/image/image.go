// Package image stores compiled programs on disk. The bytecode is kept
// verbatim inside a small CBOR envelope that records what is needed to
// run it again.
package image

import (
	"errors"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/agenthands/tlang/pkg/vm"
)

// Version is the envelope format version written by Marshal.
const Version = 1

var (
	ErrVersion    = errors.New("image: unsupported version")
	ErrEmptyCode  = errors.New("image: no bytecode")
	ErrStackDepth = fmt.Errorf("image: stack depth must be between 1 and %d", vm.MaxStackDepth)
)

// Image is a compiled program.
type Image struct {
	Version    uint   `cbor:"1,keyasint"`
	Source     string `cbor:"2,keyasint,omitempty"`
	StackDepth int    `cbor:"3,keyasint"`
	Code       []byte `cbor:"4,keyasint"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("image: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// New wraps code compiled from source.
func New(source string, code []byte, stackDepth int) *Image {
	return &Image{Version: Version, Source: source, StackDepth: stackDepth, Code: code}
}

// Marshal serializes img to canonical CBOR.
func Marshal(img *Image) ([]byte, error) {
	return encMode.Marshal(img)
}

// Unmarshal decodes and checks an image.
func Unmarshal(data []byte) (*Image, error) {
	var img Image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, fmt.Errorf("image: unmarshal: %w", err)
	}
	if img.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, img.Version)
	}
	if len(img.Code) == 0 {
		return nil, ErrEmptyCode
	}
	if img.StackDepth < 1 || img.StackDepth > vm.MaxStackDepth {
		return nil, fmt.Errorf("%w: got %d", ErrStackDepth, img.StackDepth)
	}
	return &img, nil
}

// WriteFile marshals img to path.
func WriteFile(path string, img *Image) error {
	data, err := Marshal(img)
	if err != nil {
		return fmt.Errorf("image: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile loads an image from path.
func ReadFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Unmarshal(data)
}
