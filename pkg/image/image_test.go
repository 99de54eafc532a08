package image

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/agenthands/tlang/pkg/vm"
)

func TestImageFileRoundTrip(t *testing.T) {
	code := []byte{vm.OP_LDI, 0, 0, 0, 0, 0, 0, 0, 5, vm.OP_END}
	img := New("5", code, 32)

	path := filepath.Join(t.TempDir(), "prog.tlc")
	if err := WriteFile(path, img); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Source != "5" || got.StackDepth != 32 {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if !bytes.Equal(got.Code, code) {
		t.Errorf("code mismatch: %x", got.Code)
	}

	res, err := vm.RunBytes(got.Code, vm.NewFixedState(got.StackDepth))
	if err != nil || res.Int() != 5 {
		t.Errorf("stored program ran to %v, %v", res, err)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	img := New("1+2", []byte{vm.OP_END}, 4)
	a, err := Marshal(img)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	b, err := Marshal(img)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding differs between calls")
	}
}

func TestUnmarshalRejects(t *testing.T) {
	future := &Image{Version: Version + 1, Code: []byte{vm.OP_END}}
	data, err := Marshal(future)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Unmarshal(data); !errors.Is(err, ErrVersion) {
		t.Errorf("expected ErrVersion, got %v", err)
	}

	empty, err := Marshal(New("", nil, 1))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Unmarshal(empty); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("expected ErrEmptyCode, got %v", err)
	}

	for _, depth := range []int{-1, 0, vm.MaxStackDepth + 1} {
		data, err := Marshal(New("1", []byte{vm.OP_END}, depth))
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if _, err := Unmarshal(data); !errors.Is(err, ErrStackDepth) {
			t.Errorf("depth %d: expected ErrStackDepth, got %v", depth, err)
		}
	}

	if _, err := Unmarshal([]byte{0xFF, 0x00}); err == nil {
		t.Error("expected decode error for garbage")
	}
}
