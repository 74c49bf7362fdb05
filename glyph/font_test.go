package glyph

import (
	"strings"
	"testing"
)

func TestNewFontProviderRejectsGarbage(t *testing.T) {
	if _, err := NewFontProvider([]byte("definitely not a font"), 64); err == nil {
		t.Error("expected parse error for non-font data")
	}
	if _, err := NewFontProvider(nil, 64); err == nil {
		t.Error("expected parse error for empty data")
	}
}

func TestNewFontProviderRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewFontProvider([]byte{0, 1, 0, 0}, size); err == nil {
			t.Errorf("expected error for size %d", size)
		} else if !strings.Contains(err.Error(), "size") {
			t.Errorf("size %d: error %q does not mention the size", size, err)
		}
	}
}

func TestMissingGlyphError(t *testing.T) {
	err := &MissingGlyphError{Rune: '☃'}
	if !strings.Contains(err.Error(), "☃") {
		t.Errorf("error %q does not name the missing character", err.Error())
	}
}
