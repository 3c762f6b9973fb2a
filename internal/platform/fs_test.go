package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "exists.txt")
	os.WriteFile(f, []byte("hi"), 0644)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", f, true},
		{"existing directory", dir, true},
		{"nonexistent file", filepath.Join(dir, "nope.txt"), false},
		{"nonexistent nested", filepath.Join(dir, "a", "b", "nope.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
