package sprite

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/bogger/pkg/config"
)

func TestSameSeedSamePixels(t *testing.T) {
	a, b := NewSet(42), NewSet(42)
	if !bytes.Equal(a.Grass.Pix, b.Grass.Pix) {
		t.Fatal("grass differs for the same seed")
	}
	if !bytes.Equal(a.Logs[48].Pix, b.Logs[48].Pix) {
		t.Fatal("log differs for the same seed")
	}
}

func TestSizes(t *testing.T) {
	s := NewSet(1)
	if got := s.Frog.Bounds().Dx(); got != int(config.TileWidth) {
		t.Fatalf("frog width = %d, want %d", got, int(config.TileWidth))
	}
	for _, w := range []int{48, 64, 96} {
		img := s.LogFor(w)
		if img.Bounds().Dx() != w || img.Bounds().Dy() != int(config.FloatHeight) {
			t.Fatalf("log %d bounds = %v", w, img.Bounds())
		}
	}
	if got := s.LogFor(80).Bounds().Dx(); got != 80 {
		t.Fatalf("painted log width = %d, want 80", got)
	}
	if len(s.Cars) != len(CarColours) {
		t.Fatalf("cars = %d, want %d", len(s.Cars), len(CarColours))
	}
}

func TestExportWritesPNGs(t *testing.T) {
	dir := t.TempDir()
	if err := NewSet(3).Export(dir); err != nil {
		t.Fatalf("Export: %v", err)
	}
	for _, name := range []string{"frog.png", "water.png", "log_96.png", "car_0.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}
