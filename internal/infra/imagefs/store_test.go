package imagefs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ignaskar/pngcoder/internal/domain"
)

func testImage(t *testing.T) domain.Png {
	t.Helper()

	mk := func(typ string, data []byte) domain.Chunk {
		ct, err := domain.ParseChunkType(typ)
		if err != nil {
			t.Fatalf("ParseChunkType(%q): %v", typ, err)
		}
		c, err := domain.NewChunk(ct, data)
		if err != nil {
			t.Fatalf("NewChunk(%q): %v", typ, err)
		}
		return c
	}

	return domain.PngFromChunks([]domain.Chunk{
		mk("IHDR", make([]byte, 13)),
		mk("IDAT", []byte{0x78, 0x9c, 0x62, 0x00}),
		mk("IEND", nil),
	})
}

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.png")
	if err := os.WriteFile(path, testImage(t).Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadImage_Valid(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())

	img, err := New().LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := len(img.Chunks()); got != 3 {
		t.Errorf("chunk count = %d, want 3", got)
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	_, err := New().LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected %s, got %v", domain.KindIO, err)
	}
}

func TestLoadImage_NotAPng(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not.png")
	if err := os.WriteFile(path, []byte("plain text, no signature"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().LoadImage(path)
	if !domain.IsKind(err, domain.KindInvalidSignature) {
		t.Fatalf("expected %s, got %v", domain.KindInvalidSignature, err)
	}
}

func TestSaveImage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := testImage(t)

	store := New()
	if err := store.SaveImage(path, img); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	loaded, err := store.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if !loaded.Equal(img) {
		t.Error("expected byte-identical round trip through disk")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after save")
	}
}

func TestSaveImage_BackupKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir)

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	store := New(WithBackup(true))
	img, err := store.LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}

	ct, _ := domain.ParseChunkType("ruSt")
	chunk, _ := domain.NewChunk(ct, []byte("payload"))
	img.AppendChunk(chunk)

	if err := store.SaveImage(path, img); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	bak, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	if !bytes.Equal(bak, original) {
		t.Error("backup does not match the pre-mutation file")
	}
}

func TestSaveImage_BackupFreshPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fresh.png")

	store := New(WithBackup(true))
	if err := store.SaveImage(path, testImage(t)); err != nil {
		t.Fatalf("SaveImage to fresh path: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Error("no backup expected for a fresh path")
	}
}
