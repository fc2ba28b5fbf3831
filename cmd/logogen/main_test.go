package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prodscan/logo"
)

func readLogo(t *testing.T) *image.NRGBA {
	t.Helper()
	f, err := os.Open(logo.FileName)
	if err != nil {
		t.Fatalf("open %s: %v", logo.FileName, err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", logo.FileName, err)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("decoded image is %T, want *image.NRGBA", img)
	}
	return nrgba
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := stdout.String(), "Logo created successfully!\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}

	img := readLogo(t)
	if got := img.Bounds(); got != image.Rect(0, 0, logo.Size, logo.Size) {
		t.Errorf("bounds = %v, want 200x200", got)
	}
	if got := img.NRGBAAt(45, 45); got != logo.BoxBlue {
		t.Errorf("(45,45) = %v, want %v", got, logo.BoxBlue)
	}
}

func TestRunIgnoresArguments(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	plain := readLogo(t)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"logogen", "-size", "10", "--output", "other.png", "extra"}

	stdout.Reset()
	if err := run(&stdout); err != nil {
		t.Fatalf("run() with arguments error = %v", err)
	}
	if got, want := stdout.String(), "Logo created successfully!\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if _, err := os.Stat("other.png"); !os.IsNotExist(err) {
		t.Errorf("arguments produced other.png (stat err = %v)", err)
	}

	withArgs := readLogo(t)
	if diff := cmp.Diff(plain.Pix, withArgs.Pix); diff != "" {
		t.Errorf("output changed with arguments (-plain +args):\n%s", diff)
	}
}

func TestRunUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// A directory where the file should go makes the create fail.
	if err := os.Mkdir(logo.FileName, 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run(&stdout); err == nil {
		t.Fatal("run() succeeded with logo.png being a directory")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q on failure, want empty", stdout.String())
	}
}
