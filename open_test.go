package hapleg

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
)

func TestOpenInputLocalFile(t *testing.T) {
	path := writeTestGzip(t, t.TempDir(), "sites.txt.gz", "1\n2\n")

	in, err := openInput(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1\n2\n" {
		t.Errorf("Got %q, expected %q", data, "1\n2\n")
	}
}

func TestOpenInputMissingLocalFile(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "missing.txt"), nil)

	var oerr *OpenError
	if !errors.As(err, &oerr) {
		t.Fatalf("Got %v, expected an *OpenError", err)
	}
}
