package hapleg

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func writeTestGzip(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, gzipBytes(t, content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

// writeTruncatedGzip writes a gzip file that stops halfway through its
// compressed stream.
func writeTruncatedGzip(t *testing.T, dir, name, content string) string {
	t.Helper()

	data := gzipBytes(t, content)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data[:len(data)/2], 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func readTestGzip(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

// bigLegend builds a legend with n sites at positions 1..n.
func bigLegend(n int) string {
	var buf bytes.Buffer
	buf.WriteString("id position a0 a1\n")
	for i := 1; i <= n; i++ {
		buf.WriteString(Site{ID: "rs" + strconv.Itoa(i), Position: uint32(i), Allele0: "A", Allele1: "G"}.String())
		buf.WriteByte('\n')
	}

	return buf.String()
}
