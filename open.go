package hapleg

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genomisc"
)

const googleStoragePrefix = "gs://"

// inputStream is a decompressed view of a local file or Google Storage object.
type inputStream struct {
	*bufio.Reader
	decompressor io.Closer
	source       io.Closer
}

func (s *inputStream) Close() error {
	err := s.decompressor.Close()
	if serr := s.source.Close(); err == nil {
		err = serr
	}

	return err
}

// openInput opens path, which may be a gs:// URL when client is non-nil, and
// decompresses it according to its suffix.
func openInput(path string, client *storage.Client) (*inputStream, error) {
	if strings.HasPrefix(path, googleStoragePrefix) && client == nil {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("no Google Storage client was configured")}
	}

	src, err := genomisc.MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	dec, err := CompressionFromPath(path).NewReader(src)
	if err != nil {
		src.Close()
		return nil, &ReadError{Path: path, Err: err}
	}

	return &inputStream{
		Reader:       bufio.NewReaderSize(dec, 1<<16),
		decompressor: dec,
		source:       src,
	}, nil
}

// readLine returns the next line without its trailing newline. A final line
// that lacks a newline is still returned; io.EOF is returned only once no
// bytes remain.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(line, "\n"), nil
}
