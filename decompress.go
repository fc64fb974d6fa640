package riskmap

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type compression byte

const (
	compressionUnknown compression = iota
	compressionNone
	compressionGzip
	compressionZip
	compressionXZ
	compressionZ
	compressionBZip2
)

// Magic numbers from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[compression][]byte{
	compressionGzip:  {0x1f, 0x8b, 0x08},
	compressionZip:   {0x50, 0x4b, 0x03, 0x04},
	compressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	compressionZ:     {0x1f, 0x9d},
	compressionBZip2: {0x42, 0x5a, 0x68},
}

func detectCompression(r io.Reader) (compression, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err == io.EOF || err == io.ErrUnexpectedEOF {
		// Too short for any signature. Let the caller report the file's
		// contents on their own terms.
		return compressionNone, nil
	} else if err != nil {
		return compressionUnknown, err
	}

Outer:
	for c, sig := range compressionSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return c, nil
	}

	return compressionNone, nil
}

// MaybeDecompress sniffs the leading bytes of f and, when a known
// compression signature is present, wraps f in the matching decompressor.
// Score and genotype files therefore load the same way whether or not they
// were compressed before being dropped into the input directory.
func MaybeDecompress(f *os.File) (io.ReadCloser, error) {
	c, err := detectCompression(f)
	if err != nil {
		return nil, err
	}

	// Reset your original reader before any decompressor consumes it
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	switch c {
	case compressionGzip:
		return gzip.NewReader(f)
	case compressionZip:
		return &nopCloser{zipstream.NewReader(f)}, nil
	case compressionBZip2:
		return &nopCloser{bzip2.NewReader(f)}, nil
	case compressionXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &nopCloser{reader}, nil
	case compressionZ:
		return zlib.NewReader(f)
	}

	// No signature matched; assume plain text.
	return f, nil
}

// nopCloser "upgrades" readers that don't need to be closed
type nopCloser struct {
	io.Reader
}

func (c *nopCloser) Close() error {
	return nil
}
