package numfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"github.com/pkg/errors"
)

// ErrSyntax is returned (wrapped) if a file contains a token which is not a number.
var ErrSyntax = errors.New("rbvec: syntax error in number file")

// numberFile represents an OS file to be read as a sequence of numbers.
type numberFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*numberFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load number file")
	} else if !fi.Mode().IsRegular() {
		return nil, errors.Errorf("cannot load number file: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, errors.Wrap(err, "cannot load number file")
	}
	return &numberFile{path: name, info: fi, file: file}, nil
}

// errReader remembers the first read error, as the segmenter will treat it
// like end of input.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}

// scan splits the input into line-wrap segments and calls emit for every
// number found. Segments are produced by a UAX#14 line breaker, so a number
// will never be split across segments.
func scan(name string, r io.Reader, emit func(float64) error) error {
	input := &errReader{r: r}
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(input))
	line, comment := 1, false
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		for _, word := range strings.FieldsFunc(frag, isSeparator) {
			if comment {
				continue
			}
			if k := strings.IndexByte(word, '#'); k >= 0 {
				word, comment = word[:k], true
				if word == "" {
					continue
				}
			}
			x, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return errors.Wrapf(ErrSyntax, "%s:%d: %q is not a number", name, line, word)
			}
			if err = emit(x); err != nil {
				return err
			}
		}
		if nl := strings.Count(frag, "\n"); nl > 0 {
			line += nl
			comment = false
		}
	}
	if input.err != nil {
		return errors.Wrapf(input.err, "error reading %s", name)
	}
	return nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', ',', ';':
		return true
	}
	return false
}
