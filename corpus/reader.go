// Copyright 2024 Fantom Foundation
// This file is part of Tally, a toolkit for frequency and probability distributions
//
// Tally is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tally is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Tally. If not, see <http://www.gnu.org/licenses/>.
// Package corpus reads whitespace separated symbols from plain or gzipped text files.
package corpus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fantom-foundation/Tally/probability"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/cases"
)

//go:generate mockgen -source reader.go -destination reader_mocks.go -package corpus

// maxTokenSize is the longest symbol accepted by the reader.
const maxTokenSize = 1 << 20

// Iterator walks over the symbols of a text.
type Iterator interface {
	// Next advances to the next symbol; it returns false at the end or on error.
	Next() bool
	// Value returns the current symbol.
	Value() string
	// Close releases the resources of the iterator.
	Close()
	// Error returns the first error that stopped the iteration, wrapping probability.ErrRead.
	Error() error
}

// FileReader implements an Iterator over the symbols of a file.
type FileReader struct {
	ctx     context.Context
	f       io.Closer
	in      io.ReadCloser
	scanner *bufio.Scanner
	fold    *cases.Caser // nil if symbols keep their case
	path    string
	token   string
	err     error
}

// NewFileReader opens a file and prepares reading its symbols. Files with
// the extension .gz are decompressed and the path "-" reads stdin. With
// fold set, symbols are case folded.
func NewFileReader(ctx context.Context, path string, fold bool) (*FileReader, error) {
	f := os.Stdin
	var closer io.Closer // stdin stays open
	if path != "-" {
		var err error
		f, err = os.OpenFile(path, os.O_RDONLY, 0640)
		if err != nil {
			return nil, fmt.Errorf("NewFileReader: %w: %w", probability.ErrRead, err)
		}
		closer = f
	}

	var in io.ReadCloser

	// gzipped file?
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return nil, fmt.Errorf("NewFileReader: %v: %w: %w", path, probability.ErrRead, err)
		}
		in = zr
	} else {
		in = io.NopCloser(f)
	}
	return newReader(ctx, path, closer, in, fold), nil
}

// NewReader creates an Iterator over the symbols of r.
func NewReader(ctx context.Context, r io.Reader, fold bool) *FileReader {
	return newReader(ctx, "input", nil, io.NopCloser(r), fold)
}

func newReader(ctx context.Context, path string, f io.Closer, in io.ReadCloser, fold bool) *FileReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	fr := &FileReader{
		ctx:     ctx,
		f:       f,
		in:      in,
		scanner: scanner,
		path:    path,
	}
	if fold {
		caser := cases.Fold()
		fr.fold = &caser
	}
	return fr
}

func (fr *FileReader) Next() bool {
	if fr.err != nil {
		return false
	}
	if err := fr.ctx.Err(); err != nil {
		fr.err = fmt.Errorf("reading %v: %w: %w", fr.path, probability.ErrRead, err)
		return false
	}
	if !fr.scanner.Scan() {
		if err := fr.scanner.Err(); err != nil {
			fr.err = fmt.Errorf("reading %v: %w: %w", fr.path, probability.ErrRead, err)
		}
		return false
	}
	fr.token = fr.scanner.Text()
	if fr.fold != nil {
		fr.token = fr.fold.String(fr.token)
	}
	return true
}

func (fr *FileReader) Value() string {
	return fr.token
}

func (fr *FileReader) Error() error {
	return fr.err
}

// Close the file reader releasing all the resources below.
func (fr *FileReader) Close() {
	_ = fr.in.Close()
	if fr.f != nil {
		_ = fr.f.Close()
	}
}

// ReadTokens returns all symbols of an iterator and closes it.
func ReadTokens(it Iterator) ([]string, error) {
	defer it.Close()
	tokens := []string{}
	for it.Next() {
		tokens = append(tokens, it.Value())
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return tokens, nil
}
