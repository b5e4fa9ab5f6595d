package main

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
	"github.com/pivolan/address_stats/domain/models"
)

var ErrEmptyArchive = errors.New("archive has no files")

// source открытый входной файл вместе с форматом данных внутри
type source struct {
	io.Reader
	format models.InputFormat
	closer func() error
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// openSource opens path and unpacks .gz, .lz4 or .zip wrappers on the fly.
// Archives are never extracted to disk.
func openSource(path string) (*source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == zipSuffix {
		return openZip(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))

	switch ext {
	case ".gz":
		gr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &source{Reader: gr, format: models.InputFormat(inner), closer: func() error {
			gr.Close()
			return file.Close()
		}}, nil
	case ".lz4":
		return &source{Reader: lz4.NewReader(file), format: models.InputFormat(inner), closer: file.Close}, nil
	}
	return &source{Reader: file, format: models.InputFormat(ext), closer: file.Close}, nil
}

// openZip reads the largest regular file of the archive into memory.
func openZip(path string) (*source, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyArchive)
	}

	rc, err := largestFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s in %s: %w", largestFile.Name, path, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s in %s: %w", largestFile.Name, path, err)
	}
	return &source{
		Reader: bytes.NewReader(data),
		format: models.InputFormat(strings.ToLower(filepath.Ext(largestFile.Name))),
	}, nil
}
