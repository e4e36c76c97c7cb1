package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/flatcat/flatten"
)

// ParquetReader reads parquet files and returns rows as records.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns a
// FileReadError if the file cannot be opened and a ParseError if it is not
// a valid parquet file.
//
// Example:
//
//	reader, err := NewParquetReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, &FileReadError{Path: path, Err: fmt.Errorf("failed to stat file: %w", err)}
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to open parquet file: %w", err)}
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// openParquetStream buffers a non-seekable stream so it can be opened as a
// parquet file.
func openParquetStream(r io.Reader) (*ParquetReader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileReadError{Path: StdinPath, Err: err}
	}
	pqFile, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Path: StdinPath, Err: fmt.Errorf("failed to open parquet file: %w", err)}
	}
	return &ParquetReader{pqFile: pqFile}, nil
}

// ReadAll reads all rows from the parquet file into memory.
//
// Each row is returned as a map where keys are column names and values are
// the column values. Nested groups come back as nested maps.
func (r *ParquetReader) ReadAll() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Records reads every row and converts it to an object record.
func (r *ParquetReader) Records() ([]flatten.Value, error) {
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	records := make([]flatten.Value, len(rows))
	for i, row := range rows {
		v, err := flatten.FromInterface(row)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("row %d: %w", i, err)}
		}
		records[i] = v
	}
	return records, nil
}

// Close closes the parquet reader and releases associated resources.
//
// It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}
