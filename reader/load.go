package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/flatcat/flatten"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// FileColumn is the key added to each object record read through a glob.
const FileColumn = "_file"

// maxFiles limits how many files a glob pattern may expand to.
const maxFiles = 1000

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// Format selects how an input file is decoded.
type Format string

const (
	FormatAuto      Format = "auto"
	FormatJSON      Format = "json"
	FormatJSONLines Format = "jsonl"
	FormatParquet   Format = "parquet"
)

// ParseFormat validates a format name. The empty string means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatJSONLines, FormatParquet:
		return f, nil
	case "ndjson":
		return FormatJSONLines, nil
	default:
		return "", fmt.Errorf("unsupported input format '%s' (supported: auto, json, jsonl, parquet)", s)
	}
}

// DetectFormat picks a format from the path's extension, looking past a
// compression extension. Unknown extensions are read as JSON.
func DetectFormat(path string) Format {
	_, inner := DetectCompression(path)
	switch strings.ToLower(filepath.Ext(inner)) {
	case ".jsonl", ".ndjson":
		return FormatJSONLines
	case ".parquet":
		return FormatParquet
	default:
		return FormatJSON
	}
}

// Load reads every record of one input. path may be StdinPath.
func Load(path string, format Format) ([]flatten.Value, error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(path)
	}

	if format == FormatParquet {
		return loadParquet(path)
	}

	var src io.Reader
	if path == StdinPath {
		src = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &FileReadError{Path: path, Err: err}
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	compression, _ := DetectCompression(path)
	rc, err := decompress(compression, src)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: fmt.Errorf("failed to open %s stream: %w", compression, err)}
	}
	defer func() { _ = rc.Close() }()

	// I/O and decompression failures surface through the tracker
	tracker := &readTracker{r: rc}

	var records []flatten.Value
	if format == FormatJSONLines {
		records, err = DecodeLines(tracker)
	} else {
		records, err = Decode(tracker)
	}
	if err != nil {
		if tracker.err != nil {
			return nil, &FileReadError{Path: path, Err: tracker.err}
		}
		return nil, withPath(err, path)
	}
	return records, nil
}

func loadParquet(path string) ([]flatten.Value, error) {
	if c, _ := DetectCompression(path); c != CompressionNone {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("compressed parquet input (%s) is not supported", c)}
	}

	var (
		r   *ParquetReader
		err error
	)
	if path == StdinPath {
		r, err = openParquetStream(stdin)
	} else {
		r, err = NewParquetReader(path)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	records, err := r.Records()
	if err != nil {
		return nil, withPath(err, path)
	}
	return records, nil
}

// withPath fills in the path of a ParseError produced by a decoder.
func withPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		cp := *pe
		cp.Path = path
		return &cp
	}
	return err
}

// ReadMultipleFiles reads all records from every file matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Examples:
//   - "data/*.json" - all JSON files in data directory
//   - "logs/2024-*.jsonl.gz" - compressed JSON Lines files starting with 2024-
//   - "data/*/*.parquet" - parquet files in subdirectories of data
//
// A pattern without wildcards, or naming an existing file, is read as a
// single file. Otherwise every object record is tagged with a "_file" key
// holding its source path, and files are read in lexical order. Returns an
// error if no files match the pattern or if any file fails to read.
func ReadMultipleFiles(pattern string, format Format) ([]flatten.Value, error) {
	if pattern == StdinPath || !strings.ContainsAny(pattern, "*?[") || isFile(pattern) {
		// Don't add _file for single file reads to avoid changing output shape
		return Load(pattern, format)
	}

	// Expand glob pattern
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, &FileReadError{Path: pattern, Err: errors.New("no files match pattern")}
	}

	// Limit number of files to prevent resource exhaustion
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var all []flatten.Value
	for _, filePath := range matches {
		records, err := Load(filePath, format)
		if err != nil {
			return nil, err
		}

		for i := range records {
			if records[i].Kind == flatten.Object {
				records[i].Fields[FileColumn] = flatten.StringValue(filePath)
			}
		}
		all = append(all, records...)
	}

	if all == nil {
		all = []flatten.Value{}
	}
	return all, nil
}

// isFile reports whether path names an existing regular file, so names
// like data[1].json are read as is rather than expanded.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
