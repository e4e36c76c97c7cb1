// Package reader loads input records for flattening.
//
// Inputs are JSON arrays, JSON Lines or Apache Parquet files, read whole
// into memory. Every record comes back as a flatten.Value.
//
// # Basic Usage
//
// Reading a single file, picking the decoder from its extension:
//
//	records, err := reader.Load("data.json", reader.FormatAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	records, err := reader.ReadMultipleFiles("logs/*.jsonl.gz", reader.FormatAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Each object record read through a glob includes a "_file" key with the
// source file path.
//
// # Compression
//
// JSON and JSON Lines files ending in .gz, .zst, .br or .lz4 are
// decompressed on the fly. The extension under the compression suffix still
// selects the decoder, so events.jsonl.zst is read as JSON Lines.
//
// # Errors
//
// A missing or unreadable file yields a *FileReadError (errors.Is
// ErrFileRead); malformed content yields a *ParseError (errors.Is ErrParse).
//
// The package uses github.com/segmentio/encoding for JSON and
// github.com/segmentio/parquet-go for parquet files.
package reader
