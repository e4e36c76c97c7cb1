//go:build ignore

// Generates sample inputs in every supported format:
//
//	go run testdata/generate.go
package main

import (
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/segmentio/encoding/json"
	"github.com/segmentio/parquet-go"
	log "github.com/sirupsen/logrus"
)

type Address struct {
	City string `parquet:"city" json:"city"`
	Zip  string `parquet:"zip" json:"zip"`
}

type User struct {
	ID      int64    `parquet:"id" json:"id"`
	Name    string   `parquet:"name" json:"name"`
	Age     int32    `parquet:"age" json:"age"`
	Active  bool     `parquet:"active" json:"active"`
	Score   float64  `parquet:"score" json:"score"`
	Address Address  `parquet:"address" json:"address"`
	Tags    []string `parquet:"tags" json:"tags,omitempty"`
}

var users = []User{
	{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5, Address: Address{"Lisbon", "1100"}, Tags: []string{"admin", "go"}},
	{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3, Address: Address{"Porto", "4000"}},
	{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7, Address: Address{"Braga", "4700"}, Tags: []string{"dev"}},
	{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2, Address: Address{"Faro", "8000"}},
	{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8, Address: Address{"Evora", "7000"}, Tags: []string{}},
}

func main() {
	writeParquet("users.parquet")
	writeJSON("users.json")
	writeJSONLinesGzip("users.jsonl.gz")
	log.WithField("users", len(users)).Info("generated users.parquet, users.json and users.jsonl.gz")
}

func create(name string) *os.File {
	f, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

func writeParquet(name string) {
	f := create(name)
	defer f.Close()

	writer := parquet.NewGenericWriter[User](f)
	if _, err := writer.Write(users); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}

func writeJSON(name string) {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(name, append(data, '\n'), 0o644); err != nil {
		log.Fatal(err)
	}
}

func writeJSONLinesGzip(name string) {
	f := create(name)
	defer f.Close()

	gz := gzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	for _, u := range users {
		if err := enc.Encode(u); err != nil {
			log.Fatal(err)
		}
	}
	if err := gz.Close(); err != nil {
		log.Fatal(err)
	}
}
