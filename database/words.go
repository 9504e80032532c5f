package db

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Word is one row of the hsk_words table.
type Word struct {
	ID              int    `db:"id"`
	Chinese         string `db:"chinese"`
	Pinyin          string `db:"pinyin"`
	PinyinWithTone  string `db:"pinyin_with_tone"`
	JapaneseMeaning string `db:"japanese_meaning"`
	HSKLevel        int    `db:"hsk_level"`
}

// CSVHeader is the exact header row of export files and the column set
// expected on import.
var CSVHeader = []string{"Id", "Chinese", "Pinyin", "Pinyin_With_Tone", "Japanese_Meaning", "Hsk_Level"}

// utf8BOM is prepended to exports so spreadsheet tools detect the
// encoding of the CJK text correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DataFormatError reports a CSV cell that could not be coerced to the
// column's type.
type DataFormatError struct {
	Row    int
	Column string
	Value  string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("row %d: column %s: invalid integer %q", e.Row, e.Column, e.Value)
}

// WriteWordsCSV writes the words to path as UTF-8 with a byte-order
// marker, header first. The caller is expected to skip the call entirely
// when there are no words, so an empty file is never produced.
func WriteWordsCSV(path string, words []Word) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, w := range words {
		row := []string{
			strconv.Itoa(w.ID),
			w.Chinese,
			w.Pinyin,
			w.PinyinWithTone,
			w.JapaneseMeaning,
			strconv.Itoa(w.HSKLevel),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV file: %w", err)
	}
	return file.Close()
}

// ReadWordsCSV parses a word CSV, mapping columns by header name so the
// column order does not matter. Extra columns are ignored; a missing
// required column is an error. Id and Hsk_Level must parse as integers.
func ReadWordsCSV(path string) ([]Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	if lead, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		buffered.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(buffered)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range CSVHeader {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("CSV header missing column %s", name)
		}
	}

	var words []Word
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}
		row++

		id, err := strconv.Atoi(strings.TrimSpace(record[index["Id"]]))
		if err != nil {
			return nil, &DataFormatError{Row: row, Column: "Id", Value: record[index["Id"]]}
		}
		level, err := strconv.Atoi(strings.TrimSpace(record[index["Hsk_Level"]]))
		if err != nil {
			return nil, &DataFormatError{Row: row, Column: "Hsk_Level", Value: record[index["Hsk_Level"]]}
		}

		words = append(words, Word{
			ID:              id,
			Chinese:         record[index["Chinese"]],
			Pinyin:          record[index["Pinyin"]],
			PinyinWithTone:  record[index["Pinyin_With_Tone"]],
			JapaneseMeaning: record[index["Japanese_Meaning"]],
			HSKLevel:        level,
		})
	}

	return words, nil
}
