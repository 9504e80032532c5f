package db

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var sampleWords = []Word{
	{ID: 1, Chinese: "你好", Pinyin: "nihao", PinyinWithTone: "nǐ hǎo", JapaneseMeaning: "こんにちは", HSKLevel: 1},
	{ID: 2, Chinese: "谢谢", Pinyin: "xiexie", PinyinWithTone: "xiè xiè", JapaneseMeaning: "ありがとう", HSKLevel: 1},
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")

	if err := WriteWordsCSV(path, sampleWords); err != nil {
		t.Fatalf("WriteWordsCSV: %v", err)
	}

	got, err := ReadWordsCSV(path)
	if err != nil {
		t.Fatalf("ReadWordsCSV: %v", err)
	}
	if !reflect.DeepEqual(got, sampleWords) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, sampleWords)
	}
}

func TestWriteWordsCSVStartsWithBOMAndHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")

	if err := WriteWordsCSV(path, sampleWords); err != nil {
		t.Fatalf("WriteWordsCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Error("file does not start with UTF-8 BOM")
	}
	wantHeader := "Id,Chinese,Pinyin,Pinyin_With_Tone,Japanese_Meaning,Hsk_Level\n"
	rest := bytes.TrimPrefix(data, utf8BOM)
	if !bytes.HasPrefix(rest, []byte(wantHeader)) {
		t.Errorf("header mismatch, file starts with %q", rest[:min(len(rest), len(wantHeader))])
	}
}

func TestReadWordsCSVWithoutBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "Id,Chinese,Pinyin,Pinyin_With_Tone,Japanese_Meaning,Hsk_Level\n" +
		"5,水,shui,shuǐ,みず,2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadWordsCSV(path)
	if err != nil {
		t.Fatalf("ReadWordsCSV: %v", err)
	}
	want := []Word{{ID: 5, Chinese: "水", Pinyin: "shui", PinyinWithTone: "shuǐ", JapaneseMeaning: "みず", HSKLevel: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadWordsCSVMapsColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	// Shuffled column order plus an extra column the importer ignores.
	content := "Hsk_Level,Id,Japanese_Meaning,Chinese,Pinyin_With_Tone,Pinyin,Notes\n" +
		"3,7,やま,山,shān,shan,extra\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadWordsCSV(path)
	if err != nil {
		t.Fatalf("ReadWordsCSV: %v", err)
	}
	want := []Word{{ID: 7, Chinese: "山", Pinyin: "shan", PinyinWithTone: "shān", JapaneseMeaning: "やま", HSKLevel: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestReadWordsCSVBadInteger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "Id,Chinese,Pinyin,Pinyin_With_Tone,Japanese_Meaning,Hsk_Level\n" +
		"1,你好,nihao,nǐ hǎo,こんにちは,1\n" +
		"2,谢谢,xiexie,xiè xiè,ありがとう,abc\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadWordsCSV(path)
	var formatErr *DataFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected DataFormatError, got %v", err)
	}
	if formatErr.Row != 2 || formatErr.Column != "Hsk_Level" {
		t.Errorf("got row %d column %s, want row 2 column Hsk_Level", formatErr.Row, formatErr.Column)
	}
}

func TestReadWordsCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "Id,Chinese,Pinyin,Pinyin_With_Tone,Hsk_Level\n" +
		"1,你好,nihao,nǐ hǎo,1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadWordsCSV(path); err == nil {
		t.Fatal("expected error for missing Japanese_Meaning column")
	}
}

func TestReadWordsCSVMissingFile(t *testing.T) {
	if _, err := ReadWordsCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
