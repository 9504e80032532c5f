package db

import (
	"fmt"
)

const selectWordsSQL = `
	SELECT Id AS id, Chinese AS chinese, Pinyin AS pinyin,
	       Pinyin_With_Tone AS pinyin_with_tone,
	       Japanese_Meaning AS japanese_meaning, Hsk_Level AS hsk_level
	FROM hsk_words
	ORDER BY Id`

const insertWordSQL = `
	INSERT INTO hsk_words (Id, Chinese, Pinyin, Pinyin_With_Tone, Japanese_Meaning, Hsk_Level)
	VALUES (:id, :chinese, :pinyin, :pinyin_with_tone, :japanese_meaning, :hsk_level)`

// progressEvery is how often the import loop reports inserted rows.
const progressEvery = 100

// ExportCSV writes every row of hsk_words to path in ascending Id order.
// The ordering is part of the format: downstream imports report progress
// by row position, so exports must be deterministic. Returns the number
// of exported rows; zero rows writes no file.
func (s *Store) ExportCSV(path string) (int, error) {
	var words []Word
	if err := s.db.Select(&words, selectWordsSQL); err != nil {
		return 0, fmt.Errorf("querying %s: %w", TableName, err)
	}

	if len(words) == 0 {
		return 0, nil
	}

	if err := WriteWordsCSV(path, words); err != nil {
		return 0, err
	}

	s.log("exported %d rows to %s", len(words), path)
	return len(words), nil
}

// ImportCSV replaces the contents of hsk_words with the rows in the CSV
// at path. The CSV is parsed in full before the database is touched, and
// the delete plus all inserts run in one transaction, so a malformed row
// or a failed insert leaves the table exactly as it was.
func (s *Store) ImportCSV(path string) (count int, err error) {
	words, err := ReadWordsCSV(path)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			s.log("transaction rolled back")
		}
	}()

	res, err := tx.Exec("DELETE FROM hsk_words")
	if err != nil {
		return 0, fmt.Errorf("deleting existing rows: %w", err)
	}
	if deleted, err := res.RowsAffected(); err == nil {
		s.log("deleted %d existing rows", deleted)
	}

	for _, reset := range s.dialect.resetAutoIncrement {
		if _, rerr := tx.Exec(reset); rerr != nil && !s.dialect.resetBestEffort {
			err = fmt.Errorf("resetting auto increment: %w", rerr)
			return 0, err
		}
	}

	stmt, err := tx.PrepareNamed(insertWordSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err = stmt.Exec(w); err != nil {
			return 0, fmt.Errorf("inserting row %d (Id=%d): %w", i+1, w.ID, err)
		}
		if (i+1)%progressEvery == 0 {
			s.log("inserted %d rows...", i+1)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	s.log("imported %d rows into %s", len(words), TableName)
	return len(words), nil
}

// LevelCount is one row of the per-level verification breakdown.
type LevelCount struct {
	Level int `db:"hsk_level"`
	Count int `db:"n"`
}

// VerifyReport summarizes the table contents for operator confirmation.
type VerifyReport struct {
	Total  int
	Levels []LevelCount
}

// Verify queries the total row count and the per-level breakdown. It is
// read-only and safe to run at any time.
func (s *Store) Verify() (*VerifyReport, error) {
	report := &VerifyReport{}

	if err := s.db.Get(&report.Total, "SELECT COUNT(*) FROM hsk_words"); err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	err := s.db.Select(&report.Levels, `
		SELECT Hsk_Level AS hsk_level, COUNT(*) AS n
		FROM hsk_words
		GROUP BY Hsk_Level
		ORDER BY Hsk_Level`)
	if err != nil {
		return nil, fmt.Errorf("counting rows per level: %w", err)
	}

	return report, nil
}
