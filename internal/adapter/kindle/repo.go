// Package kindle reads the lookup history out of a Kindle vocab.db file.
package kindle

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// Repository queries a Kindle vocabulary database.
type Repository struct {
	db *sql.DB
}

// Open opens the vocab.db file read-only.
func Open(path string) (*Repository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat vocab db: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open vocab db: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Lookups aggregates the lookup history by word stem: one RawWord per stem
// with the lookup count, a representative usage sentence and the title of
// the book it was first looked up in.
func (r *Repository) Lookups(ctx context.Context) ([]domain.RawWord, error) {
	query := squirrel.
		Select(
			"w.word",
			"w.stem",
			"COUNT(l.id) AS lookups",
			"MIN(l.usage) AS usage",
			"MIN(b.title) AS title",
		).
		From("WORDS w").
		Join("LOOKUPS l ON l.word_key = w.id").
		LeftJoin("BOOK_INFO b ON b.id = l.book_key").
		GroupBy("w.stem").
		OrderBy("lookups DESC", "w.stem ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookups query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	var words []domain.RawWord
	for rows.Next() {
		var (
			raw   domain.RawWord
			usage sql.NullString
			title sql.NullString
		)
		if err := rows.Scan(&raw.Word, &raw.Stem, &raw.Count, &usage, &title); err != nil {
			return nil, fmt.Errorf("scan lookup row: %w", err)
		}
		raw.Example = usage.String
		raw.Title = title.String
		words = append(words, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookups: %w", err)
	}
	return words, nil
}
