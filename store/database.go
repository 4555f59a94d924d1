// Package store database for the artwork catalog
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("artwork not found")

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	// Create directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{db: db}

	if err := database.createTable(); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return database, nil
}

func (d *Database) createTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS artworks (
		position    INTEGER NOT NULL PRIMARY KEY,
		description TEXT NOT NULL,
		title       TEXT NOT NULL,
		creator     TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		image       TEXT NOT NULL
	);
	`
	_, err := d.db.Exec(query)
	return err
}

// SeedArtworks replaces the catalog with artworks in one transaction.
// artworks[0] lands at position 1.
func (d *Database) SeedArtworks(ctx context.Context, artworks []Artwork) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM artworks WHERE position > ?`, len(artworks)); err != nil {
		return fmt.Errorf("trim artworks: %w", err)
	}

	const stmt = `
		INSERT INTO artworks (
			position,
			description,
			title,
			creator,
			created_at,
			image
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(position) DO UPDATE SET
			description = excluded.description,
			title       = excluded.title,
			creator     = excluded.creator,
			created_at  = excluded.created_at,
			image       = excluded.image
	`
	for i, a := range artworks {
		if _, err := tx.ExecContext(ctx, stmt, i+1, a.Description, a.Title, a.Creator, a.CreatedAt, a.Image); err != nil {
			return fmt.Errorf("upsert artwork %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func (d *Database) GetArtworks(ctx context.Context) ([]Artwork, error) {
	query := `
		SELECT position, description, title, creator, created_at, image
		FROM artworks
		ORDER BY position ASC
	`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer rows.Close()

	var artworks []Artwork
	for rows.Next() {
		var a Artwork
		if err := rows.Scan(&a.Position, &a.Description, &a.Title, &a.Creator, &a.CreatedAt, &a.Image); err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return artworks, nil
}

func (d *Database) GetArtwork(ctx context.Context, position int) (*Artwork, error) {
	query := `
		SELECT position, description, title, creator, created_at, image
		FROM artworks
		WHERE position = ?
	`
	var a Artwork
	err := d.db.QueryRowContext(ctx, query, position).
		Scan(&a.Position, &a.Description, &a.Title, &a.Creator, &a.CreatedAt, &a.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: position %d", ErrNotFound, position)
	}
	if err != nil {
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	return &a, nil
}

func (d *Database) GetArtworkCount(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM artworks`
	var count int
	if err := d.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get artwork count: %w", err)
	}
	return count, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}
