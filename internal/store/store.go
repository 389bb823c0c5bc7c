// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists articles and their detected mention edges in
// SQLite. The engine itself never touches storage; the poll command
// hands it a PersistFunc backed by this package.
// See docs/ARCHITECTURE § Persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gilshw/politifeed/pkg/types"
)

const defaultDBPath = "data/politifeed.db"

// Store manages the article/mention SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and bootstraps the schema. An
// empty path selects the default location.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		path = defaultDBPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT,
			description TEXT,
			url TEXT,
			source TEXT,
			published TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS mentions (
			article_id TEXT NOT NULL REFERENCES articles(id),
			entity_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			relevant INTEGER NOT NULL DEFAULT 1,
			detected_at TEXT NOT NULL,
			PRIMARY KEY (article_id, entity_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_mentions_entity ON mentions(entity_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveArticle upserts an article record. The body is deliberately not
// stored; only the fields the mention views need.
func (s *Store) SaveArticle(ctx context.Context, a types.Article) error {
	published := ""
	if !a.Published.IsZero() {
		published = a.Published.UTC().Format(time.RFC3339)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (id, title, description, url, source, published)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, description=excluded.description,
			url=excluded.url, source=excluded.source, published=excluded.published`,
		a.ID, a.Title, a.Description, a.URL, a.Source, published,
	)
	if err != nil {
		return fmt.Errorf("upserting article %s: %w", a.ID, err)
	}
	return nil
}

// HasArticle reports whether an article ID is already stored. Used by
// the poller to skip items seen in earlier runs.
func (s *Store) HasArticle(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM articles WHERE id = ?`, id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking article %s: %w", id, err)
	}
	return true, nil
}

// SaveMention upserts one mention edge.
func (s *Store) SaveMention(ctx context.Context, articleID, entityID string, score int, relevant bool) error {
	rel := 0
	if relevant {
		rel = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mentions (article_id, entity_id, score, relevant, detected_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(article_id, entity_id) DO UPDATE SET
			score=excluded.score, relevant=excluded.relevant, detected_at=excluded.detected_at`,
		articleID, entityID, score, rel, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting mention %s/%s: %w", articleID, entityID, err)
	}
	return nil
}

// MentionRecord is one stored mention joined with its article.
type MentionRecord struct {
	ArticleID    string
	EntityID     string
	Score        int
	Relevant     bool
	ArticleTitle string
	ArticleURL   string
	Source       string
	Published    string
}

// MentionsFor returns the stored mentions of one entity, newest
// article first. A limit of 0 or less selects 20.
func (s *Store) MentionsFor(ctx context.Context, entityID string, limit int) ([]MentionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.article_id, m.entity_id, m.score, m.relevant,
			a.title, a.url, a.source, a.published
		 FROM mentions m JOIN articles a ON a.id = m.article_id
		 WHERE m.entity_id = ?
		 ORDER BY a.published DESC
		 LIMIT ?`,
		entityID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying mentions of %s: %w", entityID, err)
	}
	defer rows.Close()

	var out []MentionRecord
	for rows.Next() {
		var r MentionRecord
		var rel int
		if err := rows.Scan(&r.ArticleID, &r.EntityID, &r.Score, &rel,
			&r.ArticleTitle, &r.ArticleURL, &r.Source, &r.Published); err != nil {
			return nil, fmt.Errorf("scanning mention row: %w", err)
		}
		r.Relevant = rel != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// EntityCount holds the per-entity mention tally.
type EntityCount struct {
	EntityID string
	Count    int
}

// TopEntities returns entities by stored mention count, descending.
func (s *Store) TopEntities(ctx context.Context, limit int) ([]EntityCount, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT entity_id, COUNT(*) FROM mentions
		 GROUP BY entity_id ORDER BY COUNT(*) DESC, entity_id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entity counts: %w", err)
	}
	defer rows.Close()

	var out []EntityCount
	for rows.Next() {
		var c EntityCount
		if err := rows.Scan(&c.EntityID, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
