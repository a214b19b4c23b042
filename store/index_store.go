package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/noteleap/noteleap/models"
)

const indexSchema = `
CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	meta     TEXT NOT NULL DEFAULT '{}',
	tags     TEXT NOT NULL DEFAULT '[]',
	checksum TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS links (
	src TEXT NOT NULL,
	dst TEXT NOT NULL,
	pos INTEGER NOT NULL,
	PRIMARY KEY (src, pos)
);
CREATE INDEX IF NOT EXISTS idx_links_dst ON links (dst);
`

// IndexStore is a sqlite-backed document provider for large vaults. It
// caches snapshots produced by another provider (typically a
// VaultStore) and only rewrites rows whose content checksum changed.
// It caches host-side document data only; the ranking engine's own
// state never touches disk.
type IndexStore struct {
	db *sql.DB
}

// NewIndexStore opens (creating if needed) the index database at path.
// Use ":memory:" for an ephemeral index.
func NewIndexStore(path string) (*IndexStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", path, err)
	}
	if _, err := db.Exec(indexSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create index schema: %w", err)
	}
	return &IndexStore{db: db}, nil
}

// Refresh synchronizes the index with the given snapshots: changed
// documents are rewritten, unchanged ones left alone, vanished ones
// deleted. It runs in a single transaction.
func (s *IndexStore) Refresh(docs []models.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin refresh: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current := make(map[string]string)
	rows, err := tx.Query(`SELECT id, checksum FROM documents`)
	if err != nil {
		return fmt.Errorf("read checksums: %w", err)
	}
	for rows.Next() {
		var id, sum string
		if err := rows.Scan(&id, &sum); err != nil {
			_ = rows.Close()
			return err
		}
		current[id] = sum
	}
	if err := rows.Err(); err != nil {
		return err
	}
	_ = rows.Close()

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		seen[doc.ID] = true
		sum, err := documentChecksum(doc)
		if err != nil {
			return fmt.Errorf("checksum %s: %w", doc.ID, err)
		}
		if current[doc.ID] == sum {
			continue
		}
		if err := upsertDocument(tx, doc, sum); err != nil {
			return fmt.Errorf("upsert %s: %w", doc.ID, err)
		}
	}

	for id := range current {
		if seen[id] {
			continue
		}
		if _, err := tx.Exec(`DELETE FROM documents WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
		if _, err := tx.Exec(`DELETE FROM links WHERE src = ?`, id); err != nil {
			return fmt.Errorf("delete links of %s: %w", id, err)
		}
	}

	return tx.Commit()
}

func upsertDocument(tx *sql.Tx, doc models.Document, sum string) error {
	metaJSON, err := json.Marshal(doc.Meta)
	if err != nil {
		return err
	}
	tagsJSON, err := json.Marshal(doc.Tags)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO documents (id, name, meta, tags, checksum) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, meta=excluded.meta,
		   tags=excluded.tags, checksum=excluded.checksum`,
		doc.ID, doc.Name, string(metaJSON), string(tagsJSON), sum,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM links WHERE src = ?`, doc.ID); err != nil {
		return err
	}
	for pos, dst := range doc.Links {
		if _, err := tx.Exec(`INSERT INTO links (src, dst, pos) VALUES (?, ?, ?)`, doc.ID, dst, pos); err != nil {
			return err
		}
	}
	return nil
}

// Documents implements DocumentProvider.
func (s *IndexStore) Documents() ([]models.Document, error) {
	rows, err := s.db.Query(`SELECT id, name, meta, tags FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range docs {
		links, err := s.linksOf(docs[i].ID)
		if err != nil {
			return nil, err
		}
		docs[i].Links = links
	}
	return docs, nil
}

// Document implements DocumentProvider.
func (s *IndexStore) Document(id string) (models.Document, bool, error) {
	row := s.db.QueryRow(`SELECT id, name, meta, tags FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, false, nil
	}
	if err != nil {
		return models.Document{}, false, err
	}
	links, err := s.linksOf(id)
	if err != nil {
		return models.Document{}, false, err
	}
	doc.Links = links
	return doc, true, nil
}

// Backlinks returns the IDs of documents linking to target, sorted.
func (s *IndexStore) Backlinks(target string) ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT src FROM links WHERE dst = ? ORDER BY src`, target)
	if err != nil {
		return nil, fmt.Errorf("backlinks of %s: %w", target, err)
	}
	defer func() { _ = rows.Close() }()

	var srcs []string
	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	return srcs, rows.Err()
}

// Close implements DocumentProvider.
func (s *IndexStore) Close() error {
	return s.db.Close()
}

func (s *IndexStore) linksOf(id string) ([]string, error) {
	rows, err := s.db.Query(`SELECT dst FROM links WHERE src = ? ORDER BY pos`, id)
	if err != nil {
		return nil, fmt.Errorf("links of %s: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	var links []string
	for rows.Next() {
		var dst string
		if err := rows.Scan(&dst); err != nil {
			return nil, err
		}
		links = append(links, dst)
	}
	return links, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var doc models.Document
	var metaJSON, tagsJSON string
	if err := row.Scan(&doc.ID, &doc.Name, &metaJSON, &tagsJSON); err != nil {
		return models.Document{}, err
	}
	if metaJSON != "" && metaJSON != "null" {
		if err := json.Unmarshal([]byte(metaJSON), &doc.Meta); err != nil {
			return models.Document{}, fmt.Errorf("decode meta of %s: %w", doc.ID, err)
		}
	}
	if tagsJSON != "" && tagsJSON != "null" {
		if err := json.Unmarshal([]byte(tagsJSON), &doc.Tags); err != nil {
			return models.Document{}, fmt.Errorf("decode tags of %s: %w", doc.ID, err)
		}
	}
	return doc, nil
}

// documentChecksum hashes the canonical JSON form of a document so
// Refresh can skip unchanged rows.
func documentChecksum(doc models.Document) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:]), nil
}
