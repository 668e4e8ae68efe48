// Package store keeps the parameter catalog: a SQLite database of check
// definitions for teams that curate their baseline interactively instead of
// editing a YAML file. Catalog rows convert into the same specs the engine
// consumes from file baselines.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fwaudit/fwaudit/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one catalog row.
type Entry struct {
	ID           int64    `json:"id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	QueryCommand string   `json:"query_command"`
	Expected     []string `json:"expected_value"`
	Pattern      string   `json:"match_pattern"`
	CaptureGroup int      `json:"match_group,omitempty"`
	Separator    string   `json:"separator,omitempty"`
	ResultType   string   `json:"result_type,omitempty"`
}

// ToSpec converts a catalog entry into the engine's spec form.
func (e Entry) ToSpec() model.ParameterSpec {
	return model.ParameterSpec{
		Name:         e.Name,
		Description:  e.Description,
		QueryCommand: e.QueryCommand,
		Expected:     append([]string(nil), e.Expected...),
		Pattern:      e.Pattern,
		CaptureGroup: e.CaptureGroup,
		Separator:    e.Separator,
		ResultType:   model.ResultType(e.ResultType),
	}
}

// Store manages the SQLite catalog.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the catalog at path and initializes the
// schema. An empty catalog is seeded with the default parameter set.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	s := &Store{db: db, path: path}

	count, err := s.Count()
	if err != nil {
		db.Close()
		return nil, err
	}
	if count == 0 {
		if err := s.Seed(DefaultEntries()); err != nil {
			db.Close()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of catalog entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM parameters").Scan(&n); err != nil {
		return 0, fmt.Errorf("count parameters: %w", err)
	}
	return n, nil
}

// validateEntry rejects entries the engine could never evaluate. The pattern
// must compile the same way the extractor compiles it.
func validateEntry(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("parameter name is required")
	}
	if e.QueryCommand == "" {
		return fmt.Errorf("query command is required")
	}
	if len(e.Expected) == 0 {
		return fmt.Errorf("expected value is required")
	}
	re, err := regexp.Compile("(?im)" + e.Pattern)
	if err != nil {
		return fmt.Errorf("match pattern does not compile: %w", err)
	}
	group := e.CaptureGroup
	if group <= 0 {
		group = 1
	}
	if re.NumSubexp() < group {
		return fmt.Errorf("capture group %d out of range for pattern %q", group, e.Pattern)
	}
	switch e.ResultType {
	case "", string(model.ResultSingle), string(model.ResultList):
	default:
		return fmt.Errorf("result type must be single or list, got %q", e.ResultType)
	}
	return nil
}

func normalizeEntry(e Entry) Entry {
	if e.CaptureGroup <= 0 {
		e.CaptureGroup = 1
	}
	if e.ResultType == "" {
		e.ResultType = string(model.ResultSingle)
	}
	return e
}

// Add inserts a new entry and returns its row ID.
func (s *Store) Add(e Entry) (int64, error) {
	if err := validateEntry(e); err != nil {
		return 0, err
	}
	e = normalizeEntry(e)

	expected, err := json.Marshal(e.Expected)
	if err != nil {
		return 0, fmt.Errorf("encode expected value: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO parameters (name, description, query_command, expected_value, match_pattern, match_group, separator, result_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Description, e.QueryCommand, string(expected), e.Pattern, e.CaptureGroup, e.Separator, e.ResultType)
	if err != nil {
		return 0, fmt.Errorf("add parameter %q: %w", e.Name, err)
	}
	return res.LastInsertId()
}

// Update replaces the entry with the given name.
func (s *Store) Update(name string, e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	e = normalizeEntry(e)

	expected, err := json.Marshal(e.Expected)
	if err != nil {
		return fmt.Errorf("encode expected value: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE parameters
		SET name = ?, description = ?, query_command = ?, expected_value = ?, match_pattern = ?, match_group = ?, separator = ?, result_type = ?, updated_at = CURRENT_TIMESTAMP
		WHERE name = ?`,
		e.Name, e.Description, e.QueryCommand, string(expected), e.Pattern, e.CaptureGroup, e.Separator, e.ResultType, name)
	if err != nil {
		return fmt.Errorf("update parameter %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("parameter %q not found", name)
	}
	return nil
}

// Delete removes the entry with the given name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM parameters WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete parameter %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("parameter %q not found", name)
	}
	return nil
}

// Get returns the entry with the given name.
func (s *Store) Get(name string) (Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, query_command, expected_value, match_pattern, match_group, separator, result_type
		FROM parameters WHERE name = ?`, name)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return Entry{}, fmt.Errorf("parameter %q not found", name)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get parameter %q: %w", name, err)
	}
	return e, nil
}

// List returns every entry in insertion order.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, query_command, expected_value, match_pattern, match_group, separator, result_type
		FROM parameters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list parameters: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parameter: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var expected string
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.QueryCommand, &expected,
		&e.Pattern, &e.CaptureGroup, &e.Separator, &e.ResultType); err != nil {
		return Entry{}, err
	}
	if err := json.Unmarshal([]byte(expected), &e.Expected); err != nil {
		return Entry{}, fmt.Errorf("decode expected value: %w", err)
	}
	return e, nil
}

// Seed inserts entries, skipping any name already present.
func (s *Store) Seed(entries []Entry) error {
	for _, e := range entries {
		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM parameters WHERE name = ?", e.Name).Scan(&exists); err != nil {
			return fmt.Errorf("seed parameter %q: %w", e.Name, err)
		}
		if exists > 0 {
			continue
		}
		if _, err := s.Add(e); err != nil {
			return fmt.Errorf("seed parameter %q: %w", e.Name, err)
		}
	}
	return nil
}

// Reset drops every entry and reinstalls the default set.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM parameters"); err != nil {
		return fmt.Errorf("reset catalog: %w", err)
	}
	return s.Seed(DefaultEntries())
}

// ExportJSON writes the catalog as an indented JSON document.
func (s *Store) ExportJSON(w io.Writer) error {
	entries, err := s.List()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Parameters []Entry `json:"parameters"`
	}{Parameters: entries})
}

// ImportJSON merges entries from a JSON export. Existing names are updated,
// new names are added.
func (s *Store) ImportJSON(r io.Reader) (int, error) {
	var doc struct {
		Parameters []Entry `json:"parameters"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode import: %w", err)
	}

	imported := 0
	for _, e := range doc.Parameters {
		if _, err := s.Get(e.Name); err == nil {
			if err := s.Update(e.Name, e); err != nil {
				return imported, err
			}
		} else {
			if _, err := s.Add(e); err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}

// ToSpecs converts the full catalog into engine specs, preserving catalog
// order.
func (s *Store) ToSpecs() ([]model.ParameterSpec, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	specs := make([]model.ParameterSpec, 0, len(entries))
	for _, e := range entries {
		specs = append(specs, e.ToSpec())
	}
	return specs, nil
}
