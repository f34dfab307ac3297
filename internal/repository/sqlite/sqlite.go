package sqlite

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ResourceRepo = (*SQLiteRepo)(nil)
var _ repository.JobRepo = (*SQLiteRepo)(nil)
var _ repository.AdminRepo = (*SQLiteRepo)(nil)
var _ repository.SchemaRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

// clampPage normalizes the pagination window to the documented defaults.
func clampPage(f *repository.ListFilter) {
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

func activeFlag(includeInactive bool) int {
	if includeInactive {
		return 0
	}
	return 1
}

// searchClause builds the disjunctive case-insensitive substring match over
// the given text columns.
func searchClause(cols []string, term string, args *[]any) string {
	pattern := "%" + strings.ToLower(term) + "%"
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, "lower(coalesce("+c+", '')) LIKE ?")
		*args = append(*args, pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// list columns are stored as JSON arrays in TEXT columns
func marshalList(v []string) string {
	if v == nil {
		return "[]"
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func unmarshalList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}
