package post

import (
	"context"
	"database/sql"
	"time"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// SQLiteStore persists posts in the local database file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlDB: sqlDB}
}

func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			current_lat REAL NOT NULL,
			current_lng REAL NOT NULL,
			target_lat REAL,
			target_lng REAL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *SQLiteStore) Insert(ctx context.Context, p Post) (Post, error) {
	res, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO posts (name, current_lat, current_lng, target_lat, target_lng)
		VALUES (?, ?, ?, ?, ?)
	`, p.Name, p.CurrentLat, p.CurrentLng, p.TargetLat, p.TargetLng)
	if err != nil {
		return Post{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Post{}, err
	}
	p.ID = id
	return p, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Post, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, name, current_lat, current_lng, target_lat, target_lng, created_at
		FROM posts
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		var (
			p         Post
			targetLat sql.NullFloat64
			targetLng sql.NullFloat64
			createdAt any
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.CurrentLat, &p.CurrentLng, &targetLat, &targetLng, &createdAt); err != nil {
			return nil, err
		}
		if targetLat.Valid {
			p.TargetLat = &targetLat.Float64
		}
		if targetLng.Valid {
			p.TargetLng = &targetLng.Float64
		}
		p.CreatedAt = parseSQLiteTime(createdAt)
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.sqlDB.Close()
}

// parseSQLiteTime handles CURRENT_TIMESTAMP values, which come back as
// text or as time.Time depending on the driver's declared-type parsing.
func parseSQLiteTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return ts
		}
	case []byte:
		if ts, err := time.Parse(sqliteTimeLayout, string(t)); err == nil {
			return ts
		}
	}
	return time.Time{}
}
