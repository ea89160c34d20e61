package point

import (
	"context"
	"database/sql"
	"time"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// SQLiteStore persists points in the local database file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlDB: sqlDB}
}

func (s *SQLiteStore) InitSchema(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			category TEXT NOT NULL,
			creator_id TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Insert reports only the new id; the stored created_at is left to the
// database and not read back here.
func (s *SQLiteStore) Insert(ctx context.Context, p Point) (Point, error) {
	res, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO points (latitude, longitude, category, creator_id)
		VALUES (?, ?, ?, ?)
	`, p.Latitude, p.Longitude, p.Category, p.CreatorID)
	if err != nil {
		return Point{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Point{}, err
	}
	p.ID = id
	return p, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Point, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, latitude, longitude, category, creator_id, created_at
		FROM points
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []Point{}
	for rows.Next() {
		var (
			p         Point
			createdAt any
		)
		if err := rows.Scan(&p.ID, &p.Latitude, &p.Longitude, &p.Category, &p.CreatorID, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt = parseSQLiteTime(createdAt)
		points = append(points, p)
	}
	return points, rows.Err()
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
