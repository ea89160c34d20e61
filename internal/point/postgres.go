package point

import (
	"context"

	"github.com/thenninge/aware/internal/db"
)

// PostgresStore persists points in the remote Supabase database.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

func (s *PostgresStore) InitSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS points (
			id SERIAL PRIMARY KEY,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			category VARCHAR(100) NOT NULL,
			creator_id VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, p Point) (Point, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO points (latitude, longitude, category, creator_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, p.Latitude, p.Longitude, p.Category, p.CreatorID)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return Point{}, err
	}
	return p, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Point, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, latitude, longitude, category, creator_id, created_at
		FROM points
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []Point{}
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.ID, &p.Latitude, &p.Longitude, &p.Category, &p.CreatorID, &p.CreatedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *PostgresStore) Close() error {
	if c, ok := s.db.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
