package post

import (
	"context"
	"database/sql"

	"github.com/thenninge/aware/internal/db"
)

// PostgresStore persists posts in the remote Supabase database.
type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

func (s *PostgresStore) InitSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			current_lat DOUBLE PRECISION NOT NULL,
			current_lng DOUBLE PRECISION NOT NULL,
			target_lat DOUBLE PRECISION,
			target_lng DOUBLE PRECISION,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, p Post) (Post, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO posts (name, current_lat, current_lng, target_lat, target_lng)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, p.Name, p.CurrentLat, p.CurrentLng, p.TargetLat, p.TargetLng)
	if err := row.Scan(&p.ID); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Post, error) {
	rows, err := s.db.Query(ctx, `
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
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.CurrentLat, &p.CurrentLng, &targetLat, &targetLng, &p.CreatedAt); err != nil {
			return nil, err
		}
		if targetLat.Valid {
			p.TargetLat = &targetLat.Float64
		}
		if targetLng.Valid {
			p.TargetLng = &targetLng.Float64
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *PostgresStore) Close() error {
	if c, ok := s.db.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
