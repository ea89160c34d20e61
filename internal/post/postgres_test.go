package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errPost = errors.New("post error")

func TestPostgresInitSchemaIdempotent(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS posts`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	st := NewPostgresStore(mock)
	if err := st.InitSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := st.InitSchema(context.Background()); err != nil {
		t.Fatalf("second init schema: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresInsert(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Ramp A", 1.0, 2.0, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	st := NewPostgresStore(mock)
	created, err := st.Insert(context.Background(), Post{Name: "Ramp A", CurrentLat: 1.0, CurrentLng: 2.0})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresInsertError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("Ramp A", 1.0, 2.0, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errPost)

	st := NewPostgresStore(mock)
	if _, err := st.Insert(context.Background(), Post{Name: "Ramp A", CurrentLat: 1.0, CurrentLng: 2.0}); err == nil {
		t.Fatalf("expected insert error")
	}
}

func TestPostgresList(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`SELECT id, name, current_lat, current_lng, target_lat, target_lng, created_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "current_lat", "current_lng", "target_lat", "target_lng", "created_at"}).
			AddRow(int64(1), "Ramp A", 1.0, 2.0, nil, nil, createdAt).
			AddRow(int64(2), "Ramp B", 5.0, 6.0, 3.0, 4.0, createdAt))

	st := NewPostgresStore(mock)
	posts, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].TargetLat != nil || posts[0].TargetLng != nil {
		t.Fatalf("expected nil targets on first post")
	}
	if posts[1].TargetLat == nil || *posts[1].TargetLat != 3.0 {
		t.Fatalf("expected target_lat 3.0")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresListQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, current_lat, current_lng, target_lat, target_lng, created_at`).
		WillReturnError(errPost)

	st := NewPostgresStore(mock)
	if _, err := st.List(context.Background()); err == nil {
		t.Fatalf("expected list error")
	}
}

func TestPostgresListScanError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, current_lat, current_lng, target_lat, target_lng, created_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	st := NewPostgresStore(mock)
	if _, err := st.List(context.Background()); err == nil {
		t.Fatalf("expected scan error")
	}
}

func TestPostgresClose(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}

	st := NewPostgresStore(mock)
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
