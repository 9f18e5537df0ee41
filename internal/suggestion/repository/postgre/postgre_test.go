package postgre_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"task-suggestion-service/internal/suggestion/repository"
	"task-suggestion-service/internal/suggestion/repository/postgre"
	"task-suggestion-service/pkg/log"
)

var verbCols = []string{"id", "name", "icon", "color", "is_deleted", "created_at", "updated_at"}

func TestFindVerb(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		s := &scenario{
			columns: verbCols,
			rows:    [][]driver.Value{{"v-1", "Workout", "dumbbell", "#ff0000", false, created, created}},
		}
		db, err := openScenario(t.Name(), s)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		defer db.Close()

		r := postgre.New(db, log.NewNop())
		v, err := r.FindVerb(context.Background(), "Workout")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID != "v-1" || v.Icon != "dumbbell" || !v.CreatedAt.Equal(created) {
			t.Errorf("unexpected verb: %+v", v)
		}
		if len(s.lastArgs) != 1 || s.lastArgs[0] != "Workout" {
			t.Errorf("unexpected args: %v", s.lastArgs)
		}
		if !strings.Contains(s.lastQuery, "is_deleted = FALSE") {
			t.Errorf("query must filter deleted verbs: %s", s.lastQuery)
		}
	})

	t.Run("Not found returns zero value", func(t *testing.T) {
		db, _ := openScenario(t.Name(), &scenario{columns: verbCols})
		defer db.Close()

		v, err := postgre.New(db, log.NewNop()).FindVerb(context.Background(), "Nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.IsZero() {
			t.Errorf("expected zero verb, got %+v", v)
		}
	})

	t.Run("Driver error", func(t *testing.T) {
		db, _ := openScenario(t.Name(), &scenario{err: errors.New("connection reset")})
		defer db.Close()

		_, err := postgre.New(db, log.NewNop()).FindVerb(context.Background(), "Workout")
		if !errors.Is(err, repository.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestUpsertVerb(t *testing.T) {
	now := time.Now().UTC()
	s := &scenario{
		columns: verbCols,
		rows:    [][]driver.Value{{"v-9", "Reading", "", "", false, now, now}},
	}
	db, _ := openScenario(t.Name(), s)
	defer db.Close()

	v, err := postgre.New(db, log.NewNop()).UpsertVerb(context.Background(), repository.UpsertVerbOptions{Name: "Reading"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != "v-9" {
		t.Errorf("unexpected verb: %+v", v)
	}
	if !strings.Contains(s.lastQuery, "ON CONFLICT (name)") {
		t.Errorf("expected upsert query, got %s", s.lastQuery)
	}
}

func TestFindUser(t *testing.T) {
	cols := []string{"id", "name", "time_zone"}

	t.Run("Found", func(t *testing.T) {
		db, _ := openScenario(t.Name(), &scenario{
			columns: cols,
			rows:    [][]driver.Value{{"6f1c3e0a-7d5b-4f1e-9a51-2b0d7c9e8f10", "Ada", "America/New_York"}},
		})
		defer db.Close()

		u, err := postgre.New(db, log.NewNop()).FindUser(context.Background(), "6f1c3e0a-7d5b-4f1e-9a51-2b0d7c9e8f10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.TimeZone != "America/New_York" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		db, _ := openScenario(t.Name(), &scenario{columns: cols})
		defer db.Close()

		u, err := postgre.New(db, log.NewNop()).FindUser(context.Background(), "missing")
		if err != nil || !u.IsZero() {
			t.Errorf("expected zero user and no error, got %+v, %v", u, err)
		}
	})
}

func TestMigrate(t *testing.T) {
	s := &scenario{}
	db, _ := openScenario(t.Name(), s)
	defer db.Close()

	if err := postgre.Migrate(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.lastQuery, "CREATE TABLE IF NOT EXISTS verbs") {
		t.Errorf("unexpected migration statement: %s", s.lastQuery)
	}
}

func TestNewRequiresDB(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil db")
		}
	}()
	postgre.New(nil, log.NewNop())
}
