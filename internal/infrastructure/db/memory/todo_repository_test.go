package memory

import (
	"context"
	"testing"
	"time"

	"github.com/tasknest/tasknest/internal/core/domain"
)

func seedTodos(t *testing.T, repo *TodoRepository) {
	t.Helper()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, tc := range []struct {
		text  string
		owner string
	}{
		{"oldest", "alice"},
		{"middle", "bob"},
		{"newest", "alice"},
	} {
		todo := &domain.Todo{
			Text:      tc.text,
			OwnerID:   tc.owner,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), todo); err != nil {
			t.Fatalf("create %q: %v", tc.text, err)
		}
	}
}

func TestTodoRepository_ListNewestFirst(t *testing.T) {
	repo := NewTodoRepository()
	seedTodos(t, repo)

	all, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(all))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if all[i].Text != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].Text)
		}
	}
}

func TestTodoRepository_ListFiltersByOwner(t *testing.T) {
	repo := NewTodoRepository()
	seedTodos(t, repo)

	mine, err := repo.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 todos for alice, got %d", len(mine))
	}
	for _, todo := range mine {
		if todo.OwnerID != "alice" {
			t.Fatalf("leaked todo from %s", todo.OwnerID)
		}
	}
}

func TestTodoRepository_DeleteUnknown(t *testing.T) {
	repo := NewTodoRepository()

	if err := repo.Delete(context.Background(), "missing"); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoRepository_UpdateRoundTrip(t *testing.T) {
	repo := NewTodoRepository()

	todo := &domain.Todo{Text: "draft", OwnerID: "alice", CreatedAt: time.Now().UTC()}
	if err := repo.Create(context.Background(), todo); err != nil {
		t.Fatalf("create: %v", err)
	}

	todo.Text = "final"
	todo.Completed = true
	if err := repo.Update(context.Background(), todo); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.FindByID(context.Background(), todo.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Text != "final" || !got.Completed {
		t.Fatalf("update not persisted: %+v", got)
	}
}
