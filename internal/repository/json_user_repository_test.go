package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tempdev/site/internal/model"
)

func newTestUserRepo(t *testing.T) *JSONUserRepository {
	t.Helper()
	repo, err := NewJSONUserRepository(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("NewJSONUserRepository: %v", err)
	}
	return repo
}

func TestJSONUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	u := &model.User{ID: "u1", Name: "Ada", Email: "Ada@Example.com", PasswordHash: "1:aa:bb", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != "u1" {
		t.Errorf("expected u1, got %q", found.ID)
	}
	if found.PasswordHash != "1:aa:bb" {
		t.Errorf("expected hash to be stored, got %q", found.PasswordHash)
	}
}

func TestJSONUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestJSONUserRepository_Create_DuplicateEmailIgnoresCase(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()
	_ = repo.Create(ctx, &model.User{ID: "u1", Email: "ada@example.com"})

	err := repo.Create(ctx, &model.User{ID: "u2", Email: "ADA@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestFileDB_Ping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	db, err := OpenFileDB(dir)
	if err != nil {
		t.Fatalf("OpenFileDB: %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("expected ping to succeed, got %v", err)
	}
	if got := db.Path("contacts.json"); got != filepath.Join(dir, "contacts.json") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestFileDB_Ping_MissingDir(t *testing.T) {
	db := &FileDB{dir: filepath.Join(t.TempDir(), "gone")}
	if err := db.Ping(context.Background()); err == nil {
		t.Error("expected ping to fail for missing directory")
	}
}
