package repository

import (
	"context"
	"testing"
)

func TestUserRepository_AllEmpty(t *testing.T) {
	repo := NewUserRepository(newMemStore())

	dir, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(dir) != 0 {
		t.Errorf("expected empty directory, got %v", dir)
	}
}

func TestUserRepository_PutAndLookup(t *testing.T) {
	store := newMemStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	if err := repo.Put(ctx, "bob", "pw1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if store.data["users"] != `{"bob":"pw1"}` {
		t.Errorf("unexpected persisted users blob: %s", store.data["users"])
	}

	exists, err := repo.Exists(ctx, "bob")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected bob to exist")
	}

	pw, ok, err := repo.Password(ctx, "bob")
	if err != nil {
		t.Fatalf("Password failed: %v", err)
	}
	if !ok || pw != "pw1" {
		t.Errorf("Password = (%q, %v); want (\"pw1\", true)", pw, ok)
	}

	_, ok, err = repo.Password(ctx, "alice")
	if err != nil {
		t.Fatalf("Password failed: %v", err)
	}
	if ok {
		t.Error("expected alice to be missing")
	}
}

func TestUserRepository_PutPreservesOtherEntries(t *testing.T) {
	repo := NewUserRepository(newMemStore())
	ctx := context.Background()

	if err := repo.Put(ctx, "bob", "pw1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Put(ctx, "alice", "pw2"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Put(ctx, "bob", "pw3"); err != nil {
		t.Fatalf("Put (overwrite) failed: %v", err)
	}

	dir, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(dir) != 2 || dir["bob"] != "pw3" || dir["alice"] != "pw2" {
		t.Errorf("unexpected directory: %v", dir)
	}
}
