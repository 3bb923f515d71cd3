package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/clinicdesk/clinic-portal/internal/core/domain"
)

func newTestRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client), mr
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	want := &domain.Identity{ID: "3", Name: "Emma Williams", Email: "lab@clinic.com", Role: domain.RoleLaboratory}

	if err := repo.Save(ctx, "sid-1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !mr.Exists("session:sid-1") {
		t.Fatalf("expected key session:sid-1")
	}
	if ttl := mr.TTL("session:sid-1"); ttl != 0 {
		t.Fatalf("expected no expiry, got %s", ttl)
	}

	got, err := repo.Load(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || *got != *want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestSessionRepository_LoadUnknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.Load(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("Load = %+v, %v; want nil, nil", got, err)
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	_ = repo.Save(ctx, "sid-1", &domain.Identity{ID: "1", Role: domain.RoleReceptionist})
	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if mr.Exists("session:sid-1") {
		t.Fatalf("expected key to be removed")
	}
	if got, _ := repo.Load(ctx, "sid-1"); got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestSessionRepository_SaveNilDeletes(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	_ = repo.Save(ctx, "sid-1", &domain.Identity{ID: "1", Role: domain.RoleReceptionist})
	if err := repo.Save(ctx, "sid-1", nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	if mr.Exists("session:sid-1") {
		t.Fatalf("expected key to be removed")
	}
}

func TestSessionRepository_LoadCorruptPayload(t *testing.T) {
	repo, mr := newTestRepo(t)
	_ = mr.Set("session:sid-1", "{not json")

	if _, err := repo.Load(context.Background(), "sid-1"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSessionRepository_Count(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	_ = mr.Set("unrelated", "x")

	for _, sid := range []string{"a", "b", "c"} {
		_ = repo.Save(ctx, sid, &domain.Identity{ID: "4", Role: domain.RoleInjection})
	}
	_ = repo.Delete(ctx, "b")

	n, err := repo.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v; want 2, nil", n, err)
	}
}

func TestConnect_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	_ = client.Close()
}

func TestConnect_UsesPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	if _, err := Connect(context.Background(), Config{Addr: mr.Addr()}); err == nil {
		t.Fatalf("expected auth failure without password")
	}
	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "s3cret"})
	if err != nil {
		t.Fatalf("Connect with password: %v", err)
	}
	_ = client.Close()
}
