package store_test

import (
	"context"
	"testing"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/store"
)

func TestDefaultConfigSeeded(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cfg := store.NewConfig(db)
	for key, want := range map[string]string{
		queuectl.ConfigMaxRetries:  "3",
		queuectl.ConfigBackoffBase: "2",
		queuectl.ConfigJobTimeout:  "300",
	} {
		got, err := cfg.Get(ctx, key)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("expected %s=%s, got %q", key, want, got)
		}
	}
}

func TestConfigRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cfg := store.NewConfig(db)
	if err := cfg.Set(ctx, "backoff_base", "5"); err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Get(ctx, "backoff_base")
	if err != nil {
		t.Fatal(err)
	}
	if got != "5" {
		t.Fatalf("expected 5, got %q", got)
	}

	value, err := cfg.GetInt(ctx, "backoff_base", 2)
	if err != nil {
		t.Fatal(err)
	}
	if value != 5 {
		t.Fatalf("expected 5, got %d", value)
	}
}

func TestConfigGetIntFallback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	value, err := store.NewConfig(db).GetInt(ctx, "no_such_key", 42)
	if err != nil {
		t.Fatal(err)
	}
	if value != 42 {
		t.Fatalf("expected fallback 42, got %d", value)
	}
}

func TestReinitDoesNotOverwrite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cfg := store.NewConfig(db)
	if err := cfg.Set(ctx, queuectl.ConfigMaxRetries, "9"); err != nil {
		t.Fatal(err)
	}
	if err := store.InitDB(ctx, db); err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Get(ctx, queuectl.ConfigMaxRetries)
	if err != nil {
		t.Fatal(err)
	}
	if got != "9" {
		t.Fatalf("re-initialization must not reset config, got %q", got)
	}
}

func TestConfigAll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cfg := store.NewConfig(db)
	if err := cfg.Set(ctx, "custom", "value"); err != nil {
		t.Fatal(err)
	}
	all, err := cfg.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 config rows, got %d", len(all))
	}
	if all["custom"] != "value" {
		t.Fatalf("expected custom=value, got %q", all["custom"])
	}
}
