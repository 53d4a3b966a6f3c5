package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"
)

// Config implements queuectl.ConfigStore on the SQL store.
//
// Values are plain strings; typed accessors parse at read time so that
// a config change takes effect on the next operation that consults it.
type Config struct {
	db *bun.DB
}

// NewConfig creates SQL-backed configuration access.
func NewConfig(db *bun.DB) *Config {
	return &Config{
		db: db,
	}
}

// Get returns the stored value, or "" if the key is absent.
func (c *Config) Get(ctx context.Context, key string) (string, error) {
	var model configModel
	err := c.db.NewSelect().
		Model(&model).
		Where("key = ?", key).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return model.Value, nil
}

// GetInt returns the stored value parsed as an integer, or fallback if
// the key is absent.
func (c *Config) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	value, err := c.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return parsed, nil
}

// Set upserts a key/value pair.
func (c *Config) Set(ctx context.Context, key, value string) error {
	model := &configModel{Key: key, Value: value}
	_, err := c.db.NewInsert().
		Model(model).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

// All returns every stored pair.
func (c *Config) All(ctx context.Context) (map[string]string, error) {
	var models []configModel
	err := c.db.NewSelect().
		Model(&models).
		Order("key ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	all := make(map[string]string, len(models))
	for _, model := range models {
		all[model.Key] = model.Value
	}
	return all, nil
}
