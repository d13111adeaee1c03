package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"grana/internal/config"
	"grana/internal/ledger"
	"grana/internal/model"
	"grana/internal/service"
	"grana/internal/storage"
)

const dateLayout = "2006-01-02"

// initStore opens the configured database and brings the schema up to
// date, seeding default categories on first run.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/grana/grana.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openSession builds a loaded session over the configured store. The
// caller closes the returned store.
func openSession(ctx context.Context) (*ledger.Session, service.Store, error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	session := ledger.NewSession(store)
	if err := session.Load(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return session, store, nil
}

func parseKind(s string) (model.Kind, error) {
	switch s {
	case "income":
		return model.KindIncome, nil
	case "expense":
		return model.KindExpense, nil
	default:
		return 0, fmt.Errorf("invalid kind %q (expected income or expense)", s)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// endOfDay pushes a date-granular bound to the last instant of that day so
// the report's inclusive-date contract holds for timestamped rows.
func endOfDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
