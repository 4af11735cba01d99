// README: Integration test for the turn audit log against a real Postgres.
package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/turnlog"
)

// Requires a reachable Postgres; set TRAVELGUIDE_TEST_DSN to enable.
func TestTurnLogRoundTrip(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("TRAVELGUIDE_TEST_DSN"))
	if dsn == "" {
		t.Skip("TRAVELGUIDE_TEST_DSN not set; skipping Postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(db.Close)

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS turn_log (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			message TEXT NOT NULL,
			intent TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			response_type TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`); err != nil {
		t.Fatalf("ensure turn_log table: %v", err)
	}

	userID := "it-" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM turn_log WHERE user_id = $1", userID)
	})

	store := turnlog.NewStore(db)

	records := []turnlog.Record{
		{UserID: userID, Message: "Berlin", Intent: "provide_destination", Confidence: 1.0, ResponseType: "destination_confirmed"},
		{UserID: userID, Message: "500€", Intent: "provide_budget", Confidence: 0.5, ResponseType: "budget_confirmed"},
	}
	for i, r := range records {
		r.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		if err := store.Append(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := store.RecentByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first.
	if got[0].Message != "500€" || got[1].Message != "Berlin" {
		t.Fatalf("unexpected order: %v, %v", got[0].Message, got[1].Message)
	}
	if got[0].Intent != "provide_budget" || got[0].ResponseType != "budget_confirmed" {
		t.Fatalf("record fields not persisted: %+v", got[0])
	}
}
