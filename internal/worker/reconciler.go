// Package worker runs the scheduled background jobs.
package worker

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Reconciler recomputes categories.product_count from the products table.
// Category writes never touch the counter, so it drifts as products are
// created, moved, and deleted until this job runs.
type Reconciler struct {
	DB *sql.DB
}

// Run performs one reconciliation pass.
func (r *Reconciler) Run(ctx context.Context) error {
	started := time.Now()

	res, err := r.DB.ExecContext(ctx, `
		UPDATE categories c
		SET c.product_count = (
			SELECT COUNT(*) FROM products p WHERE p.category_id = c.id
		)`)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	slog.Info("product counts reconciled",
		"categories_updated", affected,
		"duration", time.Since(started).String(),
	)
	return nil
}

// Start schedules the reconciler on the given cron spec and returns the
// running scheduler so the caller can stop it on shutdown.
func Start(schedule string, db *sql.DB) (*cron.Cron, error) {
	r := &Reconciler{DB: db}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := r.Run(ctx); err != nil {
			slog.Error("product count reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	slog.Info("background worker started", "schedule", schedule)
	return c, nil
}
