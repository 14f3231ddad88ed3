package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
)

type transactor struct {
	db         *DB
	maxRetries uint64
	baseDelay  time.Duration
}

// NewTransactor returns a [Transactor] running SERIALIZABLE transactions on
// db. Conflicts classified as retryable re-run the whole transaction with
// exponential backoff, at most cfg.TxMaxRetries times.
func NewTransactor(db *DB, cfg config.Services) Transactor {
	baseDelay := cfg.TxRetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = 10 * time.Millisecond
	}
	return &transactor{
		db:         db,
		maxRetries: cfg.TxMaxRetries,
		baseDelay:  baseDelay,
	}
}

func (t *transactor) InTx(ctx context.Context, fn func(ctx context.Context, tx RelationTx) error) error {
	log := logger.FromContext(ctx)

	backoff := retry.NewExponential(t.baseDelay)
	backoff = retry.WithJitterPercent(20, backoff)
	backoff = retry.WithMaxRetries(t.maxRetries, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := t.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if t.db.errorClassificator != nil && t.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "*transactor.InTx").
				Int("attempt", attempt).
				Msg("transaction conflict, retrying")
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrRetryable, err))
		}

		return err
	})
}

func (t *transactor) runOnce(ctx context.Context, fn func(ctx context.Context, tx RelationTx) error) error {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &relationTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
