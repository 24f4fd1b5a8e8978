package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/consent-keeper/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_entries"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresKV stores entries in the kv_entries table. Expired rows are
// invisible to reads and removed by PurgeExpired.
type PostgresKV struct {
	db      *DB
	builder sq.StatementBuilderType
	retry   retryPolicy
	now     func() time.Time
	logger  *logger.Logger
}

// NewPostgresKV creates a [KeyValueStore] on top of an open connection.
func NewPostgresKV(db *DB, logger *logger.Logger) *PostgresKV {
	logger.Debug().Msg("creating postgres key-value store")
	return &PostgresKV{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retry:   defaultRetryPolicy,
		now:     time.Now,
		logger:  logger,
	}
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": p.now()}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = withRetry(ctx, p.retry, p.db.errorClassificator, func() error {
		return p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*PostgresKV.Get").Str("code", postgresError(err)).Msg("error reading entry")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	return value, nil
}

func (p *PostgresKV) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	now := p.now()
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: now.Add(ttl), Valid: true}
	}

	query, args, err := p.builder.
		Insert(kvTable).
		Columns("key", "value", "expires_at", "updated_at").
		Values(key, value, expiresAt, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	err = withRetry(ctx, p.retry, p.db.errorClassificator, func() error {
		_, execErr := p.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*PostgresKV.Put").Str("code", postgresError(err)).Msg("error writing entry")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (p *PostgresKV) List(ctx context.Context, opts ListOptions) (ListPage, error) {
	log := logger.FromContext(ctx)
	limit := opts.limit()

	qb := p.builder.
		Select("key").
		From(kvTable).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": p.now()}})
	if opts.Prefix != "" {
		qb = qb.Where(sq.Like{"key": likeEscaper.Replace(opts.Prefix) + "%"})
	}
	if opts.Cursor != "" {
		qb = qb.Where(sq.Gt{"key": opts.Cursor})
	}

	query, args, err := qb.OrderBy("key").Limit(uint64(limit + 1)).ToSql()
	if err != nil {
		return ListPage{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var keys []string
	err = withRetry(ctx, p.retry, p.db.errorClassificator, func() error {
		keys = keys[:0]
		rows, queryErr := p.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			var k string
			if scanErr := rows.Scan(&k); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			keys = append(keys, k)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*PostgresKV.List").Str("prefix", opts.Prefix).Msg("error listing entries")
		return ListPage{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	if len(keys) <= limit {
		return ListPage{Keys: keys, Complete: true}, nil
	}

	keys = keys[:limit]
	return ListPage{Keys: keys, Cursor: keys[len(keys)-1]}, nil
}

// PurgeExpired deletes rows whose expiry has passed.
func (p *PostgresKV) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := p.builder.
		Delete(kvTable).
		Where(sq.LtOrEq{"expires_at": p.now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrBuildingSQLQuery, err)
	}

	var purged int64
	err = withRetry(ctx, p.retry, p.db.errorClassificator, func() error {
		res, execErr := p.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		purged, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		p.logger.Err(err).Str("func", "*PostgresKV.PurgeExpired").Msg("error purging expired entries")
		return 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return purged, nil
}
