package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const foreignKeyViolation = "23503"

type Storage struct {
	db *sqlx.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return New(db), nil
}

// New wraps an already opened pool.
func New(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction that is committed only if fn succeeds.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountUpcomingShows counts the shows of one venue or artist starting after now.
func (s *Storage) CountUpcomingShows(ctx context.Context, kind models.Kind, id int, now time.Time) (int, error) {
	const op = "storage.postgres.CountUpcomingShows"

	column, err := ownerColumn(kind)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT COUNT(*) FROM shows WHERE ` + column + ` = $1 AND start_time > $2`

	var count int
	if err = s.db.QueryRowContext(ctx, query, id, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func ownerColumn(kind models.Kind) (string, error) {
	switch kind {
	case models.KindVenue:
		return "venue_id", nil
	case models.KindArtist:
		return "artist_id", nil
	default:
		return "", fmt.Errorf("unknown kind %d", kind)
	}
}

// upcomingShowsColumn is the select-list form of CountUpcomingShows for the row aliased
// as alias; nowArg is the placeholder carrying the reference time. Callers pass kind
// constants only, so an unknown kind is a programming error.
func upcomingShowsColumn(kind models.Kind, alias, nowArg string) string {
	column, err := ownerColumn(kind)
	if err != nil {
		panic(err)
	}

	return fmt.Sprintf(
		"(SELECT COUNT(*) FROM shows s WHERE s.%s = %s.id AND s.start_time > %s) AS num_upcoming_shows",
		column, alias, nowArg,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere in the value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// mapShowFKError turns a foreign key violation on shows into the matching not-found error.
func mapShowFKError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != foreignKeyViolation {
		return err
	}

	switch pqErr.Constraint {
	case "shows_venue_id_fkey":
		return storage.ErrVenueNotFound
	case "shows_artist_id_fkey":
		return storage.ErrArtistNotFound
	default:
		return err
	}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}

	return err
}

func nonNil(genres []string) []string {
	if genres == nil {
		return []string{}
	}

	return genres
}
