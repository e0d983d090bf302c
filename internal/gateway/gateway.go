// Package gateway is the sole boundary between domain operations and the
// data backend. It exposes one generic typed store per entity table and
// normalizes results and errors into a single shape: reads degrade to
// empty results and never propagate failures, writes fail loudly.
package gateway

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
)

// Store provides the operation family of one entity table.
type Store[E any] struct {
	backend  *backend.Client
	table    string
	validate *validator.Validate

	keyOf func(*E) uint64
	setID func(*E, uint64)

	// prepare runs on every entity before create and upsert writes
	// (slug derivation, content sanitizing). Optional.
	prepare func(*E)
	// prepareChanges runs on the change set before updates, with the
	// stored row for context. Optional.
	prepareChanges func(*E, map[string]any)
}

// Option configures a Store.
type Option[E any] func(*Store[E])

// WithPrepare installs a hook run on entities before create/upsert writes.
func WithPrepare[E any](fn func(*E)) Option[E] {
	return func(s *Store[E]) { s.prepare = fn }
}

// WithPrepareChanges installs a hook run on update change sets together
// with the stored row the changes apply to.
func WithPrepareChanges[E any](fn func(*E, map[string]any)) Option[E] {
	return func(s *Store[E]) { s.prepareChanges = fn }
}

// NewStore creates a typed store for one table. keyOf extracts the
// primary key of an entity; setID writes it back (used by upserts).
func NewStore[E any](
	b *backend.Client,
	table string,
	validate *validator.Validate,
	keyOf func(*E) uint64,
	setID func(*E, uint64),
	opts ...Option[E],
) *Store[E] {
	s := &Store[E]{
		backend:  b,
		table:    table,
		validate: validate,
		keyOf:    keyOf,
		setID:    setID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Table returns the backend table name the store operates on.
func (s *Store[E]) Table() string {
	return s.table
}

// List returns all rows of the table in the requested order. Backend
// failures degrade to an empty collection: read failures must never
// crash a page, so they are logged here and absorbed.
func (s *Store[E]) List(ctx context.Context, orderBy string, ascending bool) []E {
	items := make([]E, 0)

	tx := s.backend.DB.WithContext(ctx)
	if orderBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: orderBy},
			Desc:   !ascending,
		})
	}

	if err := tx.Find(&items).Error; err != nil {
		log.Error().Err(err).Str("table", s.table).Msg("list failed, serving empty collection")

		return make([]E, 0)
	}

	return items
}

// Get returns the row with the given id, or absent. Not-found and backend
// errors are folded into the same absent result; callers cannot tell them
// apart, only the logs can.
func (s *Store[E]) Get(ctx context.Context, id uint64) (*E, bool) {
	var item E

	err := s.backend.DB.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Str("table", s.table).Uint64("id", id).Msg("record not found")

		return nil, false
	}

	if err != nil {
		log.Error().Err(err).Str("table", s.table).Uint64("id", id).Msg("get failed")

		return nil, false
	}

	return &item, true
}

// GetBy returns the first row whose field equals value, or absent, with
// the same error folding as Get.
func (s *Store[E]) GetBy(ctx context.Context, field, value string) (*E, bool) {
	var item E

	err := s.backend.DB.WithContext(ctx).Where(field+" = ?", value).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Str("table", s.table).Str(field, value).Msg("record not found")

		return nil, false
	}

	if err != nil {
		log.Error().Err(err).Str("table", s.table).Str(field, value).Msg("get failed")

		return nil, false
	}

	return &item, true
}

// Create inserts a new row. The backend assigns id and created_at.
// Creation failures must be visible to the editor, so they propagate.
func (s *Store[E]) Create(ctx context.Context, e *E) error {
	if e == nil {
		return ErrNilEntity
	}

	if s.prepare != nil {
		s.prepare(e)
	}

	if err := s.validate.StructCtx(ctx, e); err != nil {
		return errors.Wrapf(err, "validation failed for %s", s.table)
	}

	if err := s.backend.DB.WithContext(ctx).Create(e).Error; err != nil {
		return errors.Wrapf(err, "failed to create %s record", s.table)
	}

	s.publish(ctx, opInsert, s.keyOf(e))

	return nil
}

// Update applies the change set to the row with the given id, stamps
// updated_at, and returns the re-read row. Fails loudly.
func (s *Store[E]) Update(ctx context.Context, id uint64, changes map[string]any) (*E, error) {
	if len(changes) == 0 {
		changes = map[string]any{}
	}

	if s.prepareChanges != nil {
		var existing E

		err := s.backend.DB.WithContext(ctx).First(&existing, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "failed to update %s record %d", s.table, id)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s record", s.table)
		}

		s.prepareChanges(&existing, changes)
	}

	// created_at is assigned once and never mutated.
	delete(changes, "created_at")
	changes["updated_at"] = time.Now()

	var item E

	result := s.backend.DB.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update %s record", s.table)
	}

	if result.RowsAffected == 0 {
		return nil, errors.Wrapf(ErrNotFound, "failed to update %s record %d", s.table, id)
	}

	if err := s.backend.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to read back %s record", s.table)
	}

	s.publish(ctx, opUpdate, id)

	return &item, nil
}

// UpsertBy inserts the entity or replaces the existing row holding the
// same unique field value. Used for key-value style entities where
// create and update are indistinguishable to the caller. Idempotent by
// key: upserting twice leaves exactly one row reflecting the last
// payload. Fails loudly.
func (s *Store[E]) UpsertBy(ctx context.Context, field, value string, e *E) (*E, error) {
	if e == nil {
		return nil, ErrNilEntity
	}

	if s.prepare != nil {
		s.prepare(e)
	}

	if err := s.validate.StructCtx(ctx, e); err != nil {
		return nil, errors.Wrapf(err, "validation failed for %s", s.table)
	}

	tx := s.backend.DB.WithContext(ctx)

	var existing E

	err := tx.Where(field+" = ?", value).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err = tx.Create(e).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to create %s record", s.table)
		}

		s.publish(ctx, opInsert, s.keyOf(e))

		return e, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s record", s.table)
	}

	// Replace the existing row but keep its identity and creation time.
	id := s.keyOf(&existing)
	s.setID(e, id)

	var createdAt time.Time

	if err = tx.Table(s.table).Select("created_at").Where("id = ?", id).Scan(&createdAt).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to read %s creation time", s.table)
	}

	if err = tx.Save(e).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to upsert %s record", s.table)
	}

	if err = tx.Table(s.table).Where("id = ?", id).
		Update("created_at", createdAt).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to restore %s creation time", s.table)
	}

	var item E
	if err = tx.First(&item, id).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to read back %s record", s.table)
	}

	s.publish(ctx, opUpdate, id)

	return &item, nil
}

// Delete removes the row with the given id. Fails loudly, including for
// rows that do not exist.
func (s *Store[E]) Delete(ctx context.Context, id uint64) error {
	var item E

	result := s.backend.DB.WithContext(ctx).Delete(&item, id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete %s record", s.table)
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "failed to delete %s record %d", s.table, id)
	}

	s.publish(ctx, opDelete, id)

	return nil
}
