// Package replay records and plays back per-frame held-button streams
// The loop is deterministic under a fixed timestep, so replaying the held
// stream reproduces a session frame for frame
package replay

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/hopper/input"
)

var ErrRecordingNotFound = errors.New("recording not found")

// Store persists recordings in SQLite
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the SQLite file at path and migrates the schema
// Empty path uses a private in-memory database
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open replay db: %w", err)
	}

	if path == "" {
		// Each pooled connection to :memory: is a separate database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate replay schema: %w", err)
	}

	if path == "" {
		log.Debug().Msg("Using in-memory replay store")
	} else {
		log.Debug().Str("path", path).Msg("Using replay store")
	}
	return &Store{db: db, log: log}, nil
}

// Save stores frames under name, replacing any previous recording with that name
func (s *Store) Save(name string, frames []input.ButtonSet) error {
	spans := Encode(frames)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteByName(tx, name); err != nil {
			return err
		}

		rec := Recording{Name: name, FrameCount: len(frames)}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		if len(spans) == 0 {
			return nil
		}
		for i := range spans {
			spans[i].RecordingID = rec.ID
		}
		return tx.Create(&spans).Error
	})
	if err != nil {
		return fmt.Errorf("save recording %q: %w", name, err)
	}

	s.log.Info().Str("name", name).Int("frames", len(frames)).Int("spans", len(spans)).Msg("Recording saved")
	return nil
}

// Load returns the held stream recorded under name
func (s *Store) Load(name string) ([]input.ButtonSet, error) {
	var rec Recording
	err := s.db.Preload("Spans", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	}).Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%q: %w", name, ErrRecordingNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load recording %q: %w", name, err)
	}

	frames := Decode(rec.Spans)
	if len(frames) != rec.FrameCount {
		return nil, fmt.Errorf("recording %q: expected %d frames, decoded %d", name, rec.FrameCount, len(frames))
	}
	return frames, nil
}

// List returns recordings without their spans, newest first
func (s *Store) List() ([]Recording, error) {
	var recs []Recording
	if err := s.db.Order("created_at desc, id desc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return recs, nil
}

// Delete removes a recording
func (s *Store) Delete(name string) error {
	var found bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Recording{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		found = count > 0
		return deleteByName(tx, name)
	})
	if err != nil {
		return fmt.Errorf("delete recording %q: %w", name, err)
	}
	if !found {
		return fmt.Errorf("%q: %w", name, ErrRecordingNotFound)
	}
	return nil
}

// Close releases the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func deleteByName(tx *gorm.DB, name string) error {
	var ids []uint
	if err := tx.Model(&Recording{}).Where("name = ?", name).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("recording_id IN ?", ids).Delete(&Span{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&Recording{}).Error
}

// Encode run-length encodes a held stream
func Encode(frames []input.ButtonSet) []Span {
	var spans []Span
	for _, held := range frames {
		if n := len(spans); n > 0 && spans[n-1].Held == uint16(held) {
			spans[n-1].Count++
			continue
		}
		spans = append(spans, Span{Seq: len(spans), Held: uint16(held), Count: 1})
	}
	return spans
}

// Decode expands spans back into a held stream
func Decode(spans []Span) []input.ButtonSet {
	total := 0
	for _, sp := range spans {
		total += sp.Count
	}
	frames := make([]input.ButtonSet, 0, total)
	for _, sp := range spans {
		for i := 0; i < sp.Count; i++ {
			frames = append(frames, input.ButtonSet(sp.Held))
		}
	}
	return frames
}
