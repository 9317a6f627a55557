package replay

import "time"

// Recording is a named held-button stream
type Recording struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	FrameCount int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	Spans      []Span    `gorm:"foreignKey:RecordingID"`
}

// Span is a run of identical held sets, run-length encoding the stream
type Span struct {
	RecordingID uint   `gorm:"primaryKey;autoIncrement:false"`
	Seq         int    `gorm:"primaryKey;autoIncrement:false"`
	Held        uint16 `gorm:"not null"`
	Count       int    `gorm:"not null"`
}

// models lists every table for migration
var models = []any{&Recording{}, &Span{}}
