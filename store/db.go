package store

import (
	"github.com/tomatick/pomo/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// GetSettings returns the persisted settings overrides, or nil if none
	// have been saved yet
	GetSettings() (*models.Settings, error)
	// SaveSettings overwrites the persisted settings record as a whole
	SaveSettings(s *models.Settings) error
	// GetSession returns the persisted timer session, or nil if none has
	// been saved yet
	GetSession() (*models.Session, error)
	// SaveSession overwrites the persisted session record as a whole
	SaveSession(sess *models.Session) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
