// Package store connects to the data store and manages the persisted
// settings and session records
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/tomatick/pomo/internal/apperr"
	"github.com/tomatick/pomo/internal/models"
)

const (
	settingsBucket = "settings"
	sessionBucket  = "session"
	// recordKey addresses the single record held in each bucket. Both
	// records are read and written as a whole unit, never field by field.
	recordKey = "current"
)

var pathToDB string

var errDatabaseLocked = &apperr.Error{
	Message: "is the pomo daemon already running? Only one instance can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) getRecord(bucket string, v any) (bool, error) {
	var found bool

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket)).Get([]byte(recordKey))
		if len(b) == 0 {
			return nil
		}

		found = true

		return json.Unmarshal(b, v)
	})

	return found, err
}

func (c *Client) putRecord(bucket string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(recordKey), value)
	})
}

func (c *Client) GetSettings() (*models.Settings, error) {
	var s models.Settings

	found, err := c.getRecord(settingsBucket, &s)
	if err != nil || !found {
		return nil, err
	}

	return &s, nil
}

func (c *Client) SaveSettings(s *models.Settings) error {
	return c.putRecord(settingsBucket, s)
}

func (c *Client) GetSession() (*models.Session, error) {
	var sess models.Session

	found, err := c.getRecord(sessionBucket, &sess)
	if err != nil || !found {
		return nil, err
	}

	return &sess, nil
}

func (c *Client) SaveSession(sess *models.Session) error {
	return c.putRecord(sessionBucket, sess)
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDatabaseLocked
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(settingsBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
