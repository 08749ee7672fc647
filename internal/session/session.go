// Package session persists which candidates have already been tried
// against a target, so an interrupted run can be resumed without
// re-validating the work it has done.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

var (
	metaIDKey     = []byte("meta:id")
	metaTargetKey = []byte("meta:target")
	triedPrefix   = "tried:"
)

// Journal is a LevelDB store of tried candidates for one target. Keys
// are only ever written for definitively failed candidates, so a resume
// can never skip the real password.
type Journal struct {
	db *leveldb.DB
	id string
}

// TargetID derives the identity a journal is bound to from the target
// path, so a journal dir cannot silently be reused against a different
// artifact.
func TargetID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:])
}

// Open opens (or creates) the journal in dir for the given target id.
func Open(dir, targetID string) (*Journal, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}

	stored, err := db.Get(metaTargetKey, nil)
	switch {
	case err == nil:
		if string(stored) != targetID {
			db.Close()
			return nil, fmt.Errorf("session dir %s belongs to a different target", dir)
		}
	case err == errors.ErrNotFound:
		id := uuid.NewString()
		if err := db.Put(metaIDKey, []byte(id), nil); err != nil {
			db.Close()
			return nil, err
		}
		if err := db.Put(metaTargetKey, []byte(targetID), nil); err != nil {
			db.Close()
			return nil, err
		}
	default:
		db.Close()
		return nil, err
	}

	id, err := db.Get(metaIDKey, nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db, id: string(id)}, nil
}

// ID returns the session identifier.
func (j *Journal) ID() string { return j.id }

// Tried reports whether the candidate was already tried and failed in
// an earlier run.
func (j *Journal) Tried(candidate string) bool {
	_, err := j.db.Get([]byte(triedPrefix+candidate), nil)
	return err == nil
}

// MarkTried records a failed candidate.
func (j *Journal) MarkTried(candidate string) error {
	return j.db.Put([]byte(triedPrefix+candidate), nil, nil)
}

func (j *Journal) Close() error { return j.db.Close() }
