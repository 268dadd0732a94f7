package splatpost

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
	"github.com/splatpost/splatpost/bitmap"
	"github.com/splatpost/splatpost/command"
)

// PlanDB caches planned command sequences.
type PlanDB struct {
	db *sql.DB
}

// NewPlanDB opens or creates the plan cache in file.
func NewPlanDB(file string) (*PlanDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS plan (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, commands BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &PlanDB{
		db: db,
	}, nil
}

// Close closes the cache.
func (db *PlanDB) Close() error {
	return db.db.Close()
}

// FindPlan returns the cached commands for key, if any.
func (db *PlanDB) FindPlan(key string) ([]command.Command, bool, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT commands FROM plan WHERE sha1 = ?", key).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, false, nil
	case nil:
		s, _, err := command.Parse(b)
		if err != nil {
			return nil, false, err
		}
		cmds, err := command.Decode(s)
		if err != nil {
			return nil, false, err
		}
		return cmds, true, nil
	default:
		return nil, false, err
	}
}

// AddPlan stores cmds under key, replacing any existing entry.
func (db *PlanDB) AddPlan(key string, cmds []command.Command) error {
	s, err := command.Encode(cmds)
	if err != nil {
		return err
	}
	if _, err := db.db.Exec("INSERT OR REPLACE INTO plan (sha1, commands) VALUES (?, ?)", key, s.Bytes()); err != nil {
		return err
	}
	return nil
}

// CachingPlanner consults a PlanDB before asking the wrapped Planner.
type CachingPlanner struct {
	Planner
	db     *PlanDB
	logger *log.Logger
}

// NewCachingPlanner wraps p with the cache db.
func NewCachingPlanner(p Planner, db *PlanDB, logger *log.Logger) *CachingPlanner {
	return &CachingPlanner{
		Planner: p,
		db:      db,
		logger:  logger,
	}
}

// Plan returns the cached plan for b if there is one, otherwise it plans b
// and caches the result.
func (c *CachingPlanner) Plan(b *bitmap.Bitmap, invert bool) ([]command.Command, error) {
	key, err := planKey(b, invert)
	if err != nil {
		return nil, err
	}

	cmds, ok, err := c.db.FindPlan(key)
	if err != nil {
		return nil, err
	}
	if ok {
		c.logger.Printf("Using cached plan \"%s\"\n", key)
		return cmds, nil
	}

	if cmds, err = c.Planner.Plan(b, invert); err != nil {
		return nil, err
	}

	// Plans too long to encode are never sent, so don't bother keeping them
	if err := c.db.AddPlan(key, cmds); err != nil && err != command.ErrTooLong {
		return nil, err
	}

	return cmds, nil
}
