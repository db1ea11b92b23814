package web

import (
	"ai-roi/domain/aitools"
	"sync"

	"github.com/google/uuid"
)

// session retains the last uploaded survey so configuration edits can be
// priced again without a new upload. Last write wins.
type session struct {
	mu        sync.Mutex
	engine    *aitools.Engine
	cfg       aitools.Config
	datasetID string
	filename  string
	rows      [][]string
	summary   *aitools.Summary
}

// snapshot is an immutable view handed to handlers.
type snapshot struct {
	DatasetID string          `json:"dataset_id"`
	Filename  string          `json:"filename"`
	Summary   *aitools.Report `json:"summary"`
	Meta      *aitools.Meta   `json:"meta"`
}

func newSession(engine *aitools.Engine, cfg aitools.Config) *session {
	return &session{engine: engine, cfg: cfg.Clone()}
}

// load summarizes rows with the current config. Non-empty rows replace the
// retained dataset even when summarizing fails; the summary is then nil.
func (s *session) load(filename string, rows [][]string) (snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum, err := s.engine.Summarize(rows, s.cfg)
	if len(rows) > 0 {
		s.datasetID = uuid.NewString()
		s.filename = filename
		s.rows = rows
		s.summary = sum
	}
	if err != nil {
		return snapshot{}, err
	}
	return s.snapshotLocked(), nil
}

// updateConfig validates and stores cfg, then recomputes the summary when a
// dataset is loaded. The returned bool reports whether a recompute happened.
func (s *session) updateConfig(cfg aitools.Config) (snapshot, bool, error) {
	if err := cfg.Validate(); err != nil {
		return snapshot{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg.Clone()
	if len(s.rows) == 0 {
		return snapshot{}, false, nil
	}
	sum, err := s.engine.Summarize(s.rows, s.cfg)
	s.summary = sum
	if err != nil {
		return snapshot{}, false, err
	}
	return s.snapshotLocked(), true, nil
}

func (s *session) config() aitools.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

func (s *session) current() (snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return snapshot{}, false
	}
	return s.snapshotLocked(), true
}

func (s *session) snapshotLocked() snapshot {
	return snapshot{
		DatasetID: s.datasetID,
		Filename:  s.filename,
		Summary:   &s.summary.Report,
		Meta:      &s.summary.Meta,
	}
}
