package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/multiparadigm/schedview/pkg/model"
)

// FileStore keeps one JSON file per slot under a directory. Stored blobs go
// through the same shape-checking decoders as remote responses, so a
// hand-edited or stale file degrades to an empty slot instead of leaking a
// malformed value into the model.
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot create session store directory", zap.String("dir", dir), zap.Error(err))
	}
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) LoadProblem() (model.SchedulingProblem, bool) {
	return load(s, SlotProblem, model.DecodeProblem)
}

func (s *FileStore) SaveProblem(problem model.SchedulingProblem) {
	s.save(SlotProblem, problem)
}

func (s *FileStore) LoadSchedule() (model.Schedule, bool) {
	return load(s, SlotSchedule, model.DecodeSchedule)
}

func (s *FileStore) SaveSchedule(schedule model.Schedule) {
	s.save(SlotSchedule, schedule)
}

func (s *FileStore) LoadValidation() (model.ValidationResult, bool) {
	return load(s, SlotValidation, model.DecodeValidationResult)
}

func (s *FileStore) SaveValidation(validation model.ValidationResult) {
	s.save(SlotValidation, validation)
}

// Clear removes all three slots.
func (s *FileStore) Clear() {
	for _, slot := range []Slot{SlotProblem, SlotSchedule, SlotValidation} {
		if err := os.Remove(s.path(slot)); err != nil && !os.IsNotExist(err) {
			s.log.Warn("cannot clear session slot", zap.String("slot", string(slot)), zap.Error(err))
		}
	}
}

func (s *FileStore) path(slot Slot) string {
	return filepath.Join(s.dir, fmt.Sprintf("%v.json", slot))
}

func load[T any](s *FileStore, slot Slot, decode func([]byte) (T, error)) (T, bool) {
	var zero T
	raw, err := os.ReadFile(s.path(slot))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cannot read session slot", zap.String("slot", string(slot)), zap.Error(err))
		}
		return zero, false
	}
	value, err := decode(raw)
	if err != nil {
		s.log.Warn("discarding malformed session slot", zap.String("slot", string(slot)), zap.Error(err))
		return zero, false
	}
	return value, true
}

func (s *FileStore) save(slot Slot, value any) {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.log.Warn("cannot encode session slot", zap.String("slot", string(slot)), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(slot), raw, 0o644); err != nil {
		s.log.Warn("cannot write session slot", zap.String("slot", string(slot)), zap.Error(err))
	}
}
