// Package storage persists the current session between runs: the last
// problem, the last schedule, and the last validation result, one logical
// slot each. The store is an injected port so the core never touches an
// ambient location directly.
package storage

import "github.com/multiparadigm/schedview/pkg/model"

// Slot names the three logical blobs the session is made of.
type Slot string

const (
	SlotProblem    Slot = "last-problem"
	SlotSchedule   Slot = "last-schedule"
	SlotValidation Slot = "last-validation"
)

// Store is the session persistence port. Loads report false when nothing
// usable is stored; saves and loads never fail the caller, a broken store
// degrades to "nothing restored".
type Store interface {
	LoadProblem() (model.SchedulingProblem, bool)
	SaveProblem(problem model.SchedulingProblem)
	LoadSchedule() (model.Schedule, bool)
	SaveSchedule(schedule model.Schedule)
	LoadValidation() (model.ValidationResult, bool)
	SaveValidation(validation model.ValidationResult)
	Clear()
}
