// Package view projects schedules into display-ready structures: a
// (time slot x room) grid with conflict detection and a sortable, filterable
// assignment list. Everything here is a pure function of its inputs and is
// recomputed on every relevant state change.
package view

import (
	"github.com/samber/lo"

	"github.com/multiparadigm/schedview/pkg/model"
)

// Filters restrict the visible schedule. An empty field passes everything.
type Filters struct {
	CourseID string
	RoomID   string
	Day      string
}

// CellKey addresses one grid cell.
type CellKey struct {
	TimeSlotID string
	RoomID     string
}

// CellEntry is one occupant of a cell, denormalized for display. Entries
// keep the original schedule order within their cell.
type CellEntry struct {
	Assignment model.Assignment
	Lecture    model.Lecture
	Course     model.Course
}

// GridCell carries the occupants of one (time slot, room) pair. HasConflict
// and IsOverCapacity are independent conditions and can both hold at once.
type GridCell struct {
	Entries         []CellEntry
	HasConflict     bool
	TotalEnrollment int
	IsOverCapacity  bool
}

// Grid is the two-dimensional schedule view. TimeSlots and Rooms are the
// filtered axes in problem order; Cells holds one entry per axis pair.
type Grid struct {
	TimeSlots []model.TimeSlot
	Rooms     []model.Room
	Cells     map[CellKey]GridCell
}

// Cell returns the cell for a (time slot, room) pair, zero-valued when the
// pair is outside the grid axes.
func (g Grid) Cell(timeSlotID, roomID string) GridCell {
	return g.Cells[CellKey{TimeSlotID: timeSlotID, RoomID: roomID}]
}

// Empty reports whether the filters left no rows or no columns.
func (g Grid) Empty() bool {
	return len(g.TimeSlots) == 0 || len(g.Rooms) == 0
}

// BuildGrid projects a flat schedule onto the (time slot x room) matrix.
// Assignments whose references do not all resolve are skipped. The day and
// room filters are applied twice on purpose: once to choose the grid axes
// and once per assignment, because an assignment can reference a time slot
// or room that the axes excluded and must not leak into a visible cell.
func BuildGrid(problem model.SchedulingProblem, schedule model.Schedule, filters Filters) Grid {
	timeSlots := lo.Filter(problem.TimeSlots, func(slot model.TimeSlot, _ int) bool {
		return filters.Day == "" || slot.Day == filters.Day
	})
	rooms := lo.Filter(problem.Rooms, func(room model.Room, _ int) bool {
		return filters.RoomID == "" || room.ID == filters.RoomID
	})

	cells := make(map[CellKey]GridCell, len(timeSlots)*len(rooms))
	for _, slot := range timeSlots {
		for _, room := range rooms {
			cells[CellKey{TimeSlotID: slot.ID, RoomID: room.ID}] = GridCell{Entries: make([]CellEntry, 0)}
		}
	}

	for _, assignment := range schedule.Assignments {
		if !model.ValidateAssignment(assignment, problem) {
			continue
		}
		lecture, _ := problem.LectureByID(assignment.LectureID)
		course, ok := problem.CourseByID(lecture.CourseID)
		if !ok {
			continue
		}
		room, _ := problem.RoomByID(assignment.RoomID)
		timeSlot, _ := problem.TimeSlotByID(assignment.TimeSlotID)

		if filters.CourseID != "" && course.ID != filters.CourseID {
			continue
		}
		if filters.Day != "" && timeSlot.Day != filters.Day {
			continue
		}
		if filters.RoomID != "" && room.ID != filters.RoomID {
			continue
		}

		key := CellKey{TimeSlotID: assignment.TimeSlotID, RoomID: assignment.RoomID}
		cell, ok := cells[key]
		if !ok {
			continue
		}
		cell.Entries = append(cell.Entries, CellEntry{
			Assignment: assignment,
			Lecture:    lecture,
			Course:     course,
		})
		cells[key] = cell
	}

	for _, room := range rooms {
		for _, slot := range timeSlots {
			key := CellKey{TimeSlotID: slot.ID, RoomID: room.ID}
			cell := cells[key]
			cell.HasConflict = len(cell.Entries) > 1
			cell.TotalEnrollment = lo.SumBy(cell.Entries, func(entry CellEntry) int {
				return entry.Lecture.Enrollment
			})
			cell.IsOverCapacity = cell.TotalEnrollment > room.Capacity
			cells[key] = cell
		}
	}

	return Grid{TimeSlots: timeSlots, Rooms: rooms, Cells: cells}
}
