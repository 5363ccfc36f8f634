package model

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/samber/lo"
)

// Rule tags carried by FieldError, used by callers to surface an error next
// to the offending field.
const (
	RuleMissing           = "missing"
	RuleNonUnique         = "non-unique"
	RuleDanglingReference = "dangling-reference"
	RuleMalformedTime     = "malformed-time"
)

// FieldError is a structural validation failure scoped to a field path such
// as "lectures[2].courseId". It never leaves the local validator.
type FieldError struct {
	Path    string
	Rule    string
	Message string
}

func (err FieldError) Error() string {
	return fmt.Sprintf("%v: %v", err.Path, err.Message)
}

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ValidTime reports whether s is a zero-padded 24-hour "HH:mm" string.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidateProblem decides whether a problem is well-formed enough to submit.
// All violated rules are collected rather than short-circuited, except that a
// row with a basic shape problem skips the remaining checks for that row
// only. An empty result means the problem is valid.
func ValidateProblem(problem SchedulingProblem) []FieldError {
	errs := make([]FieldError, 0)

	//** Non-empty collections
	if len(problem.Courses) == 0 {
		errs = append(errs, FieldError{"courses", RuleMissing, "at least one course is required"})
	}
	if len(problem.Lectures) == 0 {
		errs = append(errs, FieldError{"lectures", RuleMissing, "at least one lecture is required"})
	}
	if len(problem.Rooms) == 0 {
		errs = append(errs, FieldError{"rooms", RuleMissing, "at least one room is required"})
	}
	if len(problem.TimeSlots) == 0 {
		errs = append(errs, FieldError{"timeSlots", RuleMissing, "at least one time slot is required"})
	}

	//** Per-row shape
	for i, course := range problem.Courses {
		if course.ID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("courses[%d].id", i), RuleMissing, "course ID is required"})
			continue
		}
		if course.Name == "" {
			errs = append(errs, FieldError{fmt.Sprintf("courses[%d].name", i), RuleMissing, "course name is required"})
		}
	}

	for i, lecture := range problem.Lectures {
		if lecture.ID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("lectures[%d].id", i), RuleMissing, "lecture ID is required"})
			continue
		}
		if lecture.CourseID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("lectures[%d].courseId", i), RuleMissing, "course ID is required"})
		}
		if lecture.Title == "" {
			errs = append(errs, FieldError{fmt.Sprintf("lectures[%d].title", i), RuleMissing, "lecture title is required"})
		}
		if lecture.Enrollment < 0 {
			errs = append(errs, FieldError{fmt.Sprintf("lectures[%d].enrollment", i), RuleMissing, "enrollment must be non-negative"})
		}
	}

	for i, room := range problem.Rooms {
		if room.ID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("rooms[%d].id", i), RuleMissing, "room ID is required"})
			continue
		}
		if room.Name == "" {
			errs = append(errs, FieldError{fmt.Sprintf("rooms[%d].name", i), RuleMissing, "room name is required"})
		}
		if room.Capacity < 1 {
			errs = append(errs, FieldError{fmt.Sprintf("rooms[%d].capacity", i), RuleMissing, "room capacity must be positive"})
		}
	}

	for i, slot := range problem.TimeSlots {
		if slot.ID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("timeSlots[%d].id", i), RuleMissing, "time slot ID is required"})
			continue
		}
		if !slices.Contains(Days, slot.Day) {
			errs = append(errs, FieldError{fmt.Sprintf("timeSlots[%d].day", i), RuleMissing, fmt.Sprintf("day must be one of %v", Days)})
		}
		malformed := false
		if !ValidTime(slot.Start) {
			errs = append(errs, FieldError{fmt.Sprintf("timeSlots[%d].start", i), RuleMalformedTime, "start time must be in HH:mm format"})
			malformed = true
		}
		if !ValidTime(slot.End) {
			errs = append(errs, FieldError{fmt.Sprintf("timeSlots[%d].end", i), RuleMalformedTime, "end time must be in HH:mm format"})
			malformed = true
		}
		// Lexical comparison is sound only on the fixed-width HH:mm form.
		if !malformed && slot.Start >= slot.End {
			errs = append(errs, FieldError{fmt.Sprintf("timeSlots[%d].end", i), RuleMalformedTime, "start time must be before end time"})
		}
	}

	//** Referential integrity
	courseIDs := lo.SliceToMap(problem.Courses, func(course Course) (string, bool) {
		return course.ID, true
	})
	for i, lecture := range problem.Lectures {
		if lecture.ID == "" || lecture.CourseID == "" {
			continue
		}
		if _, ok := courseIDs[lecture.CourseID]; !ok {
			errs = append(errs, FieldError{
				fmt.Sprintf("lectures[%d].courseId", i),
				RuleDanglingReference,
				fmt.Sprintf("lecture %q references unknown course %q", lecture.ID, lecture.CourseID),
			})
		}
	}

	//** Uniqueness, independently within each entity type
	errs = append(errs, duplicateIDErrors("courses", lo.Map(problem.Courses, func(course Course, _ int) string { return course.ID }))...)
	errs = append(errs, duplicateIDErrors("lectures", lo.Map(problem.Lectures, func(lecture Lecture, _ int) string { return lecture.ID }))...)
	errs = append(errs, duplicateIDErrors("rooms", lo.Map(problem.Rooms, func(room Room, _ int) string { return room.ID }))...)
	errs = append(errs, duplicateIDErrors("timeSlots", lo.Map(problem.TimeSlots, func(slot TimeSlot, _ int) string { return slot.ID }))...)

	return errs
}

// duplicateIDErrors reports each repeated occurrence of an id, skipping empty
// ids already reported as missing by the shape checks.
func duplicateIDErrors(collection string, ids []string) []FieldError {
	errs := make([]FieldError, 0)
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			continue
		}
		if seen[id] {
			errs = append(errs, FieldError{
				fmt.Sprintf("%v[%d].id", collection, i),
				RuleNonUnique,
				fmt.Sprintf("duplicate id %q", id),
			})
		}
		seen[id] = true
	}
	return errs
}

// ValidateSchedule checks the shape of a schedule: every assignment must
// carry all three foreign keys. Resolution against a problem is a separate
// concern, see ValidateAssignment.
func ValidateSchedule(schedule Schedule) []FieldError {
	errs := make([]FieldError, 0)
	for i, assignment := range schedule.Assignments {
		if assignment.LectureID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("assignments[%d].lectureId", i), RuleMissing, "lecture ID is required"})
		}
		if assignment.RoomID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("assignments[%d].roomId", i), RuleMissing, "room ID is required"})
		}
		if assignment.TimeSlotID == "" {
			errs = append(errs, FieldError{fmt.Sprintf("assignments[%d].timeSlotId", i), RuleMissing, "time slot ID is required"})
		}
	}
	return errs
}

// ValidateAssignment reports whether every foreign key of the assignment
// resolves within the problem. Non-resolving assignments are dropped from
// rendering rather than raised as errors.
func ValidateAssignment(assignment Assignment, problem SchedulingProblem) bool {
	_, lectureOk := problem.LectureByID(assignment.LectureID)
	_, roomOk := problem.RoomByID(assignment.RoomID)
	_, slotOk := problem.TimeSlotByID(assignment.TimeSlotID)
	return lectureOk && roomOk && slotOk
}
