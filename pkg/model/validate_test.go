package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProblem(t *testing.T) {
	t.Run("sample problem is valid", func(t *testing.T) {
		// Act
		errs := ValidateProblem(SampleProblem())

		// Assert
		assert.Empty(t, errs)
	})

	t.Run("empty collections are reported together", func(t *testing.T) {
		// Act
		errs := ValidateProblem(SchedulingProblem{})

		// Assert
		assert.Len(t, errs, 4)
		paths := []string{errs[0].Path, errs[1].Path, errs[2].Path, errs[3].Path}
		assert.Equal(t, []string{"courses", "lectures", "rooms", "timeSlots"}, paths)
		for _, err := range errs {
			assert.Equal(t, RuleMissing, err.Rule)
		}
	})

	t.Run("duplicate ids are reported per entity type", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.Rooms = append(problem.Rooms, Room{ID: "r1", Name: "Room C", Capacity: 10})
		problem.TimeSlots = append(problem.TimeSlots, TimeSlot{ID: "t1", Day: "Wed", Start: "12:00", End: "13:00"})

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Len(t, errs, 2)
		assert.Equal(t, "rooms[2].id", errs[0].Path)
		assert.Equal(t, RuleNonUnique, errs[0].Rule)
		assert.Equal(t, "timeSlots[2].id", errs[1].Path)
		assert.Equal(t, RuleNonUnique, errs[1].Rule)
	})

	t.Run("cross-type id collisions are allowed", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.Rooms[0].ID = "c1" // same id as the course

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Empty(t, errs)
	})

	t.Run("dangling course reference", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.Lectures[1].CourseID = "c9"

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Len(t, errs, 1)
		assert.Equal(t, "lectures[1].courseId", errs[0].Path)
		assert.Equal(t, RuleDanglingReference, errs[0].Rule)
	})

	t.Run("time slot must end after it starts", func(t *testing.T) {
		for _, slot := range []TimeSlot{
			{ID: "t9", Day: "Mon", Start: "10:00", End: "10:00"},
			{ID: "t9", Day: "Mon", Start: "11:00", End: "09:30"},
		} {
			// Arrange
			problem := SampleProblem()
			problem.TimeSlots = append(problem.TimeSlots, slot)

			// Act
			errs := ValidateProblem(problem)

			// Assert
			assert.Len(t, errs, 1)
			assert.Equal(t, "timeSlots[2].end", errs[0].Path)
			assert.Equal(t, RuleMalformedTime, errs[0].Rule)
		}
	})

	t.Run("malformed times skip the range check", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.TimeSlots = append(problem.TimeSlots, TimeSlot{ID: "t9", Day: "Mon", Start: "9:00", End: "8:00"})

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Len(t, errs, 2)
		assert.Equal(t, "timeSlots[2].start", errs[0].Path)
		assert.Equal(t, "timeSlots[2].end", errs[1].Path)
		for _, err := range errs {
			assert.Equal(t, RuleMalformedTime, err.Rule)
		}
	})

	t.Run("day outside the enumeration", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.TimeSlots[0].Day = "Monday"

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Len(t, errs, 1)
		assert.Equal(t, "timeSlots[0].day", errs[0].Path)
	})

	t.Run("a missing row id short-circuits only that row", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.Lectures[0] = Lecture{ID: "", CourseID: "", Title: "", Enrollment: -1}

		// Act
		errs := ValidateProblem(problem)

		// Assert: one error for the broken row, nothing from its other fields
		assert.Len(t, errs, 1)
		assert.Equal(t, "lectures[0].id", errs[0].Path)
	})

	t.Run("all violations are collected, not short-circuited", func(t *testing.T) {
		// Arrange
		problem := SampleProblem()
		problem.Lectures[0].CourseID = "c9"
		problem.Rooms[1].Capacity = 0
		problem.Courses = append(problem.Courses, Course{ID: "c1", Name: "Duplicate"})

		// Act
		errs := ValidateProblem(problem)

		// Assert
		assert.Len(t, errs, 3)
	})
}

func TestValidateAssignment(t *testing.T) {
	// Arrange
	problem := SampleProblem()

	// Assert
	assert.True(t, ValidateAssignment(Assignment{LectureID: "l1", RoomID: "r2", TimeSlotID: "t1"}, problem))
	assert.False(t, ValidateAssignment(Assignment{LectureID: "l9", RoomID: "r2", TimeSlotID: "t1"}, problem))
	assert.False(t, ValidateAssignment(Assignment{LectureID: "l1", RoomID: "r9", TimeSlotID: "t1"}, problem))
	assert.False(t, ValidateAssignment(Assignment{LectureID: "l1", RoomID: "r2", TimeSlotID: "t9"}, problem))
}

func TestValidateSchedule(t *testing.T) {
	t.Run("complete assignments pass", func(t *testing.T) {
		assert.Empty(t, ValidateSchedule(SampleSchedule()))
	})

	t.Run("missing foreign keys are reported per field", func(t *testing.T) {
		// Arrange
		schedule := Schedule{Assignments: []Assignment{{LectureID: "l1"}}}

		// Act
		errs := ValidateSchedule(schedule)

		// Assert
		assert.Len(t, errs, 2)
		assert.Equal(t, "assignments[0].roomId", errs[0].Path)
		assert.Equal(t, "assignments[0].timeSlotId", errs[1].Path)
	})
}
