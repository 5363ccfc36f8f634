package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiparadigm/schedview/pkg/model"
)

func TestBuildGrid(t *testing.T) {
	t.Run("single occupant has no conflict", func(t *testing.T) {
		// Arrange
		problem := model.SampleProblem()
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t1"},
		}}

		// Act
		grid := BuildGrid(problem, schedule, Filters{})

		// Assert
		cell := grid.Cell("t1", "r1")
		require.Len(t, cell.Entries, 1)
		assert.False(t, cell.HasConflict)
		assert.False(t, cell.IsOverCapacity)
		assert.Equal(t, 30, cell.TotalEnrollment)
		assert.Empty(t, grid.Cell("t2", "r2").Entries)
	})

	t.Run("double booking is a conflict", func(t *testing.T) {
		// Arrange
		problem := model.SampleProblem()
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t1"},
			{LectureID: "l2", RoomID: "r1", TimeSlotID: "t1"},
		}}

		// Act
		grid := BuildGrid(problem, schedule, Filters{})

		// Assert
		cell := grid.Cell("t1", "r1")
		assert.True(t, cell.HasConflict)
		// Occupants keep the schedule order.
		require.Len(t, cell.Entries, 2)
		assert.Equal(t, "l1", cell.Entries[0].Lecture.ID)
		assert.Equal(t, "l2", cell.Entries[1].Lecture.ID)
	})

	t.Run("conflict and over-capacity are reported together", func(t *testing.T) {
		// Arrange: capacity 50 against 30 + 25 enrolled
		problem := model.SampleProblem()
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t1"},
			{LectureID: "l2", RoomID: "r1", TimeSlotID: "t1"},
		}}

		// Act
		cell := BuildGrid(problem, schedule, Filters{}).Cell("t1", "r1")

		// Assert
		assert.Equal(t, 55, cell.TotalEnrollment)
		assert.True(t, cell.HasConflict)
		assert.True(t, cell.IsOverCapacity)
	})

	t.Run("over capacity without conflict needs more than one occupant", func(t *testing.T) {
		// Arrange: one lecture alone overshooting the small room
		problem := model.SampleProblem()
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l1", RoomID: "r2", TimeSlotID: "t1"},
		}}

		// Act
		cell := BuildGrid(problem, schedule, Filters{}).Cell("t1", "r2")

		// Assert
		assert.False(t, cell.HasConflict)
		assert.True(t, cell.IsOverCapacity)
	})

	t.Run("unresolvable assignments are dropped", func(t *testing.T) {
		// Arrange
		problem := model.SampleProblem()
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l9", RoomID: "r1", TimeSlotID: "t1"},
			{LectureID: "l1", RoomID: "r9", TimeSlotID: "t1"},
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t9"},
		}}

		// Act
		grid := BuildGrid(problem, schedule, Filters{})

		// Assert
		for key := range grid.Cells {
			assert.Empty(t, grid.Cells[key].Entries)
		}
	})

	t.Run("day filter restricts the axes and the assignments", func(t *testing.T) {
		// Arrange
		problem := model.SampleProblem()
		schedule := model.SampleSchedule()

		// Act
		grid := BuildGrid(problem, schedule, Filters{Day: "Mon"})

		// Assert: only the Monday slot row remains, and the Tuesday
		// assignment did not leak into any visible cell.
		require.Len(t, grid.TimeSlots, 1)
		assert.Equal(t, "t1", grid.TimeSlots[0].ID)
		assert.Len(t, grid.Rooms, 2)
		assert.Len(t, grid.Cell("t1", "r1").Entries, 1)
		total := 0
		for _, cell := range grid.Cells {
			total += len(cell.Entries)
		}
		assert.Equal(t, 1, total)
	})

	t.Run("room filter", func(t *testing.T) {
		// Act
		grid := BuildGrid(model.SampleProblem(), model.SampleSchedule(), Filters{RoomID: "r2"})

		// Assert
		require.Len(t, grid.Rooms, 1)
		assert.Equal(t, "r2", grid.Rooms[0].ID)
		for _, cell := range grid.Cells {
			assert.Empty(t, cell.Entries)
		}
	})

	t.Run("course filter drops other courses' assignments", func(t *testing.T) {
		// Arrange
		problem := model.SampleProblem()
		problem.Courses = append(problem.Courses, model.Course{ID: "c2", Name: "Course 2"})
		problem.Lectures = append(problem.Lectures, model.Lecture{ID: "l3", CourseID: "c2", Title: "Other", Enrollment: 5})
		schedule := model.Schedule{Assignments: []model.Assignment{
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t1"},
			{LectureID: "l3", RoomID: "r2", TimeSlotID: "t1"},
		}}

		// Act
		grid := BuildGrid(problem, schedule, Filters{CourseID: "c2"})

		// Assert: axes are unfiltered, occupants are
		assert.Len(t, grid.TimeSlots, 2)
		assert.Len(t, grid.Rooms, 2)
		assert.Empty(t, grid.Cell("t1", "r1").Entries)
		assert.Len(t, grid.Cell("t1", "r2").Entries, 1)
	})

	t.Run("empty grid", func(t *testing.T) {
		grid := BuildGrid(model.SampleProblem(), model.SampleSchedule(), Filters{Day: "Sun"})
		assert.True(t, grid.Empty())
	})
}
