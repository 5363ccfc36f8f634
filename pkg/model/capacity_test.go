package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityWarnings(t *testing.T) {
	t.Run("enrollment above every room", func(t *testing.T) {
		// Arrange
		lectures := []Lecture{{ID: "l1", CourseID: "c1", Title: "Big", Enrollment: 60}}
		rooms := []Room{
			{ID: "r1", Name: "Room A", Capacity: 50},
			{ID: "r2", Name: "Room B", Capacity: 20},
		}

		// Act
		warnings := CapacityWarnings(lectures, rooms)

		// Assert
		assert.Equal(t, []string{"Lecture 1 enrollment (60) exceeds maximum room capacity (50)"}, warnings)
	})

	t.Run("positional index is 1-based and in problem order", func(t *testing.T) {
		// Arrange
		lectures := []Lecture{
			{ID: "l1", Enrollment: 10},
			{ID: "l2", Enrollment: 70},
			{ID: "l3", Enrollment: 80},
		}
		rooms := []Room{{ID: "r1", Capacity: 50}}

		// Act
		warnings := CapacityWarnings(lectures, rooms)

		// Assert
		assert.Equal(t, []string{
			"Lecture 2 enrollment (70) exceeds maximum room capacity (50)",
			"Lecture 3 enrollment (80) exceeds maximum room capacity (50)",
		}, warnings)
	})

	t.Run("no rooms means no capacity information", func(t *testing.T) {
		// Arrange
		lectures := []Lecture{{ID: "l1", Enrollment: 1000}}

		// Act
		warnings := CapacityWarnings(lectures, nil)

		// Assert
		assert.Empty(t, warnings)
	})

	t.Run("fitting lectures produce nothing", func(t *testing.T) {
		assert.Empty(t, CapacityWarnings(SampleProblem().Lectures, SampleProblem().Rooms))
	})
}
