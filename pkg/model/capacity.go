package model

import (
	"fmt"

	"github.com/samber/lo"
)

// CapacityWarnings cross-checks lecture enrollments against the largest room.
// Warnings are advisory strings, never errors: they do not block submission
// and are recomputed from scratch on every change to lectures or rooms. With
// zero rooms there is no capacity information and no warnings are produced.
func CapacityWarnings(lectures []Lecture, rooms []Room) []string {
	warnings := make([]string, 0)
	if len(rooms) == 0 {
		return warnings
	}

	maxRoomCapacity := lo.MaxBy(rooms, func(a Room, b Room) bool {
		return a.Capacity > b.Capacity
	}).Capacity

	for i, lecture := range lectures {
		if lecture.Enrollment > maxRoomCapacity {
			warnings = append(warnings, fmt.Sprintf(
				"Lecture %d enrollment (%d) exceeds maximum room capacity (%d)",
				i+1, lecture.Enrollment, maxRoomCapacity,
			))
		}
	}
	return warnings
}
