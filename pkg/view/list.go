package view

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/multiparadigm/schedview/pkg/model"
)

type SortField string

const (
	SortLectureID  SortField = "lectureId"
	SortCourseID   SortField = "courseId"
	SortRoomID     SortField = "roomId"
	SortTimeSlotID SortField = "timeSlotId"
	SortDay        SortField = "day"
	SortEnrollment SortField = "enrollment"
)

// SortFields lists the accepted -sort values.
var SortFields = []SortField{SortLectureID, SortCourseID, SortRoomID, SortTimeSlotID, SortDay, SortEnrollment}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Row is one denormalized assignment. Dangling references leave the id and
// sort-relevant fields empty and the display names "Unknown"; a row is never
// dropped for them, unlike in the grid.
type Row struct {
	Assignment   model.Assignment
	LectureID    string
	Title        string
	CourseID     string
	CourseName   string
	Enrollment   int
	RoomID       string
	RoomName     string
	RoomCapacity int
	TimeSlotID   string
	Day          string
	Start        string
	End          string
	OverCapacity bool
}

const unknownLabel = "Unknown"

// BuildList produces the row-per-assignment table view: denormalize, filter,
// then sort. The sort is stable, so rows with equal keys keep their original
// schedule order. String fields collate locale-aware; enrollment compares
// numerically; missing values rank as empty string or zero.
func BuildList(problem model.SchedulingProblem, schedule model.Schedule, filters Filters, field SortField, direction SortDirection) []Row {
	rows := lo.Map(schedule.Assignments, func(assignment model.Assignment, _ int) Row {
		return buildRow(problem, assignment)
	})

	rows = lo.Filter(rows, func(row Row, _ int) bool {
		if filters.CourseID != "" && row.CourseID != filters.CourseID {
			return false
		}
		if filters.RoomID != "" && row.RoomID != filters.RoomID {
			return false
		}
		if filters.Day != "" && row.Day != filters.Day {
			return false
		}
		return true
	})

	collator := collate.New(language.English)
	slices.SortStableFunc(rows, func(a, b Row) int {
		cmp := compareRows(collator, a, b, field)
		if direction == Descending {
			cmp = -cmp
		}
		return cmp
	})
	return rows
}

func buildRow(problem model.SchedulingProblem, assignment model.Assignment) Row {
	row := Row{
		Assignment: assignment,
		Title:      unknownLabel,
		CourseName: unknownLabel,
		RoomName:   unknownLabel,
	}
	lecture, lectureOk := problem.LectureByID(assignment.LectureID)
	if lectureOk {
		row.LectureID = lecture.ID
		row.Title = lecture.Title
		row.Enrollment = lecture.Enrollment
		if course, ok := problem.CourseByID(lecture.CourseID); ok {
			row.CourseID = course.ID
			row.CourseName = course.Name
		}
	}
	if room, ok := problem.RoomByID(assignment.RoomID); ok {
		row.RoomID = room.ID
		row.RoomName = room.Name
		row.RoomCapacity = room.Capacity
	}
	if slot, ok := problem.TimeSlotByID(assignment.TimeSlotID); ok {
		row.TimeSlotID = slot.ID
		row.Day = slot.Day
		row.Start = slot.Start
		row.End = slot.End
	}
	row.OverCapacity = lectureOk && row.RoomCapacity > 0 && row.Enrollment > row.RoomCapacity
	return row
}

func compareRows(collator *collate.Collator, a, b Row, field SortField) int {
	switch field {
	case SortEnrollment:
		return a.Enrollment - b.Enrollment
	case SortCourseID:
		return collator.CompareString(a.CourseID, b.CourseID)
	case SortRoomID:
		return collator.CompareString(a.RoomID, b.RoomID)
	case SortTimeSlotID:
		return collator.CompareString(a.TimeSlotID, b.TimeSlotID)
	case SortDay:
		return collator.CompareString(a.Day, b.Day)
	default:
		return collator.CompareString(a.LectureID, b.LectureID)
	}
}
