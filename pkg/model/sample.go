package model

// SampleProblem seeds the builder with a small known-feasible configuration.
func SampleProblem() SchedulingProblem {
	return SchedulingProblem{
		Courses: []Course{
			{ID: "c1", Name: "Course 1"},
		},
		Lectures: []Lecture{
			{ID: "l1", CourseID: "c1", Title: "Intro", Enrollment: 30},
			{ID: "l2", CourseID: "c1", Title: "Advanced", Enrollment: 25},
		},
		Rooms: []Room{
			{ID: "r1", Name: "Room A", Capacity: 50},
			{ID: "r2", Name: "Room B", Capacity: 20},
		},
		TimeSlots: []TimeSlot{
			{ID: "t1", Day: "Mon", Start: "09:00", End: "10:00"},
			{ID: "t2", Day: "Tue", Start: "10:00", End: "11:00"},
		},
	}
}

// SampleSchedule is a conflict-free solution to SampleProblem.
func SampleSchedule() Schedule {
	score := 0.87
	return Schedule{
		Assignments: []Assignment{
			{LectureID: "l1", RoomID: "r1", TimeSlotID: "t1"},
			{LectureID: "l2", RoomID: "r1", TimeSlotID: "t2"},
		},
		Score: &score,
	}
}
