package model

// Days of the week in schedule order, using the short form the wire format
// carries in TimeSlot.Day.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Lecture struct {
	ID         string `json:"id"`
	CourseID   string `json:"courseId"`
	Title      string `json:"title"`
	Enrollment int    `json:"enrollment"`
}

type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// TimeSlot bounds are zero-padded "HH:mm" strings, so lexical comparison on
// Start and End orders identically to the clock times they denote.
type TimeSlot struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SchedulingProblem is the full input configuration to be scheduled. IDs are
// client-generated and unique only within a single problem instance.
type SchedulingProblem struct {
	Courses   []Course   `json:"courses"`
	Lectures  []Lecture  `json:"lectures"`
	Rooms     []Room     `json:"rooms"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Assignment has no identity of its own, only three foreign keys. Duplicate
// assignments are legal input and show up as conflicts, not structural errors.
type Assignment struct {
	LectureID  string `json:"lectureId"`
	RoomID     string `json:"roomId"`
	TimeSlotID string `json:"timeSlotId"`
}

// Schedule is a candidate solution. Score is assigned by the external
// generator and its meaning is left to it; nil when absent.
type Schedule struct {
	Assignments []Assignment `json:"assignments"`
	Score       *float64     `json:"score,omitempty"`
}

// Violation back-references are non-owning and may be absent.
type Violation struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	LectureID  string `json:"lectureId,omitempty"`
	RoomID     string `json:"roomId,omitempty"`
	TimeSlotID string `json:"timeSlotId,omitempty"`
}

// ValidationResult with Valid=true and a non-empty violation list is a legal
// "valid with warnings" state, distinct from Valid=false.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// GenerateAndValidateResult is the combined response of the
// generate-and-validate service operation.
type GenerateAndValidateResult struct {
	Schedule   Schedule         `json:"schedule"`
	Validation ValidationResult `json:"validation"`
}

// ValidateRequest is the request body of the validate service operation.
type ValidateRequest struct {
	Problem  SchedulingProblem `json:"problem"`
	Schedule Schedule          `json:"schedule"`
}

// CourseByID resolves a course id, returning false when it dangles.
func (p SchedulingProblem) CourseByID(id string) (Course, bool) {
	for _, course := range p.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

func (p SchedulingProblem) LectureByID(id string) (Lecture, bool) {
	for _, lecture := range p.Lectures {
		if lecture.ID == id {
			return lecture, true
		}
	}
	return Lecture{}, false
}

func (p SchedulingProblem) RoomByID(id string) (Room, bool) {
	for _, room := range p.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}

func (p SchedulingProblem) TimeSlotByID(id string) (TimeSlot, bool) {
	for _, slot := range p.TimeSlots {
		if slot.ID == id {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
