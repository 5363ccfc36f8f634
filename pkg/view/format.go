package view

import "fmt"

// Display labels shared by the grid and list renderings.

func FormatTimeSlot(day, start, end, id string) string {
	suffix := ""
	if id != "" {
		suffix = fmt.Sprintf(" (%v)", id)
	}
	return fmt.Sprintf("%v %v–%v%v", day, start, end, suffix)
}

func FormatRoomName(name, id string) string {
	if id == "" {
		return name
	}
	return fmt.Sprintf("%v (%v)", name, id)
}

func FormatLectureChip(title, lectureID, courseID string) string {
	return fmt.Sprintf("%v — %v (%v)", lectureID, title, courseID)
}
