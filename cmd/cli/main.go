package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/multiparadigm/schedview/internal/config"
	"github.com/multiparadigm/schedview/internal/logging"
	"github.com/multiparadigm/schedview/internal/storage"
	"github.com/multiparadigm/schedview/pkg/client"
	"github.com/multiparadigm/schedview/pkg/model"
	"github.com/multiparadigm/schedview/pkg/view"
)

var (
	validActions = []string{"check", "generate", "validate", "generate-and-validate", "clear"}
	validViews   = []string{"grid", "list"}
)

func main() {
	// Define arguments
	configPtr := flag.String("config", "", "Path to the config file; if empty, config.yaml in the working directory is used when present")
	inputPtr := flag.String("input", "", "Path to a problem JSON file; if empty, the last saved problem is restored, falling back to the built-in sample")
	actionPtr := flag.String("action", "check", "Action to run. Allowed values are: \"check\" (local validation and capacity warnings only), \"generate\", \"validate\" (validate the stored schedule), \"generate-and-validate\" and \"clear\" (drop the saved session), where \"check\" is the default")
	viewPtr := flag.String("view", "grid", "Schedule presentation. Allowed values are: \"grid\" and \"list\", where \"grid\" is the default")
	coursePtr := flag.String("course", "", "Only show assignments of this course id")
	roomPtr := flag.String("room", "", "Only show assignments in this room id")
	dayPtr := flag.String("day", "", "Only show assignments on this day (Mon..Sun)")
	sortPtr := flag.String("sort", "lectureId", "List sort field. Allowed values are: \"lectureId\", \"courseId\", \"roomId\", \"timeSlotId\", \"day\", \"enrollment\", where \"lectureId\" is the default")
	descPtr := flag.Bool("desc", false, "Sort the list in descending order")
	outPtr := flag.String("out", "", "Path to a file where the generated schedule JSON will be written; if empty, nothing is exported")
	flag.Parse()
	action := strings.ToLower(*actionPtr)
	viewName := strings.ToLower(*viewPtr)
	sortField := view.SortField(*sortPtr)

	// Validate arguments
	if !slices.Contains(validActions, action) {
		log.Fatalf("%v is not a valid action", action)
	} else if !slices.Contains(validViews, viewName) {
		log.Fatalf("%v is not a valid view", viewName)
	} else if !slices.Contains(view.SortFields, sortField) {
		log.Fatalf("%v is not a valid sort field", sortField)
	} else if *dayPtr != "" && !slices.Contains(model.Days, *dayPtr) {
		log.Fatalf("%v is not a valid day, expected one of %v", *dayPtr, model.Days)
	}

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("cannot initialize logging: %v", err)
	}
	defer logger.Sync()

	store := storage.NewFileStore(cfg.Store.Dir, logger)
	if action == "clear" {
		store.Clear()
		fmt.Println("Session cleared")
		return
	}

	// Load the problem and run the local checks; structural errors block any
	// submission to the remote service.
	problem := loadProblem(*inputPtr, store)
	if errs := model.ValidateProblem(problem); len(errs) > 0 {
		for _, fieldErr := range errs {
			fmt.Printf("error: %v\n", fieldErr)
		}
		os.Exit(1)
	}
	for _, warning := range model.CapacityWarnings(problem.Lectures, problem.Rooms) {
		fmt.Printf("warning: %v\n", warning)
	}
	store.SaveProblem(problem)

	filters := view.Filters{CourseID: *coursePtr, RoomID: *roomPtr, Day: *dayPtr}
	direction := view.Ascending
	if *descPtr {
		direction = view.Descending
	}

	api := client.New(cfg.Service.BaseURL, logger)
	ctx := context.Background()

	switch action {
	case "check":
		fmt.Println("Problem is valid")

	case "generate":
		schedule, err := api.Generate(ctx, problem)
		if err != nil {
			log.Fatalf("generation failed: %v", err)
		}
		store.SaveSchedule(schedule)
		exportSchedule(*outPtr, schedule)
		render(viewName, problem, schedule, filters, sortField, direction)

	case "validate":
		schedule, ok := store.LoadSchedule()
		if !ok {
			log.Fatal("no stored schedule to validate; run generate first")
		}
		validation, err := api.Validate(ctx, problem, schedule)
		if err != nil {
			log.Fatalf("validation failed: %v", err)
		}
		store.SaveValidation(validation)
		printValidation(validation)

	case "generate-and-validate":
		result, err := api.GenerateAndValidate(ctx, problem)
		if err != nil {
			log.Fatalf("generation failed: %v", err)
		}
		store.SaveSchedule(result.Schedule)
		store.SaveValidation(result.Validation)
		exportSchedule(*outPtr, result.Schedule)
		render(viewName, problem, result.Schedule, filters, sortField, direction)
		printValidation(result.Validation)
	}
}

func exportSchedule(out string, schedule model.Schedule) {
	if out == "" {
		return
	}
	raw, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}
	if err := os.WriteFile(out, raw, 0o666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}

func loadProblem(input string, store storage.Store) model.SchedulingProblem {
	if input != "" {
		problem, err := model.ProblemFromJSON(input)
		if err != nil {
			log.Fatalf("cannot parse problem file: %v", err)
		}
		return problem
	}
	if problem, ok := store.LoadProblem(); ok {
		return problem
	}
	return model.SampleProblem()
}

func render(viewName string, problem model.SchedulingProblem, schedule model.Schedule, filters view.Filters, field view.SortField, direction view.SortDirection) {
	if schedule.Score != nil {
		fmt.Printf("Score: %.2f\n", *schedule.Score)
	}
	if viewName == "list" {
		printList(view.BuildList(problem, schedule, filters, field, direction))
		return
	}
	printGrid(view.BuildGrid(problem, schedule, filters))
}

func printGrid(grid view.Grid) {
	if grid.Empty() {
		fmt.Println("No data matches the current filters.")
		return
	}
	for _, slot := range grid.TimeSlots {
		fmt.Println(view.FormatTimeSlot(slot.Day, slot.Start, slot.End, slot.ID))
		for _, room := range grid.Rooms {
			cell := grid.Cell(slot.ID, room.ID)
			occupants := "empty"
			if len(cell.Entries) > 0 {
				occupants = strings.Join(lo.Map(cell.Entries, func(entry view.CellEntry, _ int) string {
					return view.FormatLectureChip(entry.Lecture.Title, entry.Lecture.ID, entry.Course.ID)
				}), ", ")
			}
			fmt.Printf("  %v: %v%v\n", view.FormatRoomName(room.Name, room.ID), occupants, cellFlags(cell))
		}
	}
}

func cellFlags(cell view.GridCell) string {
	flags := make([]string, 0, 2)
	if cell.HasConflict {
		flags = append(flags, "Conflict")
	}
	if cell.IsOverCapacity {
		flags = append(flags, "Over capacity")
	}
	if len(flags) == 0 {
		return ""
	}
	return fmt.Sprintf("  [%v]", strings.Join(flags, " & "))
}

func printList(rows []view.Row) {
	if len(rows) == 0 {
		fmt.Println("No assignments match the current filters.")
		return
	}
	for _, row := range rows {
		fmt.Printf("%v | %v | %v | %d | %v | %v %v-%v\n",
			orUnknown(row.LectureID), row.Title, orUnknown(row.CourseID),
			row.Enrollment, view.FormatRoomName(row.RoomName, row.RoomID),
			orUnknown(row.Day), row.Start, row.End)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func printValidation(validation model.ValidationResult) {
	if validation.Valid {
		fmt.Println("Schedule is valid")
	} else {
		fmt.Println("Schedule is invalid")
	}
	for _, violation := range validation.Violations {
		refs := make([]string, 0, 3)
		if violation.LectureID != "" {
			refs = append(refs, fmt.Sprintf("lecture=%v", violation.LectureID))
		}
		if violation.RoomID != "" {
			refs = append(refs, fmt.Sprintf("room=%v", violation.RoomID))
		}
		if violation.TimeSlotID != "" {
			refs = append(refs, fmt.Sprintf("timeSlot=%v", violation.TimeSlotID))
		}
		suffix := ""
		if len(refs) > 0 {
			suffix = fmt.Sprintf(" (%v)", strings.Join(refs, ", "))
		}
		fmt.Printf("  %v: %v%v\n", violation.Code, violation.Message, suffix)
	}
}
