package model

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/mitchellh/mapstructure"
)

// Externally-sourced JSON (remote responses, imported files) is decoded into
// the typed model at the trust boundary and rejected on shape mismatch, never
// carried around as untyped maps.

var indexSuffix = regexp.MustCompile(`\[\d+\]`)

// decodeStrict decodes an untyped JSON value into out, then rejects the
// result when any field outside the optional set had no matching key in the
// input. Optional paths are metadata field paths with slice indexes stripped,
// e.g. "Violations.LectureID".
func decodeStrict(raw any, out any, optional map[string]bool) error {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return err
	}
	for _, path := range md.Unset {
		if !optional[indexSuffix.ReplaceAllString(path, "")] {
			return fmt.Errorf("missing required field %q", path)
		}
	}
	return nil
}

func unmarshalRaw(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return raw, nil
}

// DecodeProblem parses and shape-checks a SchedulingProblem JSON document.
// Semantic validation (uniqueness, references) is ValidateProblem's job.
func DecodeProblem(data []byte) (SchedulingProblem, error) {
	raw, err := unmarshalRaw(data)
	if err != nil {
		return SchedulingProblem{}, err
	}
	var problem SchedulingProblem
	if err := decodeStrict(raw, &problem, nil); err != nil {
		return SchedulingProblem{}, err
	}
	return problem, nil
}

func DecodeSchedule(data []byte) (Schedule, error) {
	raw, err := unmarshalRaw(data)
	if err != nil {
		return Schedule{}, err
	}
	var schedule Schedule
	optional := map[string]bool{"Score": true}
	if err := decodeStrict(raw, &schedule, optional); err != nil {
		return Schedule{}, err
	}
	if errs := ValidateSchedule(schedule); len(errs) > 0 {
		return Schedule{}, fmt.Errorf("malformed schedule: %w", errs[0])
	}
	return schedule, nil
}

func DecodeValidationResult(data []byte) (ValidationResult, error) {
	raw, err := unmarshalRaw(data)
	if err != nil {
		return ValidationResult{}, err
	}
	var result ValidationResult
	optional := map[string]bool{
		"Violations.LectureID":  true,
		"Violations.RoomID":     true,
		"Violations.TimeSlotID": true,
	}
	if err := decodeStrict(raw, &result, optional); err != nil {
		return ValidationResult{}, err
	}
	return result, nil
}

func DecodeGenerateAndValidate(data []byte) (GenerateAndValidateResult, error) {
	raw, err := unmarshalRaw(data)
	if err != nil {
		return GenerateAndValidateResult{}, err
	}
	var result GenerateAndValidateResult
	optional := map[string]bool{
		"Schedule.Score":                   true,
		"Validation.Violations.LectureID":  true,
		"Validation.Violations.RoomID":     true,
		"Validation.Violations.TimeSlotID": true,
	}
	if err := decodeStrict(raw, &result, optional); err != nil {
		return GenerateAndValidateResult{}, err
	}
	if errs := ValidateSchedule(result.Schedule); len(errs) > 0 {
		return GenerateAndValidateResult{}, fmt.Errorf("malformed schedule: %w", errs[0])
	}
	return result, nil
}

// ProblemFromJSON loads a problem from a JSON file, e.g. one exported by the
// builder.
func ProblemFromJSON(file string) (SchedulingProblem, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SchedulingProblem{}, fmt.Errorf("cannot read problem file: %w", err)
	}
	return DecodeProblem(bytes)
}
