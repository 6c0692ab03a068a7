package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreateScheduleSlotInput struct {
	ProgramID   *string `json:"programId"`
	DayOfWeek   string  `json:"dayOfWeek"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Room        *string `json:"room"`
	MaxCapacity *int    `json:"maxCapacity"`
	Published   *bool   `json:"published"`
}

func ValidateCreateScheduleSlot(in CreateScheduleSlotInput) (*entity.ScheduleSlot, error) {
	var errs ValidationErrors
	if !entity.DayOfWeek(in.DayOfWeek).Valid() {
		errs = append(errs, ValidationError{"dayOfWeek", "must be a weekday name (monday..sunday)"})
	}
	if !isValidClockTime(in.StartTime) {
		errs = append(errs, ValidationError{"startTime", "must be HH:MM"})
	}
	if !isValidClockTime(in.EndTime) {
		errs = append(errs, ValidationError{"endTime", "must be HH:MM"})
	}
	if in.MaxCapacity != nil && *in.MaxCapacity < 0 {
		errs = append(errs, ValidationError{"maxCapacity", "must not be negative"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	s := entity.NewScheduleSlot(entity.DayOfWeek(in.DayOfWeek), in.StartTime, in.EndTime)
	s.ProgramID = in.ProgramID
	s.Room = in.Room
	s.MaxCapacity = in.MaxCapacity
	if in.Published != nil {
		s.Published = *in.Published
	}
	return s, nil
}

type UpdateScheduleSlotInput struct {
	ProgramID   *string `json:"programId"`
	DayOfWeek   *string `json:"dayOfWeek"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Room        *string `json:"room"`
	MaxCapacity *int    `json:"maxCapacity"`
	Published   *bool   `json:"published"`
}

func ValidateUpdateScheduleSlot(in UpdateScheduleSlotInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.ProgramID != nil {
		patch["program_id"] = *in.ProgramID
	}
	if in.DayOfWeek != nil {
		if !entity.DayOfWeek(*in.DayOfWeek).Valid() {
			errs = append(errs, ValidationError{"dayOfWeek", "must be a weekday name (monday..sunday)"})
		}
		patch["day_of_week"] = *in.DayOfWeek
	}
	if in.StartTime != nil {
		if !isValidClockTime(*in.StartTime) {
			errs = append(errs, ValidationError{"startTime", "must be HH:MM"})
		}
		patch["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		if !isValidClockTime(*in.EndTime) {
			errs = append(errs, ValidationError{"endTime", "must be HH:MM"})
		}
		patch["end_time"] = *in.EndTime
	}
	if in.Room != nil {
		patch["room"] = *in.Room
	}
	if in.MaxCapacity != nil {
		if *in.MaxCapacity < 0 {
			errs = append(errs, ValidationError{"maxCapacity", "must not be negative"})
		}
		patch["max_capacity"] = *in.MaxCapacity
	}
	if in.Published != nil {
		patch["published"] = *in.Published
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(patch) == 0 {
		return nil, ErrEmptyUpdate
	}
	return patch, nil
}
