package task

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

// Keys accepted by UpdateTask.
const (
	keyAssignee = "assigneeUserId"
	keyState    = "targetStateId"
	keyDueAt    = "dueAt"
	keyNotes    = "notes"
)

var patchKeys = []string{keyAssignee, keyState, keyDueAt, keyNotes}

// parsePatch converts a raw JSON object into update params. Absent keys keep
// their value and an explicit null clears the column.
func parsePatch(raw map[string]json.RawMessage) (domain.TaskUpdateParams, error) {
	var params domain.TaskUpdateParams

	if len(raw) == 0 {
		return params, domain.NewValidationError("input", "at least one field must be provided")
	}

	var unknown []string
	for key := range raw {
		if !slices.Contains(patchKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		errs := make([]domain.FieldError, 0, len(unknown))
		for _, key := range unknown {
			errs = append(errs, domain.FieldError{Field: key, Message: "field is not allowed"})
		}
		return params, domain.NewValidationErrors(errs)
	}

	var errs []domain.FieldError

	if v, ok := raw[keyAssignee]; ok {
		id, err := optionalID(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: keyAssignee, Message: err.Error()})
		}
		params.AssigneeUserID = id
	}
	if v, ok := raw[keyState]; ok {
		id, err := optionalID(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: keyState, Message: err.Error()})
		}
		params.TargetStateID = id
	}
	if v, ok := raw[keyDueAt]; ok {
		due, err := optionalTime(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: keyDueAt, Message: err.Error()})
		}
		params.DueAt = due
	}
	if v, ok := raw[keyNotes]; ok {
		notes, err := optionalNotes(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: keyNotes, Message: err.Error()})
		}
		params.Notes = notes
	}

	if len(errs) > 0 {
		return domain.TaskUpdateParams{}, domain.NewValidationErrors(errs)
	}
	return params, nil
}

type patchError string

func (e patchError) Error() string { return string(e) }

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func optionalID(v json.RawMessage) (domain.Optional[int64], error) {
	if isNull(v) {
		return domain.Null[int64](), nil
	}
	var id int64
	if err := json.Unmarshal(v, &id); err != nil {
		return domain.Optional[int64]{}, patchError("must be an integer or null")
	}
	if id <= 0 {
		return domain.Optional[int64]{}, patchError("must be a positive id")
	}
	return domain.Some(id), nil
}

func optionalTime(v json.RawMessage) (domain.Optional[time.Time], error) {
	if isNull(v) {
		return domain.Null[time.Time](), nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return domain.Optional[time.Time]{}, patchError("must be a date string or null")
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Some(t), nil
		}
	}
	return domain.Optional[time.Time]{}, patchError("must be an RFC 3339 timestamp or YYYY-MM-DD")
}

func optionalNotes(v json.RawMessage) (domain.Optional[string], error) {
	if isNull(v) {
		return domain.Null[string](), nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return domain.Optional[string]{}, patchError("must be a string or null")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Null[string](), nil
	}
	if len([]rune(s)) > maxNotesLength {
		return domain.Optional[string]{}, patchError("too long")
	}
	return domain.Some(s), nil
}
