package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads the request body into dst and runs struct validation.
// Both malformed JSON and failed rules come back as *domain.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is required")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return validateStruct(dst)
}

// validateStruct runs the validate tags of a struct. Other kinds pass
// through untouched.
func validateStruct(v any) error {
	if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email"
	case "gt", "gte", "min":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " rule"
	}
}

// pathID parses a positive int64 path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// queryParser collects query-string parse errors so a handler reports them
// all at once.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) int64Ptr(name string) *int64 {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

func (p *queryParser) int(name string, def int) int {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return def
	}
	return v
}

func (p *queryParser) boolPtr(name string) *bool {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be true or false"})
		return nil
	}
	return &v
}

func (p *queryParser) stringPtr(name string) *string {
	raw := strings.TrimSpace(p.r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

func (p *queryParser) timePtr(name string) *time.Time {
	raw := p.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an RFC 3339 timestamp or YYYY-MM-DD"})
	return nil
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}
