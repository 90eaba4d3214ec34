package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"student-grades/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// FieldError describes one rejected part of a request.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned when a request cannot be decoded into the
// shape the handler expects.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func decodeGradeInput(r *http.Request) (model.GradeInput, error) {
	var input model.GradeInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, decodeError(err)
	}

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return input, err
		}
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
		return input, &ValidationError{Fields: fields}
	}

	return input, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return &ValidationError{Fields: []FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
			Type: "type_error",
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &ValidationError{Fields: []FieldError{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON",
			Type: "value_error.jsondecode",
		}}}
	case errors.Is(err, io.EOF):
		return &ValidationError{Fields: []FieldError{{
			Loc:  []string{"body"},
			Msg:  "field required",
			Type: "value_error.missing",
		}}}
	default:
		return &ValidationError{Fields: []FieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}}
	}
}

func gradeID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{
			Loc:  []string{"path", "id"},
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}}}
	}
	return id, nil
}

func gradeFilter(r *http.Request) (model.GradeFilter, error) {
	query := r.URL.Query()
	filter := model.GradeFilter{
		Surname:      query.Get("surname"),
		StudentGroup: query.Get("student_group"),
		Subject:      query.Get("subject"),
		Teacher:      query.Get("teacher"),
	}

	var fields []FieldError
	for _, param := range []struct {
		name string
		dst  **int
	}{
		{"grade_min", &filter.GradeMin},
		{"grade_max", &filter.GradeMax},
	} {
		raw := query.Get(param.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, FieldError{
				Loc:  []string{"query", param.name},
				Msg:  "value is not a valid integer",
				Type: "type_error.integer",
			})
			continue
		}
		*param.dst = &v
	}
	if len(fields) > 0 {
		return filter, &ValidationError{Fields: fields}
	}

	return filter, nil
}
