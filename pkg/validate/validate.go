package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"school-schedule/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the custom tags registered:
//
//	clock    HH:MM wall clock time
//	step=N   integer multiple of N
//	notblank non-empty after trimming spaces
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(jsonName)

		_ = v.RegisterValidation("clock", isClock)
		_ = v.RegisterValidation("step", isStep)
		_ = v.RegisterValidation("notblank", validators.NotBlank)

		instance = v
	})

	return instance
}

// Struct validates s and returns a *response.ValidationError listing every failed rule.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	return &response.ValidationError{Problems: Problems(errs)}
}

// Problems renders validator errors as human readable messages.
func Problems(errs validator.ValidationErrors) []string {
	problems := make([]string, 0, len(errs))

	for _, err := range errs {
		field := fieldName(err)

		switch err.Tag() {
		case "required", "notblank":
			problems = append(problems, fmt.Sprintf("%s is required", field))
		case "gt":
			problems = append(problems, fmt.Sprintf("%s must be greater than %s", field, err.Param()))
		case "gte":
			problems = append(problems, fmt.Sprintf("%s must be at least %s", field, err.Param()))
		case "step":
			problems = append(problems, fmt.Sprintf("%s %v must be a multiple of %s", field, err.Value(), err.Param()))
		case "clock":
			problems = append(problems, fmt.Sprintf("%s %q is not in HH:MM format", field, err.Value()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s %q must be one of %s", field, err.Value(), strings.ReplaceAll(err.Param(), " ", ", ")))
		case "unique":
			problems = append(problems, fmt.Sprintf("%s must not repeat %s", field, err.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid", field))
		}
	}

	return problems
}

// fieldName drops the top level struct name: "ScheduleLevelConfig.breaks[1].duration" becomes "breaks[1].duration".
func fieldName(err validator.FieldError) string {
	ns := err.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func isClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 5 {
		return false
	}

	_, err := time.Parse("15:04", s)
	return err == nil
}

func isStep(fl validator.FieldLevel) bool {
	step, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil || step <= 0 {
		return false
	}

	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int()%step == 0
	default:
		return false
	}
}
