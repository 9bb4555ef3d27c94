package validate

import (
	"errors"
	"strings"
	"testing"

	"school-schedule/pkg/response"
)

type lesson struct {
	Title    string  `json:"title" validate:"notblank"`
	Start    string  `json:"start" validate:"clock"`
	Minutes  int     `json:"minutes" validate:"gt=0,step=15"`
	Kind     string  `json:"kind" validate:"oneof=lab lecture"`
	Pauses   []pause `json:"pauses" validate:"unique=After,dive"`
	Internal string  `json:"-" validate:"required"`
}

type pause struct {
	After int `json:"after" validate:"gte=1"`
}

func validLesson() lesson {
	return lesson{
		Title:    "Algebra",
		Start:    "08:00",
		Minutes:  45,
		Kind:     "lecture",
		Pauses:   []pause{{After: 1}, {After: 2}},
		Internal: "x",
	}
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*lesson)
		wantMsg string
	}{
		{name: "valid", mutate: func(*lesson) {}},
		{name: "blank title", mutate: func(l *lesson) { l.Title = "   " }, wantMsg: "title is required"},
		{name: "clock out of range", mutate: func(l *lesson) { l.Start = "24:00" }, wantMsg: `start "24:00" is not in HH:MM format`},
		{name: "clock without padding", mutate: func(l *lesson) { l.Start = "8:00" }, wantMsg: `start "8:00" is not in HH:MM format`},
		{name: "zero minutes", mutate: func(l *lesson) { l.Minutes = 0 }, wantMsg: "minutes must be greater than 0"},
		{name: "minutes off step", mutate: func(l *lesson) { l.Minutes = 50 }, wantMsg: "minutes 50 must be a multiple of 15"},
		{name: "unknown kind", mutate: func(l *lesson) { l.Kind = "exam" }, wantMsg: `kind "exam" must be one of lab, lecture`},
		{name: "repeated pause", mutate: func(l *lesson) { l.Pauses[1].After = 1 }, wantMsg: "pauses must not repeat After"},
		{name: "nested element", mutate: func(l *lesson) { l.Pauses[1].After = 0 }, wantMsg: "pauses[1].after must be at least 1"},
		{name: "field without json name", mutate: func(l *lesson) { l.Internal = "" }, wantMsg: "Internal is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLesson()
			tt.mutate(&l)

			err := Struct(l)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Struct() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, response.ErrValidation) {
				t.Fatalf("Struct() = %v, want validation error", err)
			}

			var vErr *response.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Struct() = %T, want *response.ValidationError", err)
			}
			if len(vErr.Problems) != 1 || vErr.Problems[0] != tt.wantMsg {
				t.Errorf("problems = %q, want [%q]", vErr.Problems, tt.wantMsg)
			}
		})
	}
}

func TestStructReportsEveryField(t *testing.T) {
	l := validLesson()
	l.Title = ""
	l.Minutes = 20
	l.Start = "noon"

	err := Struct(l)

	var vErr *response.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Struct() = %v, want *response.ValidationError", err)
	}
	if len(vErr.Problems) != 3 {
		t.Fatalf("problems = %q, want 3", vErr.Problems)
	}
	for _, want := range []string{"title", "start", "minutes"} {
		found := false
		for _, p := range vErr.Problems {
			if strings.HasPrefix(p, want+" ") {
				found = true
			}
		}
		if !found {
			t.Errorf("no problem reported for %s in %q", want, vErr.Problems)
		}
	}
}

func TestStructNonStruct(t *testing.T) {
	err := Struct("not a struct")
	if err == nil {
		t.Fatal("Struct(string) = nil, want error")
	}
	if errors.Is(err, response.ErrValidation) {
		t.Errorf("Struct(string) = %v, want a non validation error", err)
	}
}
