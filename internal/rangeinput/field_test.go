package rangeinput

import (
	"testing"
	"time"

	"github.com/tomaslara/rangepick/internal/dateutil"
)

func TestFieldCommittedText(t *testing.T) {
	format := "YYYY-MM-DD"

	tests := []struct {
		name  string
		field FieldState
		want  string
	}{
		{
			name:  "unset renders empty",
			field: FieldState{Committed: dateutil.Unset()},
			want:  "",
		},
		{
			name: "set renders under the format",
			field: FieldState{
				Committed: dateutil.Of(time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC)),
			},
			want: "2020-03-05",
		},
		{
			name:  "invalid keeps the rejected text visible",
			field: FieldState{Committed: dateutil.Invalid("not a date")},
			want:  "not a date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.committedText(format); got != tt.want {
				t.Errorf("committedText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldClearTransient(t *testing.T) {
	live := "2020-0"
	hover := "2020-03-10"
	f := FieldState{
		Committed: dateutil.Of(time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC)),
		LiveText:  &live,
		HoverText: &hover,
	}

	if !f.typed() {
		t.Fatal("field with live text should report typed")
	}
	f.clearTransient()
	if f.LiveText != nil || f.HoverText != nil {
		t.Error("transient text should be gone")
	}
	if f.typed() {
		t.Error("cleared field should not report typed")
	}
	if !f.Committed.IsSet() {
		t.Error("committed value must survive")
	}
}

func TestBoundaryOther(t *testing.T) {
	if Start.Other() != End || End.Other() != Start {
		t.Error("Other() should flip the boundary")
	}
}
