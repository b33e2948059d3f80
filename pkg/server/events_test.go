package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/selectfield"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{context.DeadlineExceeded, "timeout"},
		{selectfield.ErrDisabled, "rejected"},
		{selectfield.ErrReadOnly, "rejected"},
		{fmt.Errorf("team-select: %w", selectfield.ErrItemDisabled), "rejected"},
		{fmt.Errorf("basic-select: %w", selectfield.ErrUnknownOption), "not_found"},
		{gallery.ErrUnknownWidget, "not_found"},
		{fmt.Errorf("%w: %q", gallery.ErrUnknownForm, "x"), "not_found"},
		{errUnknownEvent, "not_found"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		if got := errorType(tt.err); got != tt.want {
			t.Errorf("errorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
