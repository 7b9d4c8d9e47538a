package security

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr error
	}{
		{name: "under limit", input: "abc", limit: 10},
		{name: "exactly at limit", input: "abcdef", limit: 6},
		{name: "over limit", input: "abcdefgh", limit: 6, wantErr: ErrSizeLimitExceeded},
		{name: "empty input", input: "", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewLimitedReader(strings.NewReader(tt.input), tt.limit))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadAll() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && string(got) != tt.input {
				t.Errorf("ReadAll() = %q, want %q", got, tt.input)
			}
		})
	}
}
