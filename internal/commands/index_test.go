package commands

import (
	"errors"
	"testing"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{name: "no args", args: nil, wantErr: "task index required"},
		{name: "simple", args: []string{"3"}, want: 3},
		{name: "zero", args: []string{"0"}, want: 0},
		{name: "negative", args: []string{"-1"}, want: -1},
		{name: "not a number", args: []string{"abc"}, wantErr: "invalid task index: abc"},
		{name: "extra argument", args: []string{"1", "2"}, wantErr: "unexpected argument: 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIndex(tc.args)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got index %d", tc.wantErr, got)
				}
				if err.Error() != tc.wantErr {
					t.Errorf("expected error %q, got %q", tc.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseIndex_RequiredSentinel(t *testing.T) {
	_, err := ParseIndex(nil)
	if !errors.Is(err, ErrIndexRequired) {
		t.Errorf("expected ErrIndexRequired, got %v", err)
	}
}
