package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIndexRequired is returned when a command expecting a task index
// receives no arguments.
var ErrIndexRequired = errors.New("task index required")

// ParseIndex parses the positional arguments of an index-addressed
// command. Indexes are 0-based positions in the listed collection;
// range checking is left to the service, which treats out-of-range as
// not-found.
func ParseIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIndexRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task index: %s", args[0])
	}
	return n, nil
}
