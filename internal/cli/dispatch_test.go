package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tasker/internal/cli"
	"tasker/internal/commands"
	"tasker/internal/config"
	"tasker/internal/exitcode"
	"tasker/internal/storage"
)

// runDispatcher runs the default registry against an in-memory backend.
// The same store is reused across calls so sequences of commands see
// each other's writes.
func runDispatcher(t *testing.T, store storage.Storage, args []string) (stdout, stderr string, code int) {
	t.Helper()

	d := cli.NewDispatcher(commands.DefaultRegistry, func(cfg *config.Config) (storage.Storage, error) {
		return store, nil
	})

	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatch_UnknownCommand(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"bogus"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: unknown command: bogus\n" {
		t.Errorf("expected unknown command error, got %q", stderr)
	}
}

func TestDispatch_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"--quiet", "list"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown command: --quiet\n" {
		t.Errorf("expected unknown command error, got %q", stderr)
	}
}

func TestDispatch_UnknownFlag(t *testing.T) {
	_, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"list", "--bogus"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown flag: -bogus\n" {
		t.Errorf("expected unknown flag error, got %q", stderr)
	}
}

func TestDispatch_FlagNeedsArgument(t *testing.T) {
	_, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"add", "--priority"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: flag needs an argument: -priority\n" {
		t.Errorf("expected flag argument error, got %q", stderr)
	}
}

func TestDispatch_Help(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"help"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("expected usage text, got %q", stdout)
	}
}

func TestDispatch_Version(t *testing.T) {
	stdout, _, code := runDispatcher(t, storage.NewMemoryStorage(), []string{"version"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "tasker 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestDispatch_NoArgsRunsList(t *testing.T) {
	stdout, stderr, code := runDispatcher(t, storage.NewMemoryStorage(), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected empty list message, got %q", stdout)
	}
}

func TestDispatch_FactoryError(t *testing.T) {
	d := cli.NewDispatcher(commands.DefaultRegistry, func(cfg *config.Config) (storage.Storage, error) {
		return nil, errors.New("boom")
	})

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"list"}, &outBuf, &errBuf)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if errBuf.String() != "error: boom\n" {
		t.Errorf("expected factory error, got %q", errBuf.String())
	}
}

// Commands that don't touch the store never invoke the factory.
func TestDispatch_NoStoreSkipsFactory(t *testing.T) {
	called := false
	d := cli.NewDispatcher(commands.DefaultRegistry, func(cfg *config.Config) (storage.Storage, error) {
		called = true
		return storage.NewMemoryStorage(), nil
	})

	var outBuf, errBuf bytes.Buffer
	code := d.Run(context.Background(), []string{"version"}, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if called {
		t.Error("factory should not be called for version")
	}
}

func TestDispatch_AddThenList(t *testing.T) {
	store := storage.NewMemoryStorage()

	stdout, stderr, code := runDispatcher(t, store, []string{"add", "Buy", "milk"})
	if code != exitcode.Success {
		t.Fatalf("add: expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("add: expected 'ok\\n', got %q", stdout)
	}

	stdout, stderr, code = runDispatcher(t, store, []string{"list"})
	if code != exitcode.Success {
		t.Fatalf("list: expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "[ ]   0  medium  Buy milk\n" {
		t.Errorf("list: expected task line, got %q", stdout)
	}
}

func TestDispatch_Aliases(t *testing.T) {
	store := storage.NewMemoryStorage()

	if _, stderr, code := runDispatcher(t, store, []string{"create", "Buy", "milk"}); code != exitcode.Success {
		t.Fatalf("create: expected success, got %d (stderr %q)", code, stderr)
	}

	if _, stderr, code := runDispatcher(t, store, []string{"done", "0"}); code != exitcode.Success {
		t.Fatalf("done: expected success, got %d (stderr %q)", code, stderr)
	}

	stdout, _, code := runDispatcher(t, store, []string{"ls"})
	if code != exitcode.Success {
		t.Fatalf("ls: expected success, got %d", code)
	}
	if stdout != "[x]   0  medium  Buy milk\n" {
		t.Errorf("ls: expected completed task line, got %q", stdout)
	}
}

func TestDispatch_QuietFlag(t *testing.T) {
	store := storage.NewMemoryStorage()

	stdout, stderr, code := runDispatcher(t, store, []string{"add", "--quiet", "Buy", "milk"})
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected no stdout with --quiet, got %q", stdout)
	}
}
