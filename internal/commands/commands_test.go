package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"testing"
)

func newRegistry(ran *string, ticks *int) *Registry {
	r := NewRegistry()

	run := flag.NewFlagSet("run", flag.ContinueOnError)
	run.SetOutput(io.Discard)
	r.Register("run", "open a window", run, func() error { *ran = "run"; return nil })

	sim := flag.NewFlagSet("sim", flag.ContinueOnError)
	sim.SetOutput(io.Discard)
	sim.IntVar(ticks, "ticks", 10, "")
	r.Register("sim", "run headless", sim, func() error { *ran = "sim"; return nil })

	r.SetDefault("run")
	return r
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantRan   string
		wantTicks int
		wantErr   bool
	}{
		{"default", nil, "run", 10, false},
		{"default with flags", []string{"-h"}, "", 10, true},
		{"named", []string{"sim", "-ticks", "5"}, "sim", 5, false},
		{"bad flag", []string{"sim", "-nope"}, "", 10, true},
		{"unknown", []string{"fly"}, "", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran string
			var ticks int
			r := newRegistry(&ran, &ticks)
			err := r.Execute(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if ran != tt.wantRan || ticks != tt.wantTicks {
				t.Errorf("ran=%q ticks=%d, want %q %d", ran, ticks, tt.wantRan, tt.wantTicks)
			}
		})
	}
}

func TestExecute_UnknownCommandError(t *testing.T) {
	var ran string
	var ticks int
	err := newRegistry(&ran, &ticks).Execute([]string{"fly"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("err = %v", err)
	}
}

func TestUsage(t *testing.T) {
	var ran string
	var ticks int
	var buf bytes.Buffer
	newRegistry(&ran, &ticks).Usage(&buf)
	want := "  run    open a window\n  sim    run headless\n"
	if buf.String() != want {
		t.Errorf("Usage() = %q, want %q", buf.String(), want)
	}
}
