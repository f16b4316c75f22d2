package input

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestResolveFromArgs(t *testing.T) {
	r := &Resolver{In: strings.NewReader("should not be read\n")}

	cases := map[string]string{
		"London":           "London",
		"  New York, US  ": "New York, US",
		"48.8567,2.3508":   "48.8567,2.3508",
		"SW1":              "SW1",
		"100.0.0.1":        "100.0.0.1",
	}
	for arg, want := range cases {
		got, err := r.Resolve([]string{arg})
		if err != nil {
			t.Fatalf("Resolve(%q): %v", arg, err)
		}
		if got != want {
			t.Errorf("Resolve(%q) = %q, want %q", arg, got, want)
		}
	}
}

func TestResolveTooManyArgs(t *testing.T) {
	r := &Resolver{In: strings.NewReader("")}
	if _, err := r.Resolve([]string{"New", "York"}); !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("expected ErrTooManyArgs, got %v", err)
	}
}

func TestResolvePrompt(t *testing.T) {
	t.Run("interactive prompt is printed and line trimmed", func(t *testing.T) {
		var out bytes.Buffer
		r := &Resolver{In: strings.NewReader("  Tokyo \nignored\n"), Out: &out, Interactive: true}
		got, err := r.Resolve(nil)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != "Tokyo" {
			t.Errorf("got %q, want Tokyo", got)
		}
		if out.String() != "Enter Location: " {
			t.Errorf("prompt = %q", out.String())
		}
	})

	t.Run("blank argument falls through to input", func(t *testing.T) {
		r := &Resolver{In: strings.NewReader("Lima")}
		got, err := r.Resolve([]string{"   "})
		if err != nil || got != "Lima" {
			t.Fatalf("got %q, %v", got, err)
		}
	})

	t.Run("non interactive does not prompt", func(t *testing.T) {
		var out bytes.Buffer
		r := &Resolver{In: strings.NewReader("Cairo\n"), Out: &out}
		if _, err := r.Resolve(nil); err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("unexpected prompt %q", out.String())
		}
	})
}

func TestResolveEmptyInput(t *testing.T) {
	inputs := []string{"", "\n", "   \t \n", " \r\n"}
	for _, in := range inputs {
		r := &Resolver{In: strings.NewReader(in), Interactive: true, Out: &bytes.Buffer{}}
		if _, err := r.Resolve(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("input %q: expected ErrEmptyInput, got %v", in, err)
		}
	}

	t.Run("no reader", func(t *testing.T) {
		r := &Resolver{}
		if _, err := r.Resolve([]string{""}); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})
}
