package encode

import (
	"bytes"
	"testing"
)

func runEncode(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncode_Literal(t *testing.T) {
	got, err := runEncode(t, "Petr Dvorak", "+420 123")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != "7387 386725\n0420 123\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEncode_Drop(t *testing.T) {
	got, err := runEncode(t, "--punctuation", "drop", "Jan Novak")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != "52666825\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEncode_RejectsUnknownPolicy(t *testing.T) {
	if _, err := runEncode(t, "--punctuation", "keep", "x"); err == nil {
		t.Fatalf("expected error")
	}
}
