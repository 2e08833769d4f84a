package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  jane@example.com  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter email", &out)
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "jane@example.com" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter email") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("partial"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "p", &out)
	if err != nil {
		t.Fatalf("GetSimpleText err: %v", err)
	}
	if got != "partial" {
		t.Fatalf("got %q", got)
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	if _, err := GetSimpleText(r, "p", &out); err == nil {
		t.Fatalf("want error on empty EOF")
	}
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(_ int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword err: %v", err)
	}
	if string(pw) != "secret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetPassword_ErrorPropagates(t *testing.T) {
	orig := readPassword
	readPassword = func(_ int) ([]byte, error) { return nil, io.ErrUnexpectedEOF }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatalf("want error")
	}
}
