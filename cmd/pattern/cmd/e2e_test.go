package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gitlab.com/stephen-fox/cyclic/conv"
	"gitlab.com/stephen-fox/cyclic/pattern"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	rootCmd := NewRootCommand()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPatternE2E(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		exp     string
	}{
		{
			name: "create",
			args: []string{"create", "--length", "10"},
			exp:  "0123456789\n",
		},
		{
			name: "create empty",
			args: []string{"create", "--length", "0"},
			exp:  "\n",
		},
		{
			name: "root defaults to create",
			args: []string{"--length", "20"},
			exp:  "A0A1A2A3A4A5A6A7A8A9\n",
		},
		{
			name:    "create invalid length",
			args:    []string{"create", "--length", "730081"},
			wantErr: pattern.ErrLengthOutOfRange,
		},
		{
			name: "offset forward",
			args: []string{"offset", "--length", "20", "A3A4"},
			exp:  "\"A3A4\" found at offset 6\n",
		},
		{
			name: "offset reversed",
			args: []string{"offset", "--length", "20", "4A3A"},
			exp:  "Reversed pattern \"A3A4\" found at offset 6\n",
		},
		{
			name: "offset not found",
			args: []string{"offset", "--length", "20", "zzzz"},
			exp:  "\"zzzz\" not found\n",
		},
		{
			name: "offset hex prefix",
			args: []string{"offset", "--length", "20", "0x41334134"},
			exp:  "\"A3A4\" found at offset 6\n",
		},
		{
			name: "offset hex flag",
			args: []string{"offset", "--length", "20", "--hex", "34413341"},
			exp:  "Reversed pattern \"A3A4\" found at offset 6\n",
		},
		{
			name: "offset hex not ascii",
			args: []string{"offset", "--length", "20", "0xff"},
			exp:  "0xff is not a valid hex representation of an ASCII string\n",
		},
		{
			name:    "offset invalid hex",
			args:    []string{"offset", "--length", "20", "0xzz"},
			wantErr: conv.ErrInvalidHex,
		},
		{
			name:    "offset invalid length",
			args:    []string{"offset", "--length", "-1", "A0"},
			wantErr: pattern.ErrLengthOutOfRange,
		},
		{
			name: "badchars default",
			args: []string{"badchars"},
			exp:  "Excluded bytes: \"\\x00\"\n" + allBytesExcept(0x00) + "\n",
		},
		{
			name: "badchars mona",
			args: []string{"badchars", "--exclude", `\x41\x0a`},
			exp:  "Excluded bytes: \"\\x00\\x0a\\x41\"\n" + allBytesExcept(0x00, 0x0a, 0x41) + "\n",
		},
		{
			name: "badchars spaces",
			args: []string{"badchars", "-e", "0d zz 0a"},
			exp:  "Excluded bytes: \"\\x00\\x0a\\x0d\"\n" + allBytesExcept(0x00, 0x0a, 0x0d) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v - got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("command failed - %s", err)
			}

			if stdout != tt.exp {
				t.Fatalf("expected output:\n%q\ngot:\n%q", tt.exp, stdout)
			}
		})
	}
}

func TestPatternE2E_UsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"create"},
		{"offset", "A0"},
		{"offset", "--length", "20"},
		{"create", "--length", "abc"},
	} {
		_, _, err := execute(t, args...)
		if err == nil {
			t.Fatalf("%q: expected an error", args)
		}
	}
}

func TestPatternE2E_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "offset", "--length", "600", "0x41613541")
	if err != nil {
		t.Fatal(err)
	}

	if stdout != "\"Aa5A\" found at offset 15\n" {
		t.Fatalf("unexpected output: %q", stdout)
	}

	if !strings.Contains(stderr, "tier 521...20280") {
		t.Fatalf("expected verbose log output - got %q", stderr)
	}
}

func TestPatternE2E_Version(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout, version) {
		t.Fatalf("expected version %q in output - got %q", version, stdout)
	}
}

func allBytesExcept(excluded ...byte) string {
	var sb strings.Builder

outer:
	for i := 1; i <= 0xff; i++ {
		for _, b := range excluded {
			if byte(i) == b {
				continue outer
			}
		}

		sb.WriteString(conv.EscapeBytes([]byte{byte(i)}))
	}

	return sb.String()
}
