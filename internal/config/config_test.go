package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Config
	}{
		{
			name: "all keys",
			in: "bin = prog.bin\n" +
				"engine = subroutined\n" +
				"log = shisa.log\n",
			want: Config{Bin: "prog.bin", Engine: "subroutined", Log: "shisa.log"},
		},
		{
			name: "comments and blank lines",
			in: "# a config file\n" +
				"\n" +
				"bin = prog.bin   # trailing comment\n",
			want: Config{Bin: "prog.bin"},
		},
		{
			name: "case insensitive keys",
			in:   "BIN = prog.bin\nEngine = predecoded\n",
			want: Config{Bin: "prog.bin", Engine: "predecoded"},
		},
		{
			name: "unrecognized key ignored",
			in:   "bin = prog.bin\nnickname = grover\n",
			want: Config{Bin: "prog.bin"},
		},
		{
			name: "empty input",
			in:   "",
			want: Config{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("Parse: unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("bin prog.bin\n"))
	if err == nil {
		t.Fatal("Parse: expected error for line missing '='")
	}
}
