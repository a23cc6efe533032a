package cmd

import "testing"

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"|", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDelimiter(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseDelimiter(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseDelimiter(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("parseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cases := map[string]string{
		"data/samples.csv":  "data/samples_results.csv",
		"data/samples.tsv":  "data/samples_results.csv",
		"data/samples.xlsx": "data/samples_results.xlsx",
	}
	for in, want := range cases {
		if got := defaultOutputPath(in); got != want {
			t.Fatalf("defaultOutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
