package services

import (
	"errors"
	"testing"

	"jobcard-backend/config"

	"go.uber.org/zap"
)

type fakeJobNumberSource struct {
	numbers []string
	err     error
	prefix  string
}

func (f *fakeJobNumberSource) GetJobNumbersByPrefix(prefix string) ([]string, error) {
	f.prefix = prefix
	return f.numbers, f.err
}

func TestJobNumberPrefix(t *testing.T) {
	got := JobNumberPrefix("2025", "03")
	if got != "JC-2025-03-" {
		t.Fatalf("JobNumberPrefix: got %q, want %q", got, "JC-2025-03-")
	}
}

func TestFormatJobNumber(t *testing.T) {
	got := FormatJobNumber("2025", "03", "001")
	if got != "JC-2025-03-001" {
		t.Fatalf("FormatJobNumber: got %q, want %q", got, "JC-2025-03-001")
	}
}

func TestPadSequence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "001"},
		{"12", "012"},
		{"123", "123"},
		{"1234", "1234"},
		{" 7 ", "007"},
		{"", "000"},
	}
	for _, tc := range cases {
		if got := PadSequence(tc.in); got != tc.want {
			t.Fatalf("PadSequence(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNextSequenceFromNumbers(t *testing.T) {
	cases := []struct {
		name    string
		numbers []string
		want    string
	}{
		{"empty month", nil, "001"},
		{"sequential", []string{"JC-2025-03-001", "JC-2025-03-002"}, "003"},
		{"gap does not refill", []string{"JC-2025-03-001", "JC-2025-03-002", "JC-2025-03-005"}, "006"},
		{"malformed trailing segment ignored", []string{"JC-2025-03-abc", "JC-2025-03-002"}, "003"},
		{"all malformed falls back", []string{"garbage", "JC-2025-03-"}, "001"},
		{"three digit rollover", []string{"JC-2025-03-099"}, "100"},
		{"does not truncate past 999", []string{"JC-2025-03-999"}, "1000"},
	}
	for _, tc := range cases {
		if got := NextSequenceFromNumbers(tc.numbers); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNextJobSequenceQueriesPrefix(t *testing.T) {
	source := &fakeJobNumberSource{numbers: []string{"JC-2026-08-014"}}

	got := NextJobSequence(source, "2026", "08")
	if got != "015" {
		t.Fatalf("NextJobSequence: got %q, want %q", got, "015")
	}
	if source.prefix != "JC-2026-08-" {
		t.Fatalf("queried prefix: got %q, want %q", source.prefix, "JC-2026-08-")
	}
}

func TestNextJobSequenceFallsBackOnError(t *testing.T) {
	config.Logger = zap.NewNop()
	source := &fakeJobNumberSource{err: errors.New("connection refused")}

	if got := NextJobSequence(source, "2026", "08"); got != "001" {
		t.Fatalf("NextJobSequence on error: got %q, want %q", got, "001")
	}
}
