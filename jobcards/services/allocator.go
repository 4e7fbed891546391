package services

import (
	"fmt"
	"strconv"
	"strings"

	"jobcard-backend/config"

	"go.uber.org/zap"
)

// JobNumberPrefix builds the shared prefix for a year/month, e.g. "JC-2025-03-".
func JobNumberPrefix(year, month string) string {
	return fmt.Sprintf("JC-%s-%s-", year, month)
}

// FormatJobNumber composes the full human-readable identity.
func FormatJobNumber(year, month, sequence string) string {
	return JobNumberPrefix(year, month) + sequence
}

// PadSequence left-pads a manually entered sequence to 3 digits. It does not
// validate against existing records; the unique index on job_number is the
// only guard at insert time.
func PadSequence(seq string) string {
	seq = strings.TrimSpace(seq)
	for len(seq) < 3 {
		seq = "0" + seq
	}
	return seq
}

// NextSequenceFromNumbers computes the next 3-digit sequence given the job
// numbers already stored for a year/month prefix. Trailing segments that do
// not parse as positive integers are ignored. Returns "001" when nothing
// parses.
func NextSequenceFromNumbers(numbers []string) string {
	max := 0
	for _, number := range numbers {
		idx := strings.LastIndex(number, "-")
		if idx < 0 || idx+1 >= len(number) {
			continue
		}
		v, err := strconv.Atoi(number[idx+1:])
		if err != nil || v <= 0 {
			continue
		}
		if v > max {
			max = v
		}
	}
	return fmt.Sprintf("%03d", max+1)
}

// JobNumberSource is the slice of the repository the allocator needs.
type JobNumberSource interface {
	GetJobNumbersByPrefix(prefix string) ([]string, error)
}

// NextJobSequence is a pure read: it scans stored job numbers for the
// year/month prefix and returns max+1, zero-padded. Nothing is reserved, so
// two concurrent callers can legitimately get the same sequence; the unique
// index surfaces that at insert as a duplicate error the user retries.
// On query failure it falls back to "001".
func NextJobSequence(source JobNumberSource, year, month string) string {
	numbers, err := source.GetJobNumbersByPrefix(JobNumberPrefix(year, month))
	if err != nil {
		config.Logger.Warn("Job number lookup failed, falling back to 001",
			zap.String("year", year),
			zap.String("month", month),
			zap.Error(err))
		return "001"
	}
	return NextSequenceFromNumbers(numbers)
}
