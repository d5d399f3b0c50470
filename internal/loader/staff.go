package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/napolitain/unisim/internal/models"
)

// ErrMalformedRecord is returned for a staff line that is not "Name (skill)"
var ErrMalformedRecord = errors.New("malformed staff record")

// Precompiled regex for "Name (skill)" records
var staffRecordRegex = regexp.MustCompile(`^(.*\S)\s*\(\s*(-?\d+)\s*\)$`)

// LoadStaff reads the candidate pool from a file
func LoadStaff(path string) ([]*models.Staff, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staff file: %w", err)
	}
	defer file.Close()

	staff, err := ParseStaff(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return staff, nil
}

// ParseStaff reads one "Name (skill)" record per line in order. Blank lines
// and lines starting with # are skipped.
func ParseStaff(r io.Reader) ([]*models.Staff, error) {
	var staff []*models.Staff

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := staffRecordRegex.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrMalformedRecord, line)
		}
		skill, err := strconv.Atoi(match[2])
		if err != nil || skill < 0 || skill > models.MaxSkill {
			return nil, fmt.Errorf("line %d: %w: skill %s out of range 0-%d", lineNum, ErrMalformedRecord, match[2], models.MaxSkill)
		}
		staff = append(staff, models.NewStaff(match[1], skill))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff records: %w", err)
	}

	return staff, nil
}
