package paw

import (
	"fmt"
	"strconv"
	"strings"
)

// LogType identifies a webapp log category.
type LogType string

// Log categories kept by the platform for each webapp.
const (
	LogTypeAccess LogType = "access"
	LogTypeError  LogType = "error"
	LogTypeServer LogType = "server"
)

// LogTypes lists the known log categories.
var LogTypes = []LogType{LogTypeAccess, LogTypeError, LogTypeServer}

// Valid reports whether t is a known log category.
func (t LogType) Valid() bool {
	switch t {
	case LogTypeAccess, LogTypeError, LogTypeServer:
		return true
	}

	return false
}

// LogSet maps each log category to the rotation indices present on disk.
// Index 0 is the current log, 1 the first rotation (".1"), and N >= 2 the
// gzip-rotated archive N (".N.gz").
type LogSet map[LogType][]int

// LogSuffix returns the filename suffix for a rotation index: "" for the
// current log, ".1" for the first rotation, ".N.gz" for older archives.
func LogSuffix(index int) string {
	switch {
	case index == 1:
		return ".1"
	case index > 1:
		return fmt.Sprintf(".%d.gz", index)
	default:
		return ""
	}
}

// LogFilePath returns the absolute server-side path of a webapp log file for
// the given category and rotation index.
func LogFilePath(domain string, logType LogType, index int) string {
	return fmt.Sprintf("/var/log/%s.%s.log%s", domain, logType, LogSuffix(index))
}

// ParseLogListing derives a LogSet from a /var/log directory listing. Entries
// that do not belong to the domain, name an unknown category, or do not follow
// the rotation suffix convention are silently skipped. Indices keep the
// listing order of the directory tree.
func ParseLogListing(domain string, entries []string) LogSet {
	logs := LogSet{LogTypeAccess: {}, LogTypeError: {}, LogTypeServer: {}}
	prefix := fmt.Sprintf("/var/log/%s.", domain)

	for _, entry := range entries {
		if !strings.HasPrefix(entry, prefix) {
			continue
		}

		parts := strings.Split(strings.TrimPrefix(entry, prefix), ".")

		logType := LogType(parts[0])
		if !logType.Valid() {
			continue
		}

		index, ok := parseLogIndex(parts)
		if !ok {
			continue
		}

		logs[logType] = append(logs[logType], index)
	}

	return logs
}

// parseLogIndex recovers the rotation index from the dot-separated remainder
// of a log filename: [...,"log"] is the current log, [...,"1"] the first
// rotation, [...,"N","gz"] archive N.
func parseLogIndex(parts []string) (int, bool) {
	last := parts[len(parts)-1]

	switch {
	case last == "log":
		return 0, true
	case last == "1":
		return 1, true
	case last == "gz" && len(parts) >= 2:
		index, err := strconv.Atoi(parts[len(parts)-2])
		if err != nil {
			return 0, false
		}

		return index, true
	default:
		return 0, false
	}
}
