package paw_test

import (
	"testing"

	"github.com/paw-tools/paw/pkg/paw"
	"github.com/stretchr/testify/assert"
)

func TestLogSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    int
		expected string
	}{
		{name: "current log", index: 0, expected: ""},
		{name: "first rotation", index: 1, expected: ".1"},
		{name: "second archive", index: 2, expected: ".2.gz"},
		{name: "tenth archive", index: 10, expected: ".10.gz"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, paw.LogSuffix(testCase.index))
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/var/log/www.domain.com.error.log",
		paw.LogFilePath("www.domain.com", paw.LogTypeError, 0))
	assert.Equal(t, "/var/log/www.domain.com.error.log.1",
		paw.LogFilePath("www.domain.com", paw.LogTypeError, 1))
	assert.Equal(t, "/var/log/www.domain.com.error.log.2.gz",
		paw.LogFilePath("www.domain.com", paw.LogTypeError, 2))
}

func TestParseLogListing(t *testing.T) {
	t.Parallel()

	domain := "www.domain.com"

	t.Run("classifies rotation suffixes", func(t *testing.T) {
		t.Parallel()

		entries := []string{
			"/var/log/www.domain.com.access.log",
			"/var/log/www.domain.com.access.log.1",
			"/var/log/www.domain.com.access.log.2.gz",
			"/var/log/www.domain.com.error.log",
			"/var/log/www.domain.com.server.log.3.gz",
		}

		logs := paw.ParseLogListing(domain, entries)

		assert.Equal(t, []int{0, 1, 2}, logs[paw.LogTypeAccess])
		assert.Equal(t, []int{0}, logs[paw.LogTypeError])
		assert.Equal(t, []int{3}, logs[paw.LogTypeServer])
	})

	t.Run("short rotation names follow the same convention", func(t *testing.T) {
		t.Parallel()

		entries := []string{
			"/var/log/www.domain.com.error.1",
			"/var/log/www.domain.com.server.3.gz",
		}

		logs := paw.ParseLogListing(domain, entries)

		assert.Equal(t, []int{1}, logs[paw.LogTypeError])
		assert.Equal(t, []int{3}, logs[paw.LogTypeServer])
		assert.Empty(t, logs[paw.LogTypeAccess])
	})

	t.Run("skips entries for other domains", func(t *testing.T) {
		t.Parallel()

		entries := []string{
			"/var/log/other.domain.com.access.log",
			"/var/log/system.log",
			"/var/log/www.domain.com.access.log",
		}

		logs := paw.ParseLogListing(domain, entries)

		assert.Equal(t, []int{0}, logs[paw.LogTypeAccess])
		assert.Empty(t, logs[paw.LogTypeError])
		assert.Empty(t, logs[paw.LogTypeServer])
	})

	t.Run("skips unknown categories and malformed suffixes", func(t *testing.T) {
		t.Parallel()

		entries := []string{
			"/var/log/www.domain.com.debug.log",
			"/var/log/www.domain.com.error.log.weird",
			"/var/log/www.domain.com.error.notanumber.gz",
			"/var/log/www.domain.com.server.log",
		}

		logs := paw.ParseLogListing(domain, entries)

		assert.Empty(t, logs[paw.LogTypeAccess])
		assert.Empty(t, logs[paw.LogTypeError])
		assert.Equal(t, []int{0}, logs[paw.LogTypeServer])
	})

	t.Run("empty listing yields empty categories", func(t *testing.T) {
		t.Parallel()

		logs := paw.ParseLogListing(domain, nil)

		assert.Len(t, logs, 3)
		for _, logType := range paw.LogTypes {
			assert.Empty(t, logs[logType])
		}
	})
}

func TestLogTypeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, paw.LogTypeAccess.Valid())
	assert.True(t, paw.LogTypeError.Valid())
	assert.True(t, paw.LogTypeServer.Valid())
	assert.False(t, paw.LogType("debug").Valid())
	assert.False(t, paw.LogType("").Valid())
}
