// Package buildmeta reads the project version from CMake build metadata.
package buildmeta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
)

// UnknownVersion is reported when the build metadata cannot provide a version.
const UnknownVersion = "unknown"

// DefaultFile is the conventional build metadata location.
const DefaultFile = "CMakeLists.txt"

var (
	// ErrVersionNotFound indicates the metadata has no DF_VERSION line.
	ErrVersionNotFound = errors.New("DF_VERSION not found in build metadata")
	// ErrReleaseNotFound indicates the metadata has no DFHACK_RELEASE line.
	ErrReleaseNotFound = errors.New("DFHACK_RELEASE not found in build metadata")
)

// Lines are matched after upper-casing, so the patterns are upper case.
var (
	versionLine = regexp.MustCompile(`^SET\(DF_VERSION "(.\...\...)"\)$`)
	releaseLine = regexp.MustCompile(`^SET\(DFHACK_RELEASE "(R.*)"\)$`)
)

// Info holds the two version components found in the metadata.
type Info struct {
	Version string
	Release string
}

// String joins version and release, e.g. 0.40.24-r3.
func (i Info) String() string {
	return i.Version + "-" + i.Release
}

// Parse scans build metadata for the version and release lines. When a line
// occurs more than once the last occurrence wins.
func Parse(r io.Reader) (Info, error) {
	var info Info
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToUpper(strings.TrimRight(scanner.Text(), "\r"))
		if m := versionLine.FindStringSubmatch(line); m != nil {
			info.Version = m[1]
		} else if m := releaseLine.FindStringSubmatch(line); m != nil {
			info.Release = strings.ToLower(m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return info, fmt.Errorf("read build metadata: %w", err)
	}
	if info.Version == "" {
		return info, ErrVersionNotFound
	}
	if info.Release == "" {
		return info, ErrReleaseNotFound
	}
	return info, nil
}

// ReadVersion returns "<version>-<release>" from the metadata file, or
// UnknownVersion when the file is missing, unreadable or incomplete.
func ReadVersion(path string) string {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("Build metadata unavailable", logfields.Path(path), logfields.Error(err))
		return UnknownVersion
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := Parse(f)
	if err != nil {
		slog.Warn("Build metadata has no usable version", logfields.Path(path), logfields.Error(err))
		return UnknownVersion
	}
	return info.String()
}
