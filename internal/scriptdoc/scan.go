package scriptdoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
	serrors "git.home.luguber.info/inful/scriptdoc/internal/scriptdoc/errors"
)

// ScanOptions holds traversal constraints for Scan.
type ScanOptions struct {
	// Exclude lists glob patterns, relative to the root, of files and directories to skip.
	Exclude []string
}

// Scan walks root and returns one Entry per documented script, in walk order.
// Any unreadable or non UTF-8 script aborts the whole scan.
func Scan(root string, opts ScanOptions) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("%w: %s: %w", serrors.ErrWalkFailed, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", serrors.ErrRootNotDirectory, root)
	}

	filter, err := NewFilter(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("%w: %s: %w", serrors.ErrWalkFailed, path, walkErr)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: %w", serrors.ErrInvalidRelativePath, err)
		}
		includePath := normalizeIncludePath(filepath.ToSlash(rel))

		if excluded, pattern := filter.Excluded(includePath); excluded {
			slog.Debug("Excluded from scan", logfields.Path(includePath), slog.String("pattern", pattern))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !isScriptFile(filepath.Ext(path)) {
			return nil
		}
		regular, err := isRegularFile(path, d)
		if err != nil {
			return err
		}
		if !regular {
			return nil
		}

		entry, ok, err := extractEntry(path, includePath)
		if err != nil {
			return err
		}
		if !ok {
			slog.Debug("No documented command found", logfields.File(includePath))
			return nil
		}

		slog.Debug("Discovered script",
			logfields.File(includePath),
			logfields.Command(entry.Command),
			slog.String("tokens", entry.Tokens.Start))
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Script scan completed", logfields.Root(root), logfields.Count(len(entries)))
	return entries, nil
}

// extractEntry reads one script and looks for its command title.
func extractEntry(path, includePath string) (Entry, bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return Entry{}, false, err
	}

	command, ok := findCommand(lines)
	if !ok {
		return Entry{}, false, nil
	}
	style := SelectStyle(filepath.Ext(path), lines)
	return Entry{
		Command:     command,
		IncludePath: includePath,
		Tokens:      style.Pair(),
	}, true, nil
}

// readLines returns the non-blank lines of a UTF-8 file with trailing whitespace removed.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", serrors.ErrFileReadFailed, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := bufio.NewReader(transform.NewReader(f, encoding.UTF8Validator))

	var lines []string
	for {
		line, readErr := r.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if errors.Is(readErr, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrDecodeFailed, path)
		}
		if readErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", serrors.ErrFileReadFailed, path, readErr)
		}
	}
	return lines, nil
}

// isRegularFile reports whether path is a regular file. Symlinks are resolved;
// a dangling link is a read failure like any other unreadable script.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", serrors.ErrFileReadFailed, path, err)
	}
	return info.Mode().IsRegular(), nil
}

// findCommand returns the first line that is directly followed by an underline
// of '=' with the same length.
func findCommand(lines []string) (string, bool) {
	candidate := ""
	for _, line := range lines {
		if candidate != "" && isUnderlineOf(line, candidate) {
			return candidate, true
		}
		candidate = line
	}
	return "", false
}

func isUnderlineOf(line, title string) bool {
	if len(line) != utf8.RuneCountInString(title) {
		return false
	}
	return strings.Trim(line, "=") == ""
}
