// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package properties reads properties-style files into key/value pairs.
//
// Supported syntax, a subset of the Java properties format:
//
//	# comment
//	! comment
//	key=value
//	key: value
//	key value
//	long.key = first part \
//	           continued
//
// Only an odd number of trailing backslashes continues a line.
// Escapes are not decoded, a trailing `\\` is kept verbatim.
// Keys and values are trimmed, blank lines are skipped.
package properties

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Pair is a single key/value line of a properties file.
type Pair struct {
	Key   string
	Value string
	Line  int // line number of the key, 1 based
}

// ReadFile opens and parses the properties file at path.
func ReadFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open properties file")
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return pairs, nil
}

// Parse reads all pairs from r, in input order.
// Duplicate keys are returned as they are, the last one wins on insert.
func Parse(r io.Reader) ([]Pair, error) {
	var (
		pairs   []Pair
		logical strings.Builder
		start   int
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if logical.Len() == 0 {
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
			start = lineNo
		}

		if continues(line) {
			logical.WriteString(strings.TrimSuffix(line, `\`))
			continue
		}
		logical.WriteString(line)

		pair, err := splitPair(logical.String())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", start)
		}
		pair.Line = start
		pairs = append(pairs, pair)

		logical.Reset()
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", lineNo+1)
	}

	if logical.Len() != 0 {
		return nil, errors.Errorf("line %d: unterminated continuation", start)
	}

	return pairs, nil
}

// continues reports whether line ends in an odd number of backslashes,
// an even number is a run of escaped backslashes.
func continues(line string) bool {
	n := len(line) - len(strings.TrimRight(line, `\`))
	return n%2 == 1
}

// splitPair splits at the first '=', ':' or whitespace.
func splitPair(s string) (Pair, error) {
	idx := strings.IndexAny(s, "=: \t")
	if idx < 0 {
		// a key without value
		return Pair{Key: s}, nil
	}

	key := strings.TrimSpace(s[:idx])
	if key == "" {
		return Pair{}, errors.Errorf("missing key in %q", s)
	}

	rest := strings.TrimSpace(s[idx:])

	// "key = value", the separator may follow the whitespace
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimSpace(rest[1:])
	}

	return Pair{Key: key, Value: rest}, nil
}
