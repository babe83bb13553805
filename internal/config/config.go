/*
 * ShISA - Configuration file parser.
 *
 * Copyright 2026, ShISA contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package config reads the driver's optional .cfg file: defaults for the
// binary to load, the engine variant to run it with, and the log file, so
// a user isn't forced to repeat the same flags on every invocation.
//
// Format:
//
//	# comment, rest of line ignored
//	<key> = <value>
package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Config holds the recognized keys. A field left as "" was not set in the
// file; the caller decides what default applies.
type Config struct {
	Bin    string
	Engine string
	Log    string
}

// parseError reports a malformed line, with its 1-based line number.
type parseError struct {
	line int
	text string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("config: line %d: %s", e.line, e.text)
}

// Parse reads key = value pairs from r. Unrecognized keys are ignored
// rather than rejected, so older config files keep working against a
// driver that has grown new recognized flags.
func Parse(r io.Reader) (Config, error) {
	var c Config
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, &parseError{lineNo, "expected key = value, got " + line}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "bin":
			c.Bin = value
		case "engine":
			c.Engine = value
		case "log":
			c.Log = value
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
