// Package schema delegates acceptance testing to an external XSD
// validator. The engine never interprets schema rules itself; it only
// hands the reduced document over and reports pass/fail plus the
// remaining violations.
package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrXmllintNotFound indicates no xmllint binary is available.
var ErrXmllintNotFound = errors.New("schema: xmllint not found in PATH")

// Result is the validator's verdict for one file.
type Result struct {
	OK         bool
	Violations []string
}

// Validator runs xmllint against a schema file.
type Validator struct {
	Xmllint    string
	SchemaPath string
}

// FindXmllint locates the xmllint binary.
func FindXmllint() (string, bool) {
	path, err := exec.LookPath("xmllint")
	return path, err == nil
}

// New builds a Validator, resolving xmllint from PATH when binPath is
// empty.
func New(binPath, schemaPath string) (*Validator, error) {
	if binPath == "" {
		found, ok := FindXmllint()
		if !ok {
			return nil, ErrXmllintNotFound
		}
		binPath = found
	}
	return &Validator{Xmllint: binPath, SchemaPath: schemaPath}, nil
}

// Validate checks one XML file against the schema. A non-zero exit
// with violation output is a normal failed validation, not an error;
// errors are reserved for not being able to run the validator at all.
func (v *Validator) Validate(ctx context.Context, xmlPath string) (*Result, error) {
	args := []string{"--noout"}
	if v.SchemaPath != "" {
		args = append(args, "--schema", v.SchemaPath)
	}
	args = append(args, xmlPath)

	cmd := exec.CommandContext(ctx, v.Xmllint, args...)
	var stderr bytes.Buffer
	cmd.Stdout = nil
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &Result{OK: true}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("schema: run xmllint: %w", err)
	}

	lines := make([]string, 0, 8)
	for _, line := range strings.Split(stderr.String(), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return &Result{OK: false, Violations: lines}, nil
}
