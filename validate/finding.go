// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"strings"
)

// Severity grades a Finding.
type Severity int

const (
	// SeverityError marks a violation that blocks export.
	SeverityError Severity = iota
	// SeverityWarning marks an advisory finding.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes "error" or "warning".
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("validate: unknown severity %q", text)
	}

	return nil
}

// Finding is one failed rule.
type Finding struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`    // stable rule identifier
	Subject  string   `json:"subject"` // field or element, e.g. "ports[0]"
	Message  string   `json:"message"` // names the value and the bound
}

// String renders "severity subject: message".
func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Severity, f.Subject, f.Message)
}

// Summary counts findings by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts fs by severity.
func Summarize(fs []Finding) Summary {
	var s Summary
	for _, f := range fs {
		switch f.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
	}

	return s
}

// HasErrors reports whether any finding blocks export.
func HasErrors(fs []Finding) bool {
	for _, f := range fs {
		if f.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Errors returns the blocking subset of fs, in order.
func Errors(fs []Finding) []Finding {
	return filter(fs, SeverityError)
}

// Warnings returns the advisory subset of fs, in order.
func Warnings(fs []Finding) []Finding {
	return filter(fs, SeverityWarning)
}

func filter(fs []Finding, s Severity) []Finding {
	out := make([]Finding, 0, len(fs))
	for _, f := range fs {
		if f.Severity == s {
			out = append(out, f)
		}
	}

	return out
}
