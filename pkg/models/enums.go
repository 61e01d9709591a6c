package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a test run set on the server.
type Status string

const (
	StatusStandard Status = "Standard"
	StatusLocked   Status = "Locked"
	StatusArchived Status = "Archived"
	StatusDeleted  Status = "Deleted"
)

// Statuses lists every status the server understands, in declaration order.
var Statuses = []Status{StatusStandard, StatusLocked, StatusArchived, StatusDeleted}

// ParseStatus matches s exactly (case-sensitive) against the known statuses.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unable to parse '%s' as a valid test run set status", s)
}

// ConflictPolicy decides what happens when more than one source contributes a
// result for the same test.
type ConflictPolicy string

const (
	PolicyNotAllowed     ConflictPolicy = "NotAllowed"
	PolicyUseBestResult  ConflictPolicy = "UseBestResult"
	PolicyUseWorstResult ConflictPolicy = "UseWorstResult"
	PolicyUseLastResult  ConflictPolicy = "UseLastResult"
	PolicyUseFirstResult ConflictPolicy = "UseFirstResult"
)

// ConflictPolicies lists the accepted policies. The first entry is the default.
var ConflictPolicies = []ConflictPolicy{
	PolicyNotAllowed,
	PolicyUseBestResult,
	PolicyUseWorstResult,
	PolicyUseLastResult,
	PolicyUseFirstResult,
}

// ParseConflictPolicy matches s case-insensitively.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	for _, p := range ConflictPolicies {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unable to parse '%s' as a valid option for multiple source test runs behaviour", ErrConfiguration, s)
}
