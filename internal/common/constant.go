// Package common contains shared constants and sentinel errors used across
// the server packages.
package common

import "time"

// TokenCookieName is the cookie that carries the identity token.
const TokenCookieName = "token"

// DefaultTokenValidity is the lifetime of an issued identity token.
const DefaultTokenValidity = time.Hour

// AssignmentsPageSize is the fixed number of assignments per listing page.
const AssignmentsPageSize = 9

// SubmissionStatusPending marks a submission that has not been graded yet.
const SubmissionStatusPending = "pending"

// DifficultyAll is the listing filter value that disables difficulty filtering.
const DifficultyAll = "all"
