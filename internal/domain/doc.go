// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/donation,
// domain/organization). This root package holds the sentinel errors and the
// field-level ValidationError shared by all of them.
package domain
