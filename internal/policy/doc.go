// Package policy defines the prohibited-word rules applied to commit messages.
//
// The rule list is fixed at compile time and evaluated in order:
//
//   - [Rules]: The built-in rules in evaluation order
//   - [FirstMatch]: Scan a message, first matching rule wins
//   - [Remediation]: The advice line printed after a match
//
// Matching is case-insensitive and whole-word. A prohibited word that only
// occurs inside a larger word (for example "anthropics") does not match.
package policy
