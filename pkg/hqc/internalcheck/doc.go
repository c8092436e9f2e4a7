// Package internalcheck holds AST-based static checks enforced on the
// rest of the module by a test run rather than a linter configuration.
// It is not part of the public API.
package internalcheck
