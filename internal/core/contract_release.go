//go:build !uniondebug

package core

// Checked enables the tag check of unchecked accessors.
// Build with -tags uniondebug to turn it on.
const Checked = false
