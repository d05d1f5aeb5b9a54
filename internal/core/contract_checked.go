//go:build uniondebug

package core

// Checked enables the tag check of unchecked accessors.
const Checked = true
