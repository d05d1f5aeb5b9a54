//go:build uniondebug

package union

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"union-engine/internal/core"
)

type aborted string

func TestGetUnchecked_Checked(t *testing.T) {
	saved := core.Abort
	core.Abort = func(msg string) { panic(aborted(msg)) }
	defer func() { core.Abort = saved }()

	u := With(new(triple), "abc")

	assert.NotPanics(t, func() { GetUnchecked[string](u) })
	assert.PanicsWithValue(t,
		aborted("unchecked access to int while string is live in {int, string, union.resource}"),
		func() { GetUnchecked[int](u) })

	u.Reset()
	assert.PanicsWithValue(t,
		aborted("unchecked access to string while empty is live in {int, string, union.resource}"),
		func() { GetUnchecked[string](u) })
}
