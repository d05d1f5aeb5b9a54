package union

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion_Take(t *testing.T) {
	l := &ledger{}
	a := With(new(triple), newResource(l, "moved"))
	require.Equal(t, 1, l.constructed)

	b := a.Take()

	assert.False(t, a.HasAnyValue())
	require.True(t, Has[resource](b))
	assert.Equal(t, "moved", Find[resource](b).Name)
	assert.Equal(t, 1, l.constructed)
	assert.Zero(t, l.destroyed)

	a.Reset()
	assert.Zero(t, l.destroyed)

	b.Reset()
	assert.Equal(t, 1, l.destroyed)
}

func TestUnion_TakeEmpty(t *testing.T) {
	var a triple

	b := a.Take()
	assert.False(t, a.HasAnyValue())
	assert.False(t, b.HasAnyValue())
}

func TestUnion_Clone(t *testing.T) {
	l := &ledger{}
	a := With(new(triple), newResource(l, "orig"))

	b := a.Clone()

	require.True(t, Has[resource](a))
	require.True(t, Has[resource](b))
	assert.Equal(t, a.TypeIndex(), b.TypeIndex())
	assert.Equal(t, Find[resource](a).Name, Find[resource](b).Name)
	assert.Equal(t, 2, l.constructed)
	assert.Equal(t, 1, l.cloned)

	Find[resource](b).Name = "copy"
	assert.Equal(t, "orig", Find[resource](a).Name)

	a.Reset()
	b.Reset()
	assert.Zero(t, l.alive())

	ints := With(new(Of2[int, string]), 9)
	assert.True(t, Equal(ints, ints.Clone()))
	assert.False(t, new(triple).Clone().HasAnyValue())
}

func TestUnion_SelfAssign(t *testing.T) {
	l := &ledger{}
	a := With(new(triple), newResource(l, "self"))

	a.CopyFrom(a)
	assert.Equal(t, "self", Find[resource](a).Name)

	a.MoveFrom(a)
	assert.Equal(t, "self", Find[resource](a).Name)

	assert.Equal(t, 1, l.constructed)
	assert.Zero(t, l.destroyed)
}

func TestUnion_CopyFrom(t *testing.T) {
	tests := []struct {
		name          string
		dst, src      func(l *ledger) *triple
		wantDestroyed int
		wantCloned    int
		wantTag       func(u *triple) bool
	}{
		{
			name:          "empty source resets",
			dst:           func(l *ledger) *triple { return With(new(triple), newResource(l, "old")) },
			src:           func(*ledger) *triple { return new(triple) },
			wantDestroyed: 1,
			wantTag:       func(u *triple) bool { return !u.HasAnyValue() },
		},
		{
			name:          "different alternative replaces",
			dst:           func(l *ledger) *triple { return With(new(triple), newResource(l, "old")) },
			src:           func(*ledger) *triple { return With(new(triple), 5) },
			wantDestroyed: 1,
			wantTag:       func(u *triple) bool { return Has[int](u) && *Find[int](u) == 5 },
		},
		{
			name:       "empty destination constructs",
			dst:        func(*ledger) *triple { return new(triple) },
			src:        func(l *ledger) *triple { return With(new(triple), newResource(l, "new")) },
			wantCloned: 1,
			wantTag:    func(u *triple) bool { return Has[resource](u) && Find[resource](u).Name == "new" },
		},
		{
			name:          "same alternative without Assign destroys and clones",
			dst:           func(l *ledger) *triple { return With(new(triple), newResource(l, "old")) },
			src:           func(l *ledger) *triple { return With(new(triple), newResource(l, "new")) },
			wantDestroyed: 1,
			wantCloned:    1,
			wantTag:       func(u *triple) bool { return Find[resource](u).Name == "new" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			dst, src := tt.dst(l), tt.src(l)
			srcTag := src.TypeIndex()

			dst.CopyFrom(src)

			assert.True(t, tt.wantTag(dst))
			assert.Equal(t, srcTag, src.TypeIndex(), "copy source must be unchanged")
			assert.Equal(t, tt.wantDestroyed, l.destroyed)
			assert.Equal(t, tt.wantCloned, l.cloned)

			dst.Reset()
			src.Reset()
			assert.Zero(t, l.alive(), "every constructed value is destroyed exactly once")
		})
	}
}

func TestUnion_CopyFromUsesAssign(t *testing.T) {
	dst := With(new(Of2[buffer, int]), buffer{data: make([]byte, 0, 16)})
	src := With(new(Of2[buffer, int]), buffer{data: []byte("payload")})
	before := cap(Find[buffer](dst).data)

	dst.CopyFrom(src)

	got := Find[buffer](dst)
	assert.Equal(t, []byte("payload"), got.data)
	assert.Equal(t, 1, got.assigns)
	assert.Equal(t, before, cap(got.data))

	got.data[0] = 'P'
	assert.Equal(t, []byte("payload"), Find[buffer](src).data)
}

func TestUnion_MoveFrom(t *testing.T) {
	tests := []struct {
		name          string
		dst, src      func(l *ledger) *triple
		wantDestroyed int
		wantTag       func(u *triple) bool
	}{
		{
			name:          "empty source resets",
			dst:           func(l *ledger) *triple { return With(new(triple), newResource(l, "old")) },
			src:           func(*ledger) *triple { return new(triple) },
			wantDestroyed: 1,
			wantTag:       func(u *triple) bool { return !u.HasAnyValue() },
		},
		{
			name:          "different alternative replaces",
			dst:           func(*ledger) *triple { return With(new(triple), "old") },
			src:           func(l *ledger) *triple { return With(new(triple), newResource(l, "new")) },
			wantDestroyed: 0,
			wantTag:       func(u *triple) bool { return Find[resource](u).Name == "new" },
		},
		{
			name:          "same alternative",
			dst:           func(l *ledger) *triple { return With(new(triple), newResource(l, "old")) },
			src:           func(l *ledger) *triple { return With(new(triple), newResource(l, "new")) },
			wantDestroyed: 1,
			wantTag:       func(u *triple) bool { return Find[resource](u).Name == "new" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}
			dst, src := tt.dst(l), tt.src(l)
			constructed := l.constructed

			dst.MoveFrom(src)

			assert.True(t, tt.wantTag(dst))
			assert.False(t, src.HasAnyValue(), "move source is always left empty")
			assert.Equal(t, tt.wantDestroyed, l.destroyed)
			assert.Equal(t, constructed, l.constructed)
			assert.Zero(t, l.cloned)

			dst.Reset()
			src.Reset()
			assert.Zero(t, l.alive())
		})
	}
}

func TestUnion_CrossTypeChurn(t *testing.T) {
	l := &ledger{}
	u := new(triple)

	for i := range 10 {
		switch i % 3 {
		case 0:
			Set(u, newResource(l, "r"))
		case 1:
			Set(u, i)
		case 2:
			Set(u, "s")
		}
	}

	u.Reset()
	assert.Equal(t, 4, l.constructed)
	assert.Equal(t, 4, l.destroyed)
}

func TestSetCopy_FromOwnSlot(t *testing.T) {
	l := &ledger{}
	u := With(new(triple), newResource(l, "x"))

	SetCopy(u, *Find[resource](u))

	require.True(t, Has[resource](u))
	assert.Equal(t, "x", Find[resource](u).Name)
	assert.Equal(t, 2, l.constructed)
	assert.Equal(t, 1, l.destroyed)

	u.Reset()
	assert.Equal(t, 2, l.destroyed)
	assert.Zero(t, l.alive())
}

func TestSetCopy_FromOtherUnion(t *testing.T) {
	l := &ledger{}
	src := With(new(triple), newResource(l, "shared"))
	dst := With(new(triple), 7)

	SetCopy(dst, *Find[resource](src))

	assert.Equal(t, "shared", Find[resource](dst).Name)
	assert.Equal(t, 1, l.cloned)

	src.Reset()
	dst.Reset()
	assert.Equal(t, 2, l.destroyed)
	assert.Zero(t, l.alive())
}

func TestSet_TakesOwnership(t *testing.T) {
	l := &ledger{}
	u := With(new(triple), newResource(l, "old"))

	Set(u, newResource(l, "new"))
	assert.Equal(t, 1, l.destroyed)

	u.Reset()
	assert.Equal(t, 2, l.destroyed)
	assert.Zero(t, l.alive())
}

func TestUnion_CloneIsShallowWithoutHook(t *testing.T) {
	plain := With(new(Of2[[]int, string]), []int{1, 2})
	dup := plain.Clone()
	(*Find[[]int](dup))[0] = 9
	assert.Equal(t, []int{9, 2}, *Find[[]int](plain))

	hooked := With(new(Of2[buffer, string]), buffer{data: []byte("ab")})
	deep := hooked.Clone()
	Find[buffer](deep).data[0] = 'z'
	assert.Equal(t, []byte("ab"), Find[buffer](hooked).data)
}
