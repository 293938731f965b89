package result

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold_Identity(t *testing.T) {
	t.Parallel()

	up := strings.ToUpper
	first := func(d ErrorDetail) string { return strings.ToLower(d[0].Message) }

	assert.Equal(t, "YAY!", Fold(Success[string, ErrorDetail]("yay!"), up, first))
	assert.Equal(t, "boo", Fold(FailMsg[string]("BOO"), up, first))
}

func TestFoldSafe_CatchesPanics(t *testing.T) {
	t.Parallel()

	r := Success[int, ErrorDetail](1)
	out := FoldSafe(r,
		func(v int) string { panic("fold blew up") },
		func(d ErrorDetail) string { return d.String() },
		DetailProducer)

	require.True(t, out.IsFailure())
	assert.Equal(t, "fold blew up", out.Err()[0].Message)
}

func TestFoldSafe_CarriesProducerForward(t *testing.T) {
	t.Parallel()

	r := SuccessWith(2, DetailProducer)
	out := FoldSafe(r,
		func(v int) int { return v * 10 },
		func(d ErrorDetail) int { return -1 },
		nil)

	require.True(t, out.IsSuccess())
	assert.Equal(t, 20, out.Result())
	assert.True(t, out.HasProducer(), "instance producer must thread through the fold")

	// and the threaded producer keeps the next safe call armed
	next := MapSafe(out, func(v int) int { panic("later") }, nil)
	require.True(t, next.IsFailure())
	assert.Equal(t, "later", next.Err()[0].Message)
}

func TestFoldSafe_DegradesWithoutProducer(t *testing.T) {
	t.Parallel()

	out := FoldSafe(FailMsg[int]("e"),
		func(v int) string { return "s" },
		func(d ErrorDetail) string { return "handled: " + d[0].Message },
		nil)

	require.True(t, out.IsSuccess(), "no boundary requested, fold result is wrapped as-is")
	assert.Equal(t, "handled: e", out.Result())
	assert.False(t, out.HasProducer())

	assert.Panics(t, func() {
		FoldSafe(Success[int, ErrorDetail](1),
			func(v int) string { panic("unguarded") },
			func(d ErrorDetail) string { return "" },
			nil)
	}, "without a producer anywhere, panics still propagate")
}

func TestMap_Scenarios(t *testing.T) {
	t.Parallel()

	got := Map(Success[string, ErrorDetail]("yay!"), strings.ToUpper).
		GetOrElse(func() string { return "boo" })
	assert.Equal(t, "YAY!", got)

	got = Map(FailMsg[string]("e"), strings.ToUpper).
		GetOrElse(func() string { return "boo" })
	assert.Equal(t, "boo", got)
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()

	f := FailMsg[int]("e")
	mapped := Map(f, func(v int) string { return "?" })

	require.True(t, mapped.IsFailure())
	assert.Equal(t, f.Err(), mapped.Err())
	assert.Equal(t, f.Id(), mapped.Id(), "retype keeps metadata")
}

func TestMapSafe(t *testing.T) {
	t.Parallel()

	out := MapSafe(Success[int, ErrorDetail](1), func(v int) int { panic("map blew up") }, DetailProducer)
	require.True(t, out.IsFailure())
	assert.Equal(t, "map blew up", out.Err()[0].Message)

	ok := MapSafe(Success[int, ErrorDetail](2), func(v int) int { return v + 1 }, DetailProducer)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 3, ok.Result())
	assert.True(t, ok.HasProducer())
}

func TestFlatMap_ShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()

	f := FailMsg[int]("e")
	called := false
	out := FlatMap(f, func(v int) StringResult[string] {
		called = true
		return Success[string, ErrorDetail]("never")
	})

	require.True(t, out.IsFailure())
	assert.Equal(t, f.Err(), out.Err())
	assert.False(t, called)
}

func TestFlatMap_FlattensOneLevel(t *testing.T) {
	t.Parallel()

	out := FlatMap(Success[int, ErrorDetail](3), func(v int) StringResult[string] {
		if v > 0 {
			return Success[string, ErrorDetail]("pos")
		}
		return FailMsg[string]("neg")
	})

	require.True(t, out.IsSuccess())
	assert.Equal(t, "pos", out.Result())
}

func TestFlatMapSafe(t *testing.T) {
	t.Parallel()

	out := FlatMapSafe(Success[int, ErrorDetail](1),
		func(v int) StringResult[int] { panic("flatmap blew up") },
		DetailProducer)
	require.True(t, out.IsFailure())
	assert.Equal(t, "flatmap blew up", out.Err()[0].Message)

	// a producer-less Success from the callback gets re-armed
	armed := FlatMapSafe(SuccessWith(1, DetailProducer),
		func(v int) StringResult[int] { return Success[int, ErrorDetail](v + 1) },
		nil)
	require.True(t, armed.IsSuccess())
	assert.True(t, armed.HasProducer())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	nested := Success[StringResult[int], ErrorDetail](Success[int, ErrorDetail](314))
	flat := Flatten(nested)
	require.True(t, flat.IsSuccess())
	assert.Equal(t, 314, flat.Result())

	boo := FailMsg[StringResult[int]]("boo")
	out := Flatten(boo)
	require.True(t, out.IsFailure())
	assert.Equal(t, boo.Err(), out.Err())
}

func TestSafeFamily_NeverPanicsWithProducer(t *testing.T) {
	t.Parallel()

	r := SuccessWith("v", DetailProducer)

	assert.NotPanics(t, func() {
		_ = MapSafe(r, func(s string) string { panic("a") }, nil)
		_ = FlatMapSafe(r, func(s string) StringResult[string] { panic("b") }, nil)
		_ = FoldSafe(r, func(s string) int { panic("c") }, func(d ErrorDetail) int { panic("d") }, nil)
		_ = r.ForeachSafe(func(s string) { panic("e") }, nil)
	})
}
