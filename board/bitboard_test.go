package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func mustParse(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	is.True(b.None())
	is.True(!b.Any())
	is.Equal(b.Count(), 0)
	for idx := uint8(0); idx < 64; idx++ {
		sq, _ := SquareFromIndex(idx)
		is.True(!b.Get(sq))
	}
}

func TestMembership(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	e4 := mustParse(t, "e4")
	prior := b.Set(e4)
	is.True(!prior)
	is.True(b.Get(e4))
	// every other square is untouched
	for idx := uint8(0); idx < 64; idx++ {
		sq, _ := SquareFromIndex(idx)
		if sq != e4 {
			is.True(!b.Get(sq))
		}
	}
}

func TestSetClearIdempotence(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	d4 := mustParse(t, "d4")

	is.True(!b.Set(d4))
	is.True(b.Set(d4)) // second set reports the already-set state
	is.True(b.Get(d4))

	is.True(b.Clear(d4))
	is.True(!b.Clear(d4))
	is.True(!b.Get(d4))
}

func TestPut(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	a1 := mustParse(t, "a1")
	is.True(!b.Put(a1, true))
	is.True(b.Get(a1))
	is.True(b.Put(a1, false))
	is.True(!b.Get(a1))
	is.True(!b.Put(a1, false))
}

func TestCardinality(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	for _, s := range []string{"a1", "b2", "c3", "d4"} {
		b.Set(mustParse(t, s))
	}
	is.Equal(b.Count(), 4)
	is.True(b.Any())
	is.True(!b.None())

	members := 0
	for idx := uint8(0); idx < 64; idx++ {
		sq, _ := SquareFromIndex(idx)
		if b.Get(sq) {
			members++
		}
	}
	is.Equal(members, b.Count())
}

func TestRawPattern(t *testing.T) {
	is := is.New(t)
	b := Bitboard(0x8000000000000001)
	is.Equal(b.Count(), 2)
	is.True(b.Get(mustParse(t, "a1")))
	is.True(b.Get(mustParse(t, "h8")))
}

func TestSingletonConversion(t *testing.T) {
	is := is.New(t)
	for idx := uint8(0); idx < 64; idx++ {
		sq, _ := SquareFromIndex(idx)
		back, err := BitboardFromSquare(sq).Square()
		is.NoErr(err)
		is.Equal(back, sq)
	}

	var empty Bitboard
	_, err := empty.Square()
	is.True(errors.Is(err, ErrNotSingleton))

	two := BitboardFromSquare(mustParse(t, "a1")) | BitboardFromSquare(mustParse(t, "h8"))
	_, err = two.Square()
	is.True(errors.Is(err, ErrNotSingleton))
}

func TestSquares(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	b.Set(mustParse(t, "h8"))
	b.Set(mustParse(t, "a1"))
	b.Set(mustParse(t, "d4"))
	sqs := b.Squares()
	is.Equal(len(sqs), 3)
	// ascending index order
	is.Equal(sqs[0].String(), "a1")
	is.Equal(sqs[1].String(), "d4")
	is.Equal(sqs[2].String(), "h8")
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	b.Set(mustParse(t, "a1"))
	b.Set(mustParse(t, "h1"))
	b.Set(mustParse(t, "a8"))
	expected := "1 0 0 0 0 0 0 1\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0\n" +
		"1 0 0 0 0 0 0 0\n"
	is.Equal(b.String(), expected)
}

func TestScenario(t *testing.T) {
	is := is.New(t)
	var b Bitboard
	for _, s := range []string{"a1", "h8", "d4"} {
		b.Set(mustParse(t, s))
	}
	is.Equal(b.Count(), 3)
	b.Clear(mustParse(t, "d4"))
	is.Equal(b.Count(), 2)
	is.True(!b.Get(mustParse(t, "d4")))
	is.True(b.Get(mustParse(t, "a1")))
	is.True(b.Get(mustParse(t, "h8")))
}
