package rewrites

import (
	"errors"
	"slices"
	"testing"

	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/words"
)

type cell [3]uint8

func testAlphabet() words.Alphabet[cell] {
	var elements []cell
	for a := range uint8(2) {
		for b := range uint8(2) {
			for c := range uint8(2) {
				elements = append(elements, cell{a, b, c})
			}
		}
	}
	alphabet, err := words.NewAlphabet(cell{}, elements...)
	if err != nil {
		panic(err)
	}
	return alphabet
}

var (
	r  = words.RightMarker[cell]()
	l  = words.LeftMarker[cell]()
	zz = words.PairOf(cell{}, cell{})
	x  = words.PairOf(cell{1, 0, 1}, cell{})
	y  = words.PairOf(cell{0, 1, 0}, cell{1, 0, 0})
)

func shiftRight(at belts.Oracle[cell]) (cell, error) {
	a, b := at(0), at(-1)
	return cell{b[0], a[1], a[2]}, nil
}

var sampleWords = []words.Word[cell]{
	{zz, r, r, x, l, l, zz},
	{zz, r, r, x, l, l, r, r, r, r, x, words.PairOf(cell{0, 1, 0}, cell{}), l, zz, x, r, r, x, y, zz, l, zz},
	{zz, r, zz, x, zz, l},
	{zz, r, r, l, l, zz},
	{zz, r, y, zz, zz, x, l, zz},
}

func TestApplyCAIdentity(t *testing.T) {
	alphabet := testAlphabet()
	for _, word := range sampleWords {
		t.Run(word.String(), func(t *testing.T) {
			got, err := ApplyCA(belts.Identity[cell], alphabet, word)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, word) {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestApplyCAShift(t *testing.T) {
	word := words.Word[cell]{zz, r, r, x, l, l, zz}
	input := word.Clone()
	got, err := ApplyCA(shiftRight, testAlphabet(), word)
	if err != nil {
		t.Fatal(err)
	}
	expected := words.Word[cell]{
		zz, r, r,
		words.PairOf(cell{0, 0, 1}, cell{}),
		words.PairOf(cell{1, 0, 0}, cell{}),
		l, zz,
	}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %v", got)
	}
	if !slices.Equal(word, input) {
		t.Fatal("input mutated")
	}
}

func TestApplyCAWithoutWalls(t *testing.T) {
	// the run [3,4) is not walled, so padding is never turned back into markers
	word := words.Word[cell]{zz, r, zz, x, zz, l}
	got, err := ApplyCA(shiftRight, testAlphabet(), word)
	if err != nil {
		t.Fatal(err)
	}
	expected := words.Word[cell]{zz, r, zz, words.PairOf(cell{0, 0, 1}, cell{1, 0, 0}), zz, l}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %v", got)
	}
}

func TestApplyCAError(t *testing.T) {
	_, err := ApplyCA(func(at belts.Oracle[cell]) (cell, error) {
		return cell{}, errors.New("boom")
	}, testAlphabet(), words.Word[cell]{zz, r, r, x, l, l, zz})
	if err == nil {
		t.Fatal("should error")
	}
	if err.Error() != "run [2,5): belt position 0: boom" {
		t.Fatalf("got %v", err)
	}
}

func TestApplyCALengthPreserved(t *testing.T) {
	alphabet := testAlphabet()
	for _, word := range sampleWords {
		current := word
		for range 8 {
			next, err := ApplyCA(shiftRight, alphabet, current)
			if err != nil {
				t.Fatal(err)
			}
			if len(next) != len(word) {
				t.Fatalf("got length %d", len(next))
			}
			current = next
		}
	}
}

func move(shift int) Segment[cell] {
	return Segment[cell]{
		MinLength:   1,
		Patterns:    [][]cell{{{1, 0, 1}}},
		Shifts:      []int{shift},
		Permutation: []int{0},
	}
}

func TestSegment(t *testing.T) {
	word := words.Word[cell]{zz, r, r, x, l, l, zz}
	testCases := []struct {
		name     string
		segment  Segment[cell]
		expected words.Word[cell]
	}{
		{"identity", move(0), word},
		{"up", move(1), words.Word[cell]{zz, r, r, r, x, l, zz}},
		{"down", move(-1), words.Word[cell]{zz, r, x, l, l, l, zz}},
		{"onto bottom track", move(3), words.Word[cell]{zz, r, r, words.PairOf(cell{}, cell{1, 0, 1}), l, l, zz}},
		{"too short", func() Segment[cell] {
			s := move(1)
			s.MinLength = 4
			return s
		}(), word},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.segment.Apply(testAlphabet(), word)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tc.expected) {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestSegmentPermutation(t *testing.T) {
	segment := Segment[cell]{
		MinLength: 1,
		Patterns: [][]cell{
			{{1, 0, 1}},
			{{1, 1, 1}},
		},
		Shifts:      []int{0, 0},
		Permutation: []int{1, 0},
	}
	word := words.Word[cell]{zz, r, r, x, l, l, zz}
	got, err := segment.Apply(testAlphabet(), word)
	if err != nil {
		t.Fatal(err)
	}
	expected := words.Word[cell]{zz, r, r, words.PairOf(cell{1, 1, 1}, cell{}), l, l, zz}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %v", got)
	}
	back, err := segment.Apply(testAlphabet(), got)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(back, word) {
		t.Fatalf("got %v", back)
	}
}

func TestSegmentSkips(t *testing.T) {
	alphabet := testAlphabet()
	for _, word := range []words.Word[cell]{
		// no walls
		{zz, r, zz, x, zz, l},
		// no content
		{zz, r, r, l, l, zz},
		// more than the pattern on the belt
		{zz, r, r, x, x, l, zz},
		{zz, r, y, l, zz},
	} {
		t.Run(word.String(), func(t *testing.T) {
			got, err := move(1).Apply(alphabet, word)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, word) {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestSegmentChecks(t *testing.T) {
	alphabet := testAlphabet()
	noPattern := words.Word[cell]{zz, r, y, l, zz}

	s := move(1)
	s.Unique = true
	got, err := s.Apply(alphabet, noPattern)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, noPattern) {
		t.Fatalf("got %v", got)
	}

	s.Strict = true
	_, err = s.Apply(alphabet, noPattern)
	if !errors.Is(err, belts.ErrNoMatch) {
		t.Fatalf("got %v", err)
	}

	// unwalled runs are still skipped in strict mode
	_, err = s.Apply(alphabet, words.Word[cell]{zz, r, zz, x, zz, l})
	if err != nil {
		t.Fatal(err)
	}

	// the belt track reads 101 000 101 000, which holds the pattern at two rotations
	periodic := Segment[cell]{
		MinLength:   1,
		Patterns:    [][]cell{{{1, 0, 1}, {}, {1, 0, 1}}},
		Shifts:      []int{0},
		Permutation: []int{0},
	}
	word := words.Word[cell]{zz, r, x, words.PairOf(cell{}, cell{1, 0, 1}), l, zz}
	got, err = periodic.Apply(alphabet, word)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, word) {
		t.Fatalf("got %v", got)
	}
	periodic.Unique = true
	_, err = periodic.Apply(alphabet, word)
	if !errors.Is(err, belts.ErrAmbiguous) {
		t.Fatalf("got %v", err)
	}
}

func TestSegmentInvalidTable(t *testing.T) {
	for _, s := range []Segment[cell]{
		{Patterns: [][]cell{{{1}}}, Shifts: []int{}, Permutation: []int{0}},
		{Patterns: [][]cell{{{1}}}, Shifts: []int{0}, Permutation: []int{}},
		{Patterns: [][]cell{{{1}}}, Shifts: []int{0}, Permutation: []int{1}},
	} {
		_, err := s.Apply(testAlphabet(), words.Word[cell]{zz, r})
		if !errors.Is(err, ErrInvalidTable) {
			t.Fatalf("got %v", err)
		}
	}
}
