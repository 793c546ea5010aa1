package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/wreath/belts"
	"github.com/reusee/wreath/words"
	"go.starlark.net/starlark"
)

func decodeInt(v starlark.Value) (int, error) {
	return starlark.AsInt32(v)
}

func pair(top, bottom int) words.Pair[int] {
	return words.Pair[int]{Top: top, Bottom: bottom}
}

func TestStarlarkRule(t *testing.T) {
	rule, err := Starlark[int]{
		Name: "sum.star",
		Source: `
def rule(at):
    return at(-1) + at(0) + at(1)
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}

	belt := belts.Belt[int]{pair(1, 0), pair(0, 0), pair(0, 0)}
	got, err := belts.Step(rule, belt)
	if err != nil {
		t.Fatal(err)
	}
	var track []int
	for pos := range got.Span() {
		track = append(track, got.Read(pos))
	}
	if str := fmt.Sprintf("%v", track); str != "[1 1 0 0 0 1]" {
		t.Fatalf("got %s", str)
	}
}

func TestStarlarkRuleMatchesGo(t *testing.T) {
	rule, err := Starlark[int]{
		Name: "shift.star",
		Source: `
def rule(at):
    return at(-1)
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	belt := belts.Belt[int]{pair(1, 4), pair(2, 5), pair(3, 6)}
	expected, err := belts.Step(func(at belts.Oracle[int]) (int, error) {
		return at(-1), nil
	}, belt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := belts.Step(rule, belt)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, expected) {
		t.Fatalf("got %v", got)
	}
}

func TestStarlarkErrors(t *testing.T) {
	_, err := Starlark[int]{
		Name:   "empty.star",
		Source: `x = 1`,
		Decode: decodeInt,
	}.Compile()
	if !errors.Is(err, ErrNoRule) {
		t.Fatalf("got %v", err)
	}

	_, err = Starlark[int]{
		Name:   "syntax.star",
		Source: `def rule(at`,
		Decode: decodeInt,
	}.Compile()
	if err == nil || !strings.Contains(err.Error(), "compile syntax.star") {
		t.Fatalf("got %v", err)
	}

	rule, err := Starlark[int]{
		Name: "fail.star",
		Source: `
def rule(at):
    fail("no")
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	_, err = belts.Step(rule, belts.Belt[int]{pair(0, 0)})
	if err == nil || !strings.Contains(err.Error(), "belt position 0: fail.star") {
		t.Fatalf("got %v", err)
	}

	rule, err = Starlark[int]{
		Name: "string.star",
		Source: `
def rule(at):
    return "x"
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	_, err = belts.Step(rule, belts.Belt[int]{pair(0, 0)})
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("got %v", err)
	}
}

func TestDigits(t *testing.T) {
	digits, err := Digits(starlark.Tuple{starlark.MakeInt(1), starlark.MakeInt(0)}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", digits); str != "[1 0]" {
		t.Fatalf("got %s", str)
	}
	for _, v := range []starlark.Value{
		starlark.MakeInt(1),
		starlark.NewList([]starlark.Value{starlark.MakeInt(1)}),
		starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)}),
		starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")}),
	} {
		if _, err := Digits(v, 2, 2); !errors.Is(err, ErrBadValue) {
			t.Fatalf("%v: got %v", v, err)
		}
	}
}

func TestStarlarkMaxSteps(t *testing.T) {
	_, err := Starlark[int]{
		Name: "loop.star",
		Source: `
while True:
    pass
`,
		Decode: decodeInt,
	}.Compile()
	if err == nil || !strings.Contains(err.Error(), "too many steps") {
		t.Fatalf("got %v", err)
	}

	rule, err := Starlark[int]{
		Name: "spin.star",
		Source: `
def rule(at):
    while True:
        pass
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	_, err = belts.Step(rule, belts.Belt[int]{pair(0, 0)})
	if err == nil || !strings.Contains(err.Error(), "too many steps") {
		t.Fatalf("got %v", err)
	}
}

func TestStarlarkStepsPerCall(t *testing.T) {
	defer func(n uint64) {
		MaxSteps = n
	}(MaxSteps)
	MaxSteps = 1000
	rule, err := Starlark[int]{
		Name: "count.star",
		Source: `
def rule(at):
    n = 0
    for i in range(50):
        n += 1
    return at(0)
`,
		Decode: decodeInt,
	}.Compile()
	if err != nil {
		t.Fatal(err)
	}
	belt := belts.Belt[int]{pair(1, 2)}
	for range 100 {
		belt, err = belts.Step(rule, belt)
		if err != nil {
			t.Fatal(err)
		}
	}
	if belt[0] != pair(1, 2) {
		t.Fatalf("got %v", belt)
	}
}
