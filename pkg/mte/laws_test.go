package mte

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func drawMaybe(t *rapid.T) Maybe[int] {
	value := rapid.Int().Draw(t, "value")
	if rapid.Bool().Draw(t, "hasValue") {
		return ValueOf(value)
	}
	return None[int]()
}

func TestValueOfRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		d := rapid.Int().Draw(t, "d")

		if ValueOf(x).ValueOrZero() != x {
			t.Fatalf("ValueOf(%d).ValueOrZero() lost the value", x)
		}
		if None[int]().ValueOrDefault(d) != d {
			t.Fatalf("None().ValueOrDefault(%d) did not return the default", d)
		}
	})
}

func TestMaybeTryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")

		if !MaybeEqual(ValueOf(x).AsTry().AsMaybe(), ValueOf(x)) {
			t.Fatalf("ValueOf(%d).AsTry().AsMaybe() changed the value", x)
		}
		if Value(x).AsMaybe().AsTry().Value() != x {
			t.Fatalf("Value(%d).AsMaybe().AsTry() changed the value", x)
		}
	})
}

func TestOrIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := drawMaybe(t)
		if !MaybeEqual(m.Or(m), m) {
			t.Fatalf("%v.Or(itself) = %v", m, m.Or(m))
		}

		res := Value(rapid.Int().Draw(t, "v"))
		if !TryEqual(res.Or(res), res) {
			t.Fatalf("%v.Or(itself) = %v", res, res.Or(res))
		}
	})
}

func TestInvertIsAnInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var e Either[int, string]
		if rapid.Bool().Draw(t, "isRight") {
			e = Right[int](rapid.String().Draw(t, "right"))
		} else {
			e = Left[int, string](rapid.Int().Draw(t, "left"))
		}

		if !EitherEqual(e.Invert().Invert(), e) {
			t.Fatalf("double Invert changed %v", e)
		}
		if !EitherEqualInverted(e, e.Invert()) {
			t.Fatalf("%v is not equal to its inverted form", e)
		}
	})
}

func TestFailuresCompareEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Error[int](errors.New(rapid.String().Draw(t, "a")))
		b := Error[int](errors.New(rapid.String().Draw(t, "b")))
		v := Value(rapid.Int().Draw(t, "v"))

		if !TryEqual(a, b) || TryCompare(a, b) != 0 {
			t.Fatal("failures must compare equal")
		}
		if TryCompare(a, v) >= 0 {
			t.Fatal("failures must sort before successes")
		}
	})
}
