package seq

import (
	"errors"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ib-77/mte/pkg/mte"
)

func present(v int) bool {
	return v%3 != 0
}

func TestValuesKeepPresentElementsInOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("MaybeValues yields exactly the present values in order", prop.ForAll(
		func(values []int) bool {
			src := make([]mte.Maybe[int], 0, len(values))
			want := make([]int, 0, len(values))
			for _, v := range values {
				if present(v) {
					src = append(src, mte.ValueOf(v))
					want = append(want, v)
				} else {
					src = append(src, mte.None[int]())
				}
			}
			return slices.Equal(want, slices.Collect(MaybeValues(slices.Values(src))))
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("TryValues skips every failure", prop.ForAll(
		func(values []int) bool {
			src := make([]mte.Try[int], 0, len(values))
			count := 0
			for _, v := range values {
				if present(v) {
					src = append(src, mte.Value(v))
					count++
				} else {
					src = append(src, mte.Error[int](errors.New("skipped")))
				}
			}
			return len(slices.Collect(TryValues(slices.Values(src)))) == count &&
				len(slices.Collect(TryErrors(slices.Values(src)))) == len(values)-count
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("LeftValues and RightValues partition the input", prop.ForAll(
		func(values []int) bool {
			src := make([]mte.Either[int, int], 0, len(values))
			for _, v := range values {
				if present(v) {
					src = append(src, mte.Left[int, int](v))
				} else {
					src = append(src, mte.Right[int](v))
				}
			}
			lefts := slices.Collect(LeftValues(slices.Values(src)))
			rights := slices.Collect(RightValues(slices.Values(src)))
			return len(lefts)+len(rights) == len(values)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
