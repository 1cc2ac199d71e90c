package pullstreams

import (
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestEach(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	sum := 0

	summer := func(elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		sum += elem
	}

	Each(ints, summer)

	is.Equal(sum, 15)
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	summer := func(elem int, index uint64, acc int) int {
		is.Equal(index, uint64(elem-1))

		return acc + elem
	}

	result := Reduce(ints, 0, summer)

	is.Equal(result, 15)
}

func TestCount(t *testing.T) {
	is := is.New(t)

	strs := Produce([]string{"foo", "bar", "baz"})

	is.Equal(Count(strs), uint64(3))
}

func TestSum(t *testing.T) {
	is := is.New(t)

	evens := Filter(ProduceRange(0, 10), even)

	is.Equal(Sum(evens), 20)
}

func TestSum_Floats(t *testing.T) {
	is := is.New(t)

	floats := Produce([]float64{0.5, 1.5, 2.0})

	is.Equal(Sum(floats), 4.0)
}

func TestMin(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{3, 1, 2, 4, 5})

	min, ok := Min(ints)
	is.True(ok)
	is.Equal(min, 1)
}

func TestMax(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{3, 1, 5, 4, 2})

	max, ok := Max(ints)
	is.True(ok)
	is.Equal(max, 5)
}

func TestMin_Empty(t *testing.T) {
	is := is.New(t)

	_, ok := Min(Produce[int]())
	is.True(!ok)
}

func TestAnyMatch(t *testing.T) {
	tests := []struct {
		given             []int
		want              bool
		wantUpstreamPulls int
	}{
		{
			given:             []int{1, 2, 3, 4, 5},
			want:              false,
			wantUpstreamPulls: 6,
		},
		{
			given:             []int{1, 2, 100, 4, 5},
			want:              true,
			wantUpstreamPulls: 3,
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			pulls := 0

			ints := Produce(test.given)

			counted := func() (int, bool) {
				pulls++
				return ints()
			}

			expectedIndex := uint64(0)

			greaterThan10 := func(elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem > 10
			}

			is.Equal(AnyMatch[int](counted, greaterThan10), test.want)
			is.Equal(pulls, test.wantUpstreamPulls)
		})
	}
}

func TestAllMatch(t *testing.T) {
	tests := []struct {
		given             []int
		want              bool
		wantUpstreamPulls int
	}{
		{
			given:             []int{1, 2, 3, 4, 5},
			want:              true,
			wantUpstreamPulls: 6,
		},
		{
			given:             []int{1, 2, 100, 4, 5},
			want:              false,
			wantUpstreamPulls: 3,
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			pulls := 0

			ints := Produce(test.given)

			counted := func() (int, bool) {
				pulls++
				return ints()
			}

			expectedIndex := uint64(0)

			lessThan10 := func(elem int, index uint64) bool {
				is.Equal(index, expectedIndex)
				expectedIndex++

				return elem < 10
			}

			is.Equal(AllMatch[int](counted, lessThan10), test.want)
			is.Equal(pulls, test.wantUpstreamPulls)
		})
	}
}

func TestNoneMatch(t *testing.T) {
	is := is.New(t)

	ints := Produce([]int{1, 2, 3, 4, 5})

	is.True(NoneMatch(ints, func(elem int, _ uint64) bool {
		return elem > 10
	}))
}

// Re-running a terminal operation on an exhausted chain yields the identity result.
func TestTerminal_IdempotentExhaustion(t *testing.T) {
	is := is.New(t)

	ints := Filter(Produce([]int{1, 2, 3, 4, 5}), even)

	is.Equal(Sum(ints), 6)

	is.Equal(Count(ints), uint64(0))
	is.Equal(Sum(ints), 0)
	is.Equal(ReduceSlice(ints), nil)
	is.True(!AnyMatch(ints, even))
	is.True(AllMatch(ints, even))
	is.True(NoneMatch(ints, even))
}
