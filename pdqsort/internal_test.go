package pdqsort

import (
	"cmp"
	"math/rand"
	"testing"
)

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func TestInsertHeadMovesFrontIntoSortedSuffix(t *testing.T) {
	v := []int{5, 1, 2, 3, 4}
	moved := insertHead(v, intCmp)
	if !moved {
		t.Fatal("expected insertHead to report a move")
	}
	if !isSorted(v) {
		t.Fatalf("v = %v is not sorted after insertHead", v)
	}
}

func TestInsertHeadNoOpWhenAlreadyInPlace(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	moved := insertHead(v, intCmp)
	if moved {
		t.Fatal("expected insertHead to report no move for an already-ordered prefix")
	}
	if !equalSlices(v, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("v was modified: %v", v)
	}
}

func TestInsertHeadHoleRestoresOnPanic(t *testing.T) {
	v := []int{9, 1, 2, 3, 4, 5}
	before := multiset(v)

	func() {
		defer func() { recover() }()
		calls := 0
		insertHead(v, func(a, b int) int {
			calls++
			if calls == 3 {
				panic("comparator blew up mid-shift")
			}
			return intCmp(a, b)
		})
	}()

	if !sameMultiset(before, multiset(v)) {
		t.Fatalf("hole guard failed to preserve elements: %v", v)
	}
}

func TestInsertionSortHandlesEmptyAndSingleton(t *testing.T) {
	var empty []int
	insertionSort(empty, intCmp)

	one := []int{42}
	insertionSort(one, intCmp)
	if one[0] != 42 {
		t.Fatal("singleton slice mutated")
	}
}

func TestPartialInsertionSortAbortsBeyondThreshold(t *testing.T) {
	// A fully reversed slice needs a fixup on every element, so this should
	// abort well before reaching the end and leave v unsorted.
	v := make([]int, 100)
	for i := range v {
		v[i] = len(v) - i
	}
	ok := partialInsertionSort(v, intCmp)
	if ok {
		t.Fatal("expected partialInsertionSort to give up on a reversed slice")
	}
}

func TestPartialInsertionSortSucceedsWhenNearlySorted(t *testing.T) {
	v := make([]int, 100)
	for i := range v {
		v[i] = i
	}
	// Displace exactly one element by one slot: a single fixup.
	v[50], v[51] = v[51], v[50]
	ok := partialInsertionSort(v, intCmp)
	if !ok {
		t.Fatal("expected partialInsertionSort to finish a nearly-sorted slice")
	}
	if !isSorted(v) {
		t.Fatalf("v = %v not sorted after successful partialInsertionSort", v)
	}
}

func TestHeapsortSorts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 200; n += 7 {
		v := randomInts(rng, n, 1000)
		heapsort(v, intCmp)
		if !isSorted(v) {
			t.Fatalf("n=%d: heapsort produced %v", n, v)
		}
	}
}

func TestIsPresortedDetectsAscending(t *testing.T) {
	v := []int{1, 2, 3, 4, 5}
	if !isPresorted(v, intCmp) {
		t.Fatal("ascending input should be detected as presorted")
	}
	if !isSorted(v) {
		t.Fatal("ascending input should be left untouched")
	}
}

func TestIsPresortedReversesDescending(t *testing.T) {
	v := []int{5, 4, 3, 2, 1}
	if !isPresorted(v, intCmp) {
		t.Fatal("descending input should be detected and reversed in place")
	}
	if !isSorted(v) {
		t.Fatalf("v = %v was not left ascending", v)
	}
}

func TestIsPresortedRejectsUnordered(t *testing.T) {
	v := []int{1, 3, 2, 4, 5}
	if isPresorted(v, intCmp) {
		t.Fatal("unordered input should not be reported as presorted")
	}
}

func TestBreakPatternsIsAPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 15, 64} {
		v := make([]int, n)
		for i := range v {
			v[i] = i
		}
		before := multiset(v)
		breakPatterns(v)
		if !sameMultiset(before, multiset(v)) {
			t.Fatalf("n=%d: breakPatterns changed the multiset", n)
		}
	}
}

func TestChoosePivotReturnsCenterIndex(t *testing.T) {
	v := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	mid := choosePivot(v, intCmp)
	if mid != len(v)/4*2 {
		t.Fatalf("choosePivot = %d, want %d", mid, len(v)/4*2)
	}
}

func TestPartitionSplitsAroundPivot(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 50; trial++ {
		n := 10 + rng.Intn(200)
		v := randomInts(rng, n, 500)
		pivotIdx := rng.Intn(n)
		pivotVal := v[pivotIdx]

		mid, _ := partition(v, pivotIdx, intCmp)

		if v[mid] != pivotVal {
			t.Fatalf("pivot value %d not found at reported split %d", pivotVal, mid)
		}
		for i := 0; i < mid; i++ {
			if intCmp(v[i], pivotVal) >= 0 {
				t.Fatalf("trial %d: left element %d at %d is not < pivot %d", trial, v[i], i, pivotVal)
			}
		}
		for i := mid + 1; i < n; i++ {
			if intCmp(v[i], pivotVal) < 0 {
				t.Fatalf("trial %d: right element %d at %d is < pivot %d", trial, v[i], i, pivotVal)
			}
		}
	}
}

func TestPartitionReportsAlreadyPartitioned(t *testing.T) {
	// Pivot (index 0, value 1) is already the smallest element, so the
	// left/right scan meets without partitionInBlocks ever running.
	v := []int{1, 2, 3, 4, 5}
	_, wasPartitioned := partition(v, 0, intCmp)
	if !wasPartitioned {
		t.Fatal("expected an already-ascending slice to report wasPartitioned=true")
	}
}

func TestPartitionEqualGroupsEqualElementsFirst(t *testing.T) {
	v := []int{3, 3, 3, 5, 3, 7, 3, 9}
	mid := partitionEqual(v, 0, intCmp)
	for i := 0; i < mid; i++ {
		if v[i] != 3 {
			t.Fatalf("expected v[%d]=3 in the equal partition, got %v", i, v)
		}
	}
	for i := mid; i < len(v); i++ {
		if v[i] <= 3 {
			t.Fatalf("expected v[%d]>3 in the greater partition, got %v", i, v)
		}
	}
}
