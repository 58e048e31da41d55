package collect_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-arrayx/collect"
)

func isEven(v collect.Visit) any { return int(collect.ToNumber(v.Value))%2 == 0 }

func TestFilterSequence(t *testing.T) {
	in := []any{1, 2, 3, 4, 5, 6}
	got := collect.Filter(in, isEven)
	assertEqual(t, got, []any{2, 4, 6})
	assertEqual(t, in, []any{1, 2, 3, 4, 5, 6})
}

func TestFilterTypedSlice(t *testing.T) {
	got := collect.Filter([]int{1, 2, 3, 4}, isEven)
	assertEqual(t, got, []any{2, 4})
}

func TestFilterNoneMatch(t *testing.T) {
	got := collect.Filter([]any{1, 3}, isEven)
	assertEqual(t, got, []any{})
}

func TestFilterText(t *testing.T) {
	got := collect.Filter("hello", func(v collect.Visit) any { return v.Value != "l" })
	assertEqual(t, got, "heo")
}

func TestFilterPlainMap(t *testing.T) {
	got := collect.Filter(map[string]any{"a": 1, "b": 2, "c": 4}, isEven)
	assertEqual(t, got, map[string]any{"b": 2, "c": 4})
}

func TestFilterOrderedMap(t *testing.T) {
	m := collect.NewOrderedMap().Set("z", 2).Set("y", 3).Set("x", 4)
	got, ok := collect.Filter(m, isEven).(*collect.OrderedMap)
	if !ok {
		t.Fatalf("Filter(*OrderedMap) returned %T", got)
	}
	assertEqual(t, got.Keys(), []string{"z", "x"})
	assertEqual(t, got.ToMap(), map[string]any{"z": 2, "x": 4})
}

func TestFilterTruthiness(t *testing.T) {
	got := collect.Filter([]any{"a", "", "b"}, func(v collect.Visit) any { return v.Value })
	assertEqual(t, got, []any{"a", "b"})
}

func TestMapSequence(t *testing.T) {
	in := []any{1, 2, 3}
	got := collect.Map(in, func(v collect.Visit) any { return collect.ToNumber(v.Value) * 10 })
	assertEqual(t, got, []any{10.0, 20.0, 30.0})
}

func TestMapText(t *testing.T) {
	got := collect.Map("abc", func(v collect.Visit) any {
		return strings.ToUpper(v.Value.(string))
	})
	assertEqual(t, got, "ABC")
}

func TestMapTextJoinsNonStrings(t *testing.T) {
	got := collect.Map("abc", func(v collect.Visit) any {
		if v.Key == 1 {
			return nil
		}
		return v.Key
	})
	assertEqual(t, got, "02")
}

func TestMapKeepsKeySet(t *testing.T) {
	m := collect.NewOrderedMap().Set("b", 1).Set("a", 2)
	got := collect.Map(m, func(v collect.Visit) any { return v.Key }).(*collect.OrderedMap)
	assertEqual(t, got.Keys(), m.Keys())
	assertEqual(t, got.ToMap(), map[string]any{"b": "b", "a": "a"})

	plain := collect.Map(map[string]int{"x": 1}, func(v collect.Visit) any { return v.Value })
	assertEqual(t, plain, map[string]any{"x": 1})
}

func TestTransformVisit(t *testing.T) {
	var visits []collect.Visit
	record := func(v collect.Visit) any {
		visits = append(visits, v)
		return true
	}

	collect.Filter("ab", record, collect.WithContext("ctx"))
	assertEqual(t, visits, []collect.Visit{
		{Value: "a", Key: 0, Container: "ab", Context: "ctx"},
		{Value: "b", Key: 1, Container: "ab", Context: "ctx"},
	})

	visits = nil
	collect.Map([]any{"x"}, record)
	if visits[0].Context != nil {
		t.Fatalf("Context = %v; want nil when unbound", visits[0].Context)
	}
}

func TestTransformRejects(t *testing.T) {
	if got := collect.Filter([]any{1}, nil); got != nil {
		t.Fatalf("Filter(nil fn) = %v; want nil", got)
	}
	if got := collect.Map(42, isEven); got != nil {
		t.Fatalf("Map(42) = %v; want nil", got)
	}
}

func TestTransformPanicPropagates(t *testing.T) {
	calls := 0
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recover() = %v; want boom", r)
		}
		if calls != 2 {
			t.Fatalf("calls = %d; want traversal aborted after 2", calls)
		}
	}()
	collect.Map([]any{1, 2, 3}, func(v collect.Visit) any {
		calls++
		if v.Key == 1 {
			panic("boom")
		}
		return v.Value
	})
}
