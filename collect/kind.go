package collect

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Kind classifies a value for dispatch.
type Kind int

// Kinds reported by [Classify].
const (
	KindOther Kind = iota
	KindSequence
	KindMapping
	KindText
	KindNumber
	KindFunc
)

var kindNames = [...]string{"other", "sequence", "mapping", "text", "number", "func"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Classify reports the kind of v. Numeric-like text is still text; use
// [IsNumericLike] to test for numbers in either form.
func Classify(v any) Kind {
	switch v.(type) {
	case nil, bool:
		return KindOther
	case string:
		return KindText
	case []any:
		return KindSequence
	case *OrderedMap, map[string]any:
		return KindMapping
	}
	if _, ok := toFloat(v); ok {
		return KindNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
	case reflect.String:
		return KindText
	case reflect.Func:
		return KindFunc
	}
	return KindOther
}

// Collection is a container of one of the three iterable kinds. Values are
// obtained with [Of]; the set of implementations is closed.
type Collection interface {
	// Kind is KindSequence, KindMapping or KindText.
	Kind() Kind

	// Len returns the number of elements (characters for text).
	Len() int

	// Each calls fn(value, key) for every element in order. Keys are int
	// positions for sequences and text and string keys for mappings.
	Each(fn func(value, key any))

	// build returns an empty accumulator producing a result of this kind.
	build() builder
}

// builder accumulates a result of the same kind as the collection it came from.
type builder interface {
	add(key, value any)
	result() any
}

// Of wraps v as a Collection, reporting false when v is not a sequence,
// mapping or text. A nil *OrderedMap is not a collection.
func Of(v any) (Collection, bool) {
	switch t := v.(type) {
	case string:
		return text(t), true
	case []any:
		return sequence(t), true
	case *OrderedMap:
		if t == nil {
			return nil, false
		}
		return mapping{m: t}, true
	case map[string]any:
		return mapping{m: OrderedMapFrom(t), plain: true}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items, _ := sliceOf(v)
		return sequence(items), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return mapping{m: OrderedMapFrom(m), plain: true}, true
	case reflect.String:
		return text(rv.String()), true
	}
	return nil, false
}

// Iterate calls fn(value, key) for every element of a sequence, mapping or
// text. It reports false, without calling fn, for any other value.
func Iterate(v any, fn func(value, key any)) bool {
	c, ok := Of(v)
	if !ok {
		return false
	}
	c.Each(fn)
	return true
}

// values returns the elements of c in iteration order.
func values(c Collection) []any {
	out := make([]any, 0, c.Len())
	c.Each(func(v, _ any) { out = append(out, v) })
	return out
}

// sliceOf returns the elements of a sequence. Text is not a sequence here.
func sliceOf(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// strictEqual compares two values the way identity-based equality does:
// numbers by value across Go numeric types, slices, maps, funcs and
// pointers by identity, and other values with == when both are comparable
// at runtime. Values that are not comparable are never equal.
func strictEqual(a, b any) bool {
	if x, ok := toFloat(a); ok {
		y, ok := toFloat(b)
		return ok && x == y
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	switch ta.Kind() {
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	// A comparable static type can still hold an interface field with a slice
	// inside, so comparability is checked on the values.
	return reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() && a == b
}

// ─────────────────────────────────────────────────────────────────────────────
// Variants
// ─────────────────────────────────────────────────────────────────────────────

type sequence []any

func (s sequence) Kind() Kind { return KindSequence }
func (s sequence) Len() int   { return len(s) }

func (s sequence) Each(fn func(value, key any)) {
	for i, v := range s {
		fn(v, i)
	}
}

func (s sequence) build() builder { return &sequenceBuilder{out: make([]any, 0, len(s))} }

type sequenceBuilder struct{ out []any }

func (b *sequenceBuilder) add(_, value any) { b.out = append(b.out, value) }
func (b *sequenceBuilder) result() any      { return b.out }

type mapping struct {
	m     *OrderedMap
	plain bool
}

func (m mapping) Kind() Kind { return KindMapping }
func (m mapping) Len() int   { return m.m.Len() }

func (m mapping) Each(fn func(value, key any)) {
	m.m.Each(func(k string, v any) { fn(v, k) })
}

func (m mapping) build() builder { return &mappingBuilder{out: NewOrderedMap(), plain: m.plain} }

type mappingBuilder struct {
	out   *OrderedMap
	plain bool
}

func (b *mappingBuilder) add(key, value any) { b.out.Set(key.(string), value) }

func (b *mappingBuilder) result() any {
	if b.plain {
		return b.out.ToMap()
	}
	return b.out
}

type text string

func (t text) Kind() Kind { return KindText }
func (t text) Len() int   { return utf8.RuneCountInString(string(t)) }

func (t text) Each(fn func(value, key any)) {
	i := 0
	for _, r := range string(t) {
		fn(string(r), i)
		i++
	}
}

func (t text) build() builder { return &textBuilder{} }

type textBuilder struct{ sb strings.Builder }

func (b *textBuilder) add(_, value any) {
	switch v := value.(type) {
	case nil:
	case string:
		b.sb.WriteString(v)
	default:
		fmt.Fprint(&b.sb, v)
	}
}

func (b *textBuilder) result() any { return b.sb.String() }
