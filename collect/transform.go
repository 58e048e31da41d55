package collect

import "github.com/hasbyte1/go-arrayx/arr"

// Visit describes one element handed to an [Iteratee].
type Visit struct {
	// Value is the element. For text it is a one-character string.
	Value any
	// Key is the int position for sequences and text, the string key for mappings.
	Key any
	// Container is the value the operation was called with. Text is passed
	// whole, not as the current character.
	Container any
	// Context is the value bound with [WithContext], or nil.
	Context any
}

// Iteratee is the callback used by [Filter], [Map], [Max] and [Min].
type Iteratee func(Visit) any

// Filter returns the elements of target for which fn returns a truthy value
// (see [Truthy]), as a container of the same kind:
//
//   - a sequence yields []any in original order
//   - a mapping yields the subset of entries under their original keys,
//     as a *OrderedMap for a *OrderedMap input and as map[string]any otherwise
//   - text yields the concatenation of the kept characters
//
// Filter returns nil when fn is nil or target is not a collection. fn is
// called exactly once per element, in iteration order.
func Filter(target any, fn Iteratee, opts ...Option) any {
	if items, ok := sliceOf(target); ok && fn != nil {
		ctx := newOptions(opts).context
		return arr.Filter(items, func(value any, i int) bool {
			return Truthy(fn(Visit{Value: value, Key: i, Container: target, Context: ctx}))
		})
	}
	return transform(target, fn, opts, func(b builder, v Visit, result any) {
		if Truthy(result) {
			b.add(v.Key, v.Value)
		}
	})
}

// Map replaces every element of target with fn's result, keeping the
// container kind, length and key set. Results for text are rendered with
// fmt.Sprint (nil renders as nothing) and joined into one string.
//
// Map returns nil when fn is nil or target is not a collection.
func Map(target any, fn Iteratee, opts ...Option) any {
	if items, ok := sliceOf(target); ok && fn != nil {
		ctx := newOptions(opts).context
		return arr.Map(items, func(value any, i int) any {
			return fn(Visit{Value: value, Key: i, Container: target, Context: ctx})
		})
	}
	return transform(target, fn, opts, func(b builder, v Visit, result any) {
		b.add(v.Key, result)
	})
}

func transform(target any, fn Iteratee, opts []Option, emit func(builder, Visit, any)) any {
	if fn == nil {
		return nil
	}
	c, ok := Of(target)
	if !ok {
		return nil
	}
	o := newOptions(opts)
	b := c.build()
	c.Each(func(value, key any) {
		v := Visit{Value: value, Key: key, Container: target, Context: o.context}
		emit(b, v, fn(v))
	})
	return b.result()
}
