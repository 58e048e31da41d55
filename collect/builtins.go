package collect

import "math"

// Default returns a new Registry holding every operation of this package
// under its conventional name: inArray, filter, map, product, unique, range,
// reduce, flatten, shuffle, sum, max and min.
//
// Arguments are positional. Callbacks may be an [Iteratee], a [ReduceFunc]
// or the equivalent plain func types. For reduce, passing a third argument,
// even nil, supplies a seed; omitting it does not.
func Default() *Registry {
	r := NewRegistry()
	for _, h := range builtins() {
		// Built-in handlers always carry a name and a func.
		_ = r.Register(h)
	}
	return r
}

func builtins() []Handler {
	return []Handler{
		{
			Name: "inArray",
			Fn: func(args ...any) (any, error) {
				from, _ := ParseNumericLike(arg(args, 2))
				return InArray(arg(args, 0), arg(args, 1), int(from)), nil
			},
			Validate: argIs(1, KindSequence),
			Default:  -1,
		},
		{
			Name: "filter",
			Fn: func(args ...any) (any, error) {
				return Filter(arg(args, 0), iterateeArg(arg(args, 1)), contextArg(args, 2)...), nil
			},
			Validate: argIs(0, KindSequence, KindMapping, KindText),
		},
		{
			Name: "map",
			Fn: func(args ...any) (any, error) {
				return Map(arg(args, 0), iterateeArg(arg(args, 1)), contextArg(args, 2)...), nil
			},
			Validate: argIs(0, KindSequence, KindMapping, KindText),
		},
		{
			Name:     "product",
			Fn:       func(args ...any) (any, error) { return Product(arg(args, 0)), nil },
			Validate: argIs(0, KindSequence),
		},
		{
			Name:     "unique",
			Fn:       func(args ...any) (any, error) { return Unique(arg(args, 0), Truthy(arg(args, 1))), nil },
			Validate: argIs(0, KindSequence),
		},
		{
			Name: "range",
			Fn: func(args ...any) (any, error) {
				if len(args) > 2 {
					return Range(arg(args, 0), arg(args, 1), args[2]), nil
				}
				return Range(arg(args, 0), arg(args, 1)), nil
			},
			Default: []any{},
		},
		{
			Name: "reduce",
			Fn: func(args ...any) (any, error) {
				seed := None()
				if len(args) > 2 {
					seed = Some(args[2])
				}
				return Reduce(arg(args, 0), reduceFuncArg(arg(args, 1)), seed, Truthy(arg(args, 3)))
			},
			Validate: argIs(0, KindSequence),
		},
		{
			Name:     "flatten",
			Fn:       func(args ...any) (any, error) { return Flatten(arg(args, 0)), nil },
			Validate: argIs(0, KindSequence),
			Default:  []any{},
		},
		{
			Name:     "shuffle",
			Fn:       func(args ...any) (any, error) { return Shuffle(arg(args, 0)), nil },
			Validate: argIs(0, KindSequence),
		},
		{
			Name:    "sum",
			Fn:      func(args ...any) (any, error) { return Sum(arg(args, 0)), nil },
			Default: math.NaN(),
		},
		{
			Name: "max",
			Fn: func(args ...any) (any, error) {
				return Max(arg(args, 0), iterateeArg(arg(args, 1)), contextArg(args, 2)...), nil
			},
		},
		{
			Name: "min",
			Fn: func(args ...any) (any, error) {
				return Min(arg(args, 0), iterateeArg(arg(args, 1)), contextArg(args, 2)...), nil
			},
		},
	}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func argIs(i int, kinds ...Kind) Validator {
	return func(args ...any) bool {
		k := Classify(arg(args, i))
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

func contextArg(args []any, i int) []Option {
	if i < len(args) {
		return []Option{WithContext(args[i])}
	}
	return nil
}

func iterateeArg(v any) Iteratee {
	switch fn := v.(type) {
	case Iteratee:
		return fn
	case func(Visit) any:
		return fn
	}
	return nil
}

func reduceFuncArg(v any) ReduceFunc {
	switch fn := v.(type) {
	case ReduceFunc:
		return fn
	case func(acc, value any, index int, array any) any:
		return fn
	}
	return nil
}
