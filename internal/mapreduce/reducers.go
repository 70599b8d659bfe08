package mapreduce

import "cmp"

// Number is the set of value types SumReducer can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ReduceWith applies agg to values and pairs the result with key.
func ReduceWith[K comparable, V any, R any](agg func([]V) R, key K, values []V) []KeyValue[K, R] {
	return []KeyValue[K, R]{{Key: key, Value: agg(values)}}
}

// ValuesReducer turns a function over values into a reducer.
func ValuesReducer[K comparable, V any, R any](agg func([]V) R) Reducer[K, V, KeyValue[K, R]] {
	return func(key K, values []V) ([]KeyValue[K, R], error) {
		return ReduceWith(agg, key, values), nil
	}
}

func SumReducer[K comparable, N Number]() Reducer[K, N, KeyValue[K, N]] {
	return ValuesReducer[K](func(values []N) N {
		var total N
		for _, v := range values {
			total += v
		}
		return total
	})
}

func MaxReducer[K comparable, V cmp.Ordered]() Reducer[K, V, KeyValue[K, V]] {
	return ValuesReducer[K](func(values []V) V {
		var best V
		for i, v := range values {
			if i == 0 || v > best {
				best = v
			}
		}
		return best
	})
}

func MinReducer[K comparable, V cmp.Ordered]() Reducer[K, V, KeyValue[K, V]] {
	return ValuesReducer[K](func(values []V) V {
		var best V
		for i, v := range values {
			if i == 0 || v < best {
				best = v
			}
		}
		return best
	})
}

// CountDistinctReducer counts the distinct values seen for each key.
func CountDistinctReducer[K comparable, V comparable]() Reducer[K, V, KeyValue[K, int]] {
	return ValuesReducer[K](func(values []V) int {
		seen := make(map[V]struct{}, len(values))
		for _, v := range values {
			seen[v] = struct{}{}
		}
		return len(seen)
	})
}
