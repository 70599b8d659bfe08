package mapreduce_test

import (
	"fmt"

	"DataSci/internal/mapreduce"
)

func ExampleMapReduce() {
	type post struct {
		User   string
		Likers []string
	}

	likes := []post{
		{"bgroveben", []string{"some_guy", "some_gal", "some_guy"}},
		{"some_gal", []string{"bgroveben"}},
	}

	mapper := func(u post) ([]mapreduce.KeyValue[string, string], error) {
		var out []mapreduce.KeyValue[string, string]
		for _, l := range u.Likers {
			out = append(out, mapreduce.KeyValue[string, string]{Key: u.User, Value: l})
		}
		return out, nil
	}

	out, err := mapreduce.MapReduce(likes, mapper, mapreduce.CountDistinctReducer[string, string]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, kv := range out {
		fmt.Println(kv.Key, kv.Value)
	}
	// Output:
	// bgroveben 2
	// some_gal 1
}
