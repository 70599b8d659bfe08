// Package jobs holds the MapReduce applications: word counting, status
// update analyses and sparse matrix multiplication.
package jobs

import (
	"context"

	"DataSci/internal/mapreduce"
	"DataSci/internal/text"
)

// WordCount pairs a word with the number of documents containing it.
type WordCount = mapreduce.KeyValue[string, int]

// WordCountMapper emits (word, 1) for every distinct word in document.
func WordCountMapper(document string) ([]WordCount, error) {
	words := text.Tokenize(document)
	out := make([]WordCount, 0, len(words))
	for _, w := range words {
		out = append(out, WordCount{Key: w, Value: 1})
	}
	return out, nil
}

// WordCountReducer sums the counts for a word.
func WordCountReducer(word string, counts []int) ([]WordCount, error) {
	total := 0
	for _, c := range counts {
		total += c
	}
	return []WordCount{{Key: word, Value: total}}, nil
}

// CountWords runs the word count by hand: every mapper output is buffered in
// a collector before the reducer sees it.
func CountWords(documents []string) ([]WordCount, error) {
	var order []string
	collector := make(map[string][]int)
	for _, doc := range documents {
		pairs, err := WordCountMapper(doc)
		if err != nil {
			return nil, err
		}
		for _, kv := range pairs {
			if _, ok := collector[kv.Key]; !ok {
				order = append(order, kv.Key)
			}
			collector[kv.Key] = append(collector[kv.Key], kv.Value)
		}
	}

	var out []WordCount
	for _, word := range order {
		reduced, err := WordCountReducer(word, collector[word])
		if err != nil {
			return nil, err
		}
		out = append(out, reduced...)
	}
	return out, nil
}

// WordCountMR is CountWords expressed with the generic MapReduce.
func WordCountMR(documents []string) ([]WordCount, error) {
	return mapreduce.MapReduce(documents, WordCountMapper, WordCountReducer)
}

// RunWordCount executes the word count job on engine.
func RunWordCount(ctx context.Context, engine *mapreduce.Engine, documents []string) ([]WordCount, error) {
	return mapreduce.Run(ctx, engine, documents, WordCountMapper, WordCountReducer)
}
