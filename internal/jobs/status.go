package jobs

import (
	"strings"
	"time"

	"DataSci/internal/mapreduce"
	"DataSci/internal/text"
	"DataSci/internal/types"
)

// DataScienceDayMapper emits (weekday, 1) for updates that contain "yo,".
func DataScienceDayMapper(update types.StatusUpdate) ([]mapreduce.KeyValue[time.Weekday, int], error) {
	if !strings.Contains(strings.ToLower(update.Text), "yo,") {
		return nil, nil
	}
	return []mapreduce.KeyValue[time.Weekday, int]{{Key: update.CreatedAt.Weekday(), Value: 1}}, nil
}

// DataScienceDays counts matching status updates per weekday.
func DataScienceDays(updates []types.StatusUpdate) ([]mapreduce.KeyValue[time.Weekday, int], error) {
	return mapreduce.MapReduce(updates, DataScienceDayMapper, mapreduce.SumReducer[time.Weekday, int]())
}

// WordsPerUserMapper emits (username, (word, 1)) for each word of an update.
func WordsPerUserMapper(update types.StatusUpdate) ([]mapreduce.KeyValue[string, text.Entry[string]], error) {
	words := text.Tokenize(update.Text)
	out := make([]mapreduce.KeyValue[string, text.Entry[string]], 0, len(words))
	for _, w := range words {
		out = append(out, mapreduce.KeyValue[string, text.Entry[string]]{
			Key:   update.Username,
			Value: text.Entry[string]{Key: w, Count: 1},
		})
	}
	return out, nil
}

// MostPopularWordReducer picks each user's most used word. Ties go to the
// word the user wrote first.
func MostPopularWordReducer(user string, wordCounts []text.Entry[string]) ([]mapreduce.KeyValue[string, text.Entry[string]], error) {
	counter := text.NewCounter[string]()
	for _, wc := range wordCounts {
		counter.Add(wc.Key, wc.Count)
	}
	top := counter.MostCommon(1)
	if len(top) == 0 {
		return nil, nil
	}
	return []mapreduce.KeyValue[string, text.Entry[string]]{{Key: user, Value: top[0]}}, nil
}

// MostPopularWords finds the favorite word of every user who posted.
func MostPopularWords(updates []types.StatusUpdate) ([]mapreduce.KeyValue[string, text.Entry[string]], error) {
	return mapreduce.MapReduce(updates, WordsPerUserMapper, MostPopularWordReducer)
}

// LikerMapper emits (username, liker) for every like of an update.
func LikerMapper(update types.StatusUpdate) ([]mapreduce.KeyValue[string, string], error) {
	out := make([]mapreduce.KeyValue[string, string], 0, len(update.LikedBy))
	for _, liker := range update.LikedBy {
		out = append(out, mapreduce.KeyValue[string, string]{Key: update.Username, Value: liker})
	}
	return out, nil
}

// DistinctLikers counts the distinct users who liked each poster.
func DistinctLikers(updates []types.StatusUpdate) ([]mapreduce.KeyValue[string, int], error) {
	return mapreduce.MapReduce(updates, LikerMapper, mapreduce.CountDistinctReducer[string, string]())
}
