package network

import (
	"DataSci/internal/text"
	"DataSci/internal/types"
)

// InterestIndex indexes interests by topic and by user.
type InterestIndex struct {
	interests []types.Interest
	byTopic   map[string][]int
	byUser    map[int][]string
}

func NewInterestIndex(interests []types.Interest) *InterestIndex {
	idx := &InterestIndex{
		interests: interests,
		byTopic:   make(map[string][]int),
		byUser:    make(map[int][]string),
	}
	for _, in := range interests {
		idx.byTopic[in.Topic] = append(idx.byTopic[in.Topic], in.UserID)
		idx.byUser[in.UserID] = append(idx.byUser[in.UserID], in.Topic)
	}
	return idx
}

// DataScientistsWhoLike scans every interest for topic.
func (idx *InterestIndex) DataScientistsWhoLike(topic string) []int {
	var ids []int
	for _, in := range idx.interests {
		if in.Topic == topic {
			ids = append(ids, in.UserID)
		}
	}
	return ids
}

func (idx *InterestIndex) UserIDsByInterest(topic string) []int {
	return append([]int(nil), idx.byTopic[topic]...)
}

func (idx *InterestIndex) InterestsByUserID(id int) []string {
	return append([]string(nil), idx.byUser[id]...)
}

// MostCommonInterestsWith counts, for every other user, how many of the
// user's interests they share.
func (idx *InterestIndex) MostCommonInterestsWith(id int) *text.Counter[int] {
	c := text.NewCounter[int]()
	for _, topic := range idx.byUser[id] {
		for _, other := range idx.byTopic[topic] {
			if other != id {
				c.Add(other, 1)
			}
		}
	}
	return c
}

// TopicWordCounts counts the lowercase words of every topic and keeps those
// seen at least minCount times, most common first.
func TopicWordCounts(interests []types.Interest, minCount int) []text.Entry[string] {
	c := text.NewCounter[string]()
	for _, in := range interests {
		c.AddAll(text.SplitWords(in.Topic))
	}

	var out []text.Entry[string]
	for _, e := range c.MostCommon(0) {
		if e.Count >= minCount {
			out = append(out, e)
		}
	}
	return out
}
