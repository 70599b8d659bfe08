package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Data science", []string{"data", "science"}},
		{"Yo, imma be geekin my brainz out, howboudah?", []string{"yo", "imma", "be", "geekin", "my", "brainz", "out", "howboudah"}},
		{"don't stop, don't", []string{"don't", "stop"}},
		{"", []string{}},
	}

	for _, c := range cases {
		if got := Tokenize(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCounterMostCommon(t *testing.T) {
	c := NewCounter(0, 1, 2, 0)

	if c.Get(0) != 2 || c.Get(1) != 1 || c.Get(7) != 0 {
		t.Fatalf("unexpected counts: %v", c.Map())
	}

	want := []Entry[int]{{0, 2}, {1, 1}, {2, 1}}
	if got := c.MostCommon(0); !reflect.DeepEqual(got, want) {
		t.Fatalf("MostCommon(0) = %v, want %v", got, want)
	}
	if got := c.MostCommon(1); !reflect.DeepEqual(got, want[:1]) {
		t.Fatalf("MostCommon(1) = %v, want %v", got, want[:1])
	}
	if c.Total() != 4 || c.Len() != 3 {
		t.Fatalf("Total = %d, Len = %d", c.Total(), c.Len())
	}
}

func TestWordCountOld(t *testing.T) {
	c := WordCountOld([]string{"data science", "big data", "science fiction"})

	want := map[string]int{"data": 2, "science": 2, "big": 1, "fiction": 1}
	if got := c.Map(); !reflect.DeepEqual(got, want) {
		t.Fatalf("WordCountOld = %v, want %v", got, want)
	}
	if keys := c.Keys(); !reflect.DeepEqual(keys, []string{"data", "science", "big", "fiction"}) {
		t.Fatalf("Keys = %v", keys)
	}
}

func TestSplitWords(t *testing.T) {
	got := SplitWords("Big Data  big")
	want := []string{"big", "data", "big"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitWords = %v, want %v", got, want)
	}
}
