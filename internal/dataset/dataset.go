// Package dataset holds the small fixed datasets the analyses run on.
package dataset

import (
	"time"

	"DataSci/internal/types"
)

// Users rhyme with their ids.
func Users() []types.User {
	return []types.User{
		{ID: 0, Name: "Hero"},
		{ID: 1, Name: "Dunn"},
		{ID: 2, Name: "Sue"},
		{ID: 3, Name: "Chi"},
		{ID: 4, Name: "Thor"},
		{ID: 5, Name: "Clive"},
		{ID: 6, Name: "Hicks"},
		{ID: 7, Name: "Devin"},
		{ID: 8, Name: "Kate"},
		{ID: 9, Name: "Klein"},
	}
}

func Friendships() []types.Friendship {
	return []types.Friendship{
		{A: 0, B: 1}, {A: 0, B: 2}, {A: 1, B: 2}, {A: 1, B: 3}, {A: 2, B: 3}, {A: 3, B: 4},
		{A: 4, B: 5}, {A: 5, B: 6}, {A: 5, B: 7}, {A: 6, B: 8}, {A: 7, B: 8}, {A: 8, B: 9},
	}
}

func Interests() []types.Interest {
	raw := []struct {
		id    int
		topic string
	}{
		{0, "Hadoop"}, {0, "Big Data"}, {0, "HBase"}, {0, "Java"},
		{0, "Spark"}, {0, "Storm"}, {0, "Cassandra"},
		{1, "NoSQL"}, {1, "MongoDB"}, {1, "Cassandra"}, {1, "HBase"},
		{1, "Postgres"}, {2, "Python"}, {2, "scikit-learn"}, {2, "scipy"},
		{2, "numpy"}, {2, "statsmodels"}, {2, "pandas"}, {3, "R"}, {3, "Python"},
		{3, "statistics"}, {3, "regression"}, {3, "probability"},
		{4, "machine learning"}, {4, "regression"}, {4, "decision trees"},
		{4, "libsvm"}, {5, "Python"}, {5, "R"}, {5, "Java"}, {5, "C++"},
		{5, "Haskell"}, {5, "programming languages"}, {6, "statistics"},
		{6, "probability"}, {6, "mathematics"}, {6, "theory"},
		{7, "machine learning"}, {7, "scikit-learn"}, {7, "Mahout"},
		{7, "neural networks"}, {8, "neural networks"}, {8, "deep learning"},
		{8, "Big Data"}, {8, "artificial intelligence"}, {9, "Hadoop"},
		{9, "Java"}, {9, "MapReduce"}, {9, "Big Data"},
	}

	out := make([]types.Interest, len(raw))
	for i, r := range raw {
		out[i] = types.Interest{UserID: r.id, Topic: r.topic}
	}
	return out
}

func SalariesAndTenures() []types.SalaryTenure {
	return []types.SalaryTenure{
		{Salary: 83000, Tenure: 8.7}, {Salary: 88000, Tenure: 8.1},
		{Salary: 48000, Tenure: 0.7}, {Salary: 76000, Tenure: 6},
		{Salary: 69000, Tenure: 6.5}, {Salary: 76000, Tenure: 7.5},
		{Salary: 60000, Tenure: 2.5}, {Salary: 83000, Tenure: 10},
		{Salary: 48000, Tenure: 1.9}, {Salary: 63000, Tenure: 4.2},
	}
}

// Accounts pairs years of experience with whether the account is paid.
func Accounts() []types.AccountRecord {
	return []types.AccountRecord{
		{YearsExperience: 0.7, Paid: true},
		{YearsExperience: 1.9, Paid: false},
		{YearsExperience: 2.5, Paid: true},
		{YearsExperience: 4.2, Paid: false},
		{YearsExperience: 6, Paid: false},
		{YearsExperience: 6.5, Paid: false},
		{YearsExperience: 7.5, Paid: false},
		{YearsExperience: 8.1, Paid: false},
		{YearsExperience: 8.7, Paid: true},
		{YearsExperience: 10, Paid: true},
	}
}

func StatusUpdates() []types.StatusUpdate {
	return []types.StatusUpdate{
		{
			ID:        1,
			Username:  "bgroveben",
			Text:      "Yo, imma be geekin my brainz out, howboudah?",
			CreatedAt: time.Date(2017, 2, 15, 3, 30, 0, 0, time.UTC),
			LikedBy:   []string{"some_guy", "some_gal", "cousin_tavo"},
		},
		{
			ID:        2,
			Username:  "cousin_tavo",
			Text:      "Yo, user bgroveben has very little respect for grammar!",
			CreatedAt: time.Date(2017, 2, 16, 4, 30, 0, 0, time.UTC),
			LikedBy:   []string{"some_guy", "some_gal", "bgroveben"},
		},
		{
			ID:        3,
			Username:  "some_gal",
			Text:      "Yo, stop worrying about petty things and focus on the task at hand, people.",
			CreatedAt: time.Date(2017, 2, 17, 5, 15, 0, 0, time.UTC),
			LikedBy:   []string{"some_guy", "bgroveben", "cousin_tavo"},
		},
	}
}

// MatrixEntries describes A = [[3, 2, 0]] and B = [[4, -1, 0], [10, 0, 0]] sparsely.
func MatrixEntries() []types.MatrixEntry {
	return []types.MatrixEntry{
		{Matrix: "A", I: 0, J: 0, Value: 3}, {Matrix: "A", I: 0, J: 1, Value: 2},
		{Matrix: "B", I: 0, J: 0, Value: 4}, {Matrix: "B", I: 0, J: 1, Value: -1}, {Matrix: "B", I: 1, J: 0, Value: 10},
	}
}

// Documents is a tiny corpus for the word count walkthrough.
func Documents() []string {
	return []string{"data science", "big data", "science fiction"}
}
