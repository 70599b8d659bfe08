package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"DataSci/internal/coordinator"
	"DataSci/internal/dataset"
	"DataSci/internal/gradient"
	"DataSci/internal/grep"
	"DataSci/internal/jobs"
	"DataSci/internal/linalg"
	"DataSci/internal/ml"
	"DataSci/internal/network"
	"DataSci/internal/nlp"
	"DataSci/internal/probability"
	"DataSci/internal/salary"
	"DataSci/internal/stats"
	"DataSci/internal/types"
)

// runDemo prints every walkthrough to w.
func runDemo(ctx context.Context, w io.Writer, coord *coordinator.Coordinator, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	sections := []struct {
		title string
		run   func() error
	}{
		{"Key connectors", func() error { return demoNetwork(w) }},
		{"Salaries and tenure", func() error { demoSalaries(w); return nil }},
		{"MapReduce", func() error { return demoMapReduce(ctx, w, coord) }},
		{"Statistics", func() error { return demoStats(w) }},
		{"Probability", func() error { demoProbability(w); return nil }},
		{"Gradient descent", func() error { return demoGradient(ctx, w, rng) }},
		{"Model evaluation", func() error { return demoML(w, rng) }},
		{"Natural language", func() error { return demoNLP(w, rng) }},
	}

	for _, s := range sections {
		fmt.Fprintf(w, "== %s ==\n", s.title)
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(s.title), err)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func demoNetwork(w io.Writer) error {
	g, err := network.NewGraph(dataset.Users(), dataset.Friendships())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "total connections: %d\n", g.TotalConnections())
	fmt.Fprintf(w, "average connections: %.1f\n", g.AverageConnections())

	top := g.NumFriendsByID()
	if len(top) > 3 {
		top = top[:3]
	}
	for _, d := range top {
		fmt.Fprintf(w, "user %d has %d friends\n", d.ID, d.Count)
	}

	fmt.Fprintf(w, "friends of friends of 0 (naive): %v\n", g.FriendsOfFriendIDsBad(0))
	fmt.Fprintf(w, "friends of friends of 3: %v\n", g.FriendsOfFriendIDs(3).MostCommon(0))

	idx := network.NewInterestIndex(dataset.Interests())
	fmt.Fprintf(w, "users who like Java: %v\n", idx.DataScientistsWhoLike("Java"))
	fmt.Fprintf(w, "shared interests with 3: %v\n", idx.MostCommonInterestsWith(3).MostCommon(0))
	fmt.Fprintf(w, "popular topic words: %v\n", network.TopicWordCounts(dataset.Interests(), 2))
	return nil
}

func demoSalaries(w io.Writer) {
	averages := salary.AverageSalaryByBucket(dataset.SalariesAndTenures())
	for _, bucket := range []string{salary.BucketUnderTwo, salary.BucketTwoToFive, salary.BucketOverFive} {
		fmt.Fprintf(w, "%s: %.2f\n", bucket, averages[bucket])
	}
	fmt.Fprintf(w, "paid prediction accuracy: %.2f\n", salary.RuleAccuracy(dataset.Accounts()))
}

func demoMapReduce(ctx context.Context, w io.Writer, coord *coordinator.Coordinator) error {
	run, counts, err := coord.SubmitWordCount(ctx, dataset.Documents())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "word count (%s): %v\n", run.ID, counts)

	days, err := jobs.DataScienceDays(dataset.StatusUpdates())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\"yo,\" updates by weekday: %v\n", days)

	words, err := jobs.MostPopularWords(dataset.StatusUpdates())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "most popular word per user: %v\n", words)

	likers, err := jobs.DistinctLikers(dataset.StatusUpdates())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "distinct likers: %v\n", likers)

	product, err := jobs.MatrixMultiply(3, dataset.MatrixEntries())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sparse A x B: %v\n", product)

	docs := make([]grep.Document, 0, len(dataset.StatusUpdates()))
	for _, u := range dataset.StatusUpdates() {
		docs = append(docs, grep.Document{Name: u.Username, Text: u.Text})
	}
	_, matches, err := coord.SubmitGrep(ctx, "(?i)bgroveben", docs)
	if err != nil {
		return err
	}
	grep.PrintResults(w, matches)
	return nil
}

func demoStats(w io.Writer) error {
	g, err := network.NewGraph(dataset.Users(), dataset.Friendships())
	if err != nil {
		return err
	}
	var friends []float64
	for _, u := range g.Users() {
		friends = append(friends, float64(g.NumberOfFriends(u.ID)))
	}
	summary, err := stats.Summarize(friends)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "friend counts: %+v\n", summary)

	var salaries, tenures []float64
	for _, r := range dataset.SalariesAndTenures() {
		salaries = append(salaries, r.Salary)
		tenures = append(tenures, r.Tenure)
	}
	corr, err := stats.Correlation(tenures, salaries)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tenure/salary correlation: %.3f\n", corr)
	return nil
}

func demoProbability(w io.Writer) {
	fmt.Fprintf(w, "P(Z <= 1.96) = %.4f\n", probability.NormalCDF(1.96, 0, 1))
	fmt.Fprintf(w, "z for 97.5%% = %.4f\n", probability.InverseNormalCDF(0.975, 0, 1, probability.DefaultTolerance))
}

func demoGradient(ctx context.Context, w io.Writer, rng *rand.Rand) error {
	start := make(linalg.Vector, 3)
	for i := range start {
		start[i] = rng.Float64()*20 - 10
	}
	theta, err := gradient.MinimizeBatch(ctx, gradient.SumOfSquares, gradient.SumOfSquaresGradient, start, gradient.DefaultTolerance)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "minimum of sum of squares from %.2f: %.4f\n", start, theta)
	return nil
}

func demoML(w io.Writer, rng *rand.Rand) error {
	records := dataset.Accounts()
	train, test := ml.SplitData(rng, records, 0.75)
	fmt.Fprintf(w, "split %d accounts into %d train / %d test\n", len(records), len(train), len(test))

	var tp, fp, fn, tn int
	for _, r := range records {
		predicted := salary.PredictPaidOrUnpaid(r.YearsExperience) == salary.Paid
		switch {
		case predicted && r.Paid:
			tp++
		case predicted && !r.Paid:
			fp++
		case !predicted && r.Paid:
			fn++
		default:
			tn++
		}
	}
	for _, m := range []struct {
		name string
		fn   func(int, int, int, int) (float64, error)
	}{
		{"accuracy", ml.Accuracy},
		{"precision", ml.Precision},
		{"recall", ml.Recall},
		{"f1", ml.F1Score},
	} {
		v, err := m.fn(tp, fp, fn, tn)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", m.name, err)
			continue
		}
		fmt.Fprintf(w, "%s: %.2f\n", m.name, v)
	}

	rescaled, err := ml.Rescale(salaryMatrix(dataset.SalariesAndTenures()))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "first rescaled salary row: %.3f\n", rescaled[0])
	return nil
}

func salaryMatrix(records []types.SalaryTenure) linalg.Matrix {
	m := make(linalg.Matrix, len(records))
	for i, r := range records {
		m[i] = linalg.Vector{r.Salary, r.Tenure}
	}
	return m
}

func demoNLP(w io.Writer, rng *rand.Rand) error {
	var corpus []string
	for _, u := range dataset.StatusUpdates() {
		corpus = append(corpus, strings.TrimSuffix(u.Text, "?")+".")
	}
	words := append([]string{"."}, nlp.Words(strings.Join(corpus, " "))...)

	sentence, err := nlp.GenerateUsingBigrams(rng, nlp.Bigrams(words))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bigram sentence: %s\n", sentence)

	starts, transitions := nlp.Trigrams(words)
	sentence, err = nlp.GenerateUsingTrigrams(rng, starts, transitions)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "trigram sentence: %s\n", sentence)

	tokens, err := nlp.GenerateSentence(rng, nlp.DefaultGrammar())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "grammar sentence: %s\n", strings.Join(tokens, " "))

	vocab := nlp.Bigrams(words)
	keys := make([]string, 0, len(vocab))
	for k := range vocab {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(w, "vocabulary size: %d\n", len(keys))
	return nil
}
