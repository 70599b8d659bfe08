package grep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"DataSci/internal/mapreduce"
)

// Document is a named piece of text to search.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Match is a matched line and the documents it was found in.
type Match struct {
	Line      string   `json:"line"`
	Documents []string `json:"documents"`
}

// String renders a match as "line -> [doc1, doc2]".
func (m Match) String() string {
	return fmt.Sprintf("%s -> [%s]", m.Line, strings.Join(m.Documents, ", "))
}

// DistributedGrep handles grep operations using MapReduce.
type DistributedGrep struct {
	pattern string
	regex   *regexp.Regexp
}

// NewDistributedGrep creates a new DistributedGrep instance.
func NewDistributedGrep(pattern string) (*DistributedGrep, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}

	return &DistributedGrep{
		pattern: pattern,
		regex:   regex,
	}, nil
}

// Pattern returns the expression being searched for.
func (dg *DistributedGrep) Pattern() string {
	return dg.pattern
}

// Map emits (line, document name) for every matching line of doc.
func (dg *DistributedGrep) Map(doc Document) ([]mapreduce.KeyValue[string, string], error) {
	var results []mapreduce.KeyValue[string, string]

	scanner := bufio.NewScanner(strings.NewReader(doc.Text))
	// a line can be as long as the whole document
	scanner.Buffer(make([]byte, 0, 64*1024), len(doc.Text)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if dg.regex.MatchString(line) {
			results = append(results, mapreduce.KeyValue[string, string]{
				Key:   line,
				Value: doc.Name,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", doc.Name, err)
	}
	return results, nil
}

// Reduce combines all occurrences of a matched line from different documents.
func (dg *DistributedGrep) Reduce(line string, names []string) ([]Match, error) {
	if len(names) == 0 {
		return nil, nil
	}
	return []Match{{Line: line, Documents: names}}, nil
}

// Search runs the grep job over docs on engine. Matches come back in the
// order their lines were first seen.
func (dg *DistributedGrep) Search(ctx context.Context, engine *mapreduce.Engine, docs []Document) ([]Match, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents provided")
	}
	return mapreduce.Run(ctx, engine, docs, dg.Map, dg.Reduce)
}

// LoadDocuments reads files and, recursively, directories into documents
// named by their path.
func LoadDocuments(paths []string) ([]Document, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		docs = append(docs, Document{Name: f, Text: string(data)})
	}
	return docs, nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.Walk(path, func(p string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if f.IsDir() {
				return nil
			}
			files = append(files, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found in the given paths")
	}

	return files, nil
}

// PrintResults writes one match per line to w.
func PrintResults(w io.Writer, matches []Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found")
		return
	}

	for _, m := range matches {
		fmt.Fprintln(w, m)
	}
}
