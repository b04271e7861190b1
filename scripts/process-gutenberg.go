//go:build ignore

// Process raw Project Gutenberg downloads into corpus format.
// Usage: go run ./scripts/process-gutenberg.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Book metadata, keyed by the raw file's base name.
var books = map[string]struct {
	Title   string
	Author  string
	EbookID int
}{
	"macbeth":             {"Macbeth", "William Shakespeare", 1533},
	"hamlet":              {"Hamlet", "William Shakespeare", 1524},
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", 1342},
	"moby_dick":           {"Moby Dick", "Herman Melville", 2701},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", 74},
	"jane_eyre":           {"Jane Eyre", "Charlotte Bronte", 1260},
}

// maxBodyBytes caps each corpus file at a size the benchmark can chew
// through quickly. The cut lands on the first sentence end past the cap.
const maxBodyBytes = 50000

func main() {
	inDir := "testdata/gutenberg"

	files, err := filepath.Glob(filepath.Join(inDir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No raw files found. Download *_raw.txt files into testdata/gutenberg/ first.")
		os.Exit(1)
	}

	for _, rawFile := range files {
		baseName := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		meta, ok := books[baseName]
		if !ok {
			fmt.Printf("Skipping unknown book: %s\n", baseName)
			continue
		}

		outFile := filepath.Join(inDir, baseName+".txt")
		fmt.Printf("Processing %s...\n", baseName)
		if err := processBook(rawFile, outFile, meta.Title, meta.Author, meta.EbookID); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", baseName, err)
			continue
		}
		fmt.Printf("  -> %s\n", outFile)
	}

	fmt.Println("\nDone! Corpus files created in testdata/gutenberg/")
}

func processBook(inPath, outPath, title, author string, ebookID int) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	body := cleanBody(stripBoilerplate(string(content)))
	body = truncateAtSentence(body, maxBodyBytes)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: https://www.gutenberg.org/ebooks/%d\n", ebookID)
	fmt.Fprintf(w, "# Author: %s\n", author)
	fmt.Fprintf(w, "# Title: %s\n", title)
	fmt.Fprintf(w, "\n")
	w.WriteString(body)
	w.WriteString("\n")

	return w.Flush()
}

// stripBoilerplate removes the Project Gutenberg license text surrounding
// the book body.
func stripBoilerplate(text string) string {
	startPatterns := []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
	}
	for _, pattern := range startPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			if eol := strings.Index(text[idx:], "\n"); eol != -1 {
				text = text[idx+eol+1:]
			}
			break
		}
	}

	endPatterns := []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}
	for _, pattern := range endPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			text = text[:idx]
			break
		}
	}
	return text
}

var (
	chapterRe      = regexp.MustCompile(`(?m)^(Chapter|CHAPTER|ACT|SCENE)\s+([IVXLC]+|[0-9]+)[\.\]\s]`)
	illustrationRe = regexp.MustCompile(`\[Illustration[^\]]*\]`)
	multiBlankRe   = regexp.MustCompile(`\n{3,}`)
)

// cleanBody normalizes line endings, drops front matter before the first
// chapter or act marker, and joins wrapped lines back into paragraphs.
func cleanBody(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if loc := chapterRe.FindStringIndex(text); loc != nil && loc[0] < 50000 {
		text = text[loc[0]:]
	}

	text = illustrationRe.ReplaceAllString(text, "")
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	var paragraphs []string
	var paragraph strings.Builder
	flush := func() {
		if paragraph.Len() > 0 {
			paragraphs = append(paragraphs, paragraph.String())
			paragraph.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			flush()
			continue
		}
		if paragraph.Len() > 0 {
			paragraph.WriteString(" ")
		}
		paragraph.WriteString(line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}

// truncateAtSentence cuts the body at the first sentence end past limit.
func truncateAtSentence(body string, limit int) string {
	if len(body) <= limit {
		return body
	}
	for i := limit; i < len(body)-1 && i < limit+1000; i++ {
		switch body[i] {
		case '.', '!', '?':
			if body[i+1] == ' ' || body[i+1] == '\n' {
				return body[:i+1]
			}
		}
	}
	return body[:limit]
}
