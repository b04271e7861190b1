package bench

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFile = `# Source: https://www.gutenberg.org/ebooks/1524
# Author: William Shakespeare
# Title: Macbeth

When shall we three meet again? In thunder, lightning, or in rain.
`

func TestParseHeader(t *testing.T) {
	h, body, err := ParseHeader(sampleFile)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if h.Source != "https://www.gutenberg.org/ebooks/1524" {
		t.Errorf("Source = %q", h.Source)
	}
	if h.Author != "William Shakespeare" {
		t.Errorf("Author = %q", h.Author)
	}
	if h.Title != "Macbeth" {
		t.Errorf("Title = %q", h.Title)
	}
	want := "When shall we three meet again? In thunder, lightning, or in rain."
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
}

func TestParseHeader_MissingSource(t *testing.T) {
	if _, _, err := ParseHeader("# Title: No Source\n\nBody.\n"); err == nil {
		t.Fatal("expected error for header without Source")
	}
}

func TestAnnotateSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Sentence
	}{
		{
			name: "two sentences",
			text: "Hello world. How are you?",
			want: []Sentence{
				{Text: "Hello world.", Start: 0, End: 12},
				{Text: "How are you?", Start: 13, End: 25},
			},
		},
		{
			name: "abbreviation does not end a sentence",
			text: "Mr. Smith left. He was late.",
			want: []Sentence{
				{Text: "Mr. Smith left.", Start: 0, End: 15},
				{Text: "He was late.", Start: 16, End: 28},
			},
		},
		{
			name: "trailing text without terminal mark",
			text: "Done. And then some",
			want: []Sentence{
				{Text: "Done.", Start: 0, End: 5},
				{Text: "And then some", Start: 6, End: 19},
			},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnotateSentences(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "macbeth.txt"), []byte(sampleFile), 0o644); err != nil {
		t.Fatalf("writing corpus file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignore.md"), []byte("not a corpus file"), 0o644); err != nil {
		t.Fatalf("writing extra file: %v", err)
	}

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	doc := docs[0]
	if doc.ID != "macbeth" {
		t.Errorf("ID = %q, want macbeth", doc.ID)
	}
	if len(doc.Sentences) != 2 {
		t.Errorf("got %d reference sentences, want 2", len(doc.Sentences))
	}
}

func TestLoadCorpus_MissingDir(t *testing.T) {
	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
