package sbd

import "testing"

// Inputs below are pre-normalized: padded with spaces, no newlines, the way
// ApplySubstitutions sees them inside the pipeline.
func TestApplySubstitutions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "title abbreviation",
			input: " Dr. Smith  ",
			want:  " Dr" + prd + " Smith  ",
		},
		{
			name:  "domain suffix",
			input: " example.com  ",
			want:  " example" + prd + "com  ",
		},
		{
			name:  "decimal number",
			input: " costs 3.14 now  ",
			want:  " costs 3" + prd + "14 now  ",
		},
		{
			name:  "single initial with trailing space",
			input: " J. Smith  ",
			want:  " J" + prd + " Smith  ",
		},
		{
			name:  "acronym then starter gets hard boundary",
			input: " The U.S. They left.  ",
			want:  " The U" + prd + "S" + prd + stop + " They left.  ",
		},
		{
			name:  "three part acronym",
			input: " the F.B.I. said  ",
			want:  " the F" + prd + "B" + prd + "I" + prd + " said  ",
		},
		{
			name:  "two part acronym alone",
			input: " the U.K. economy  ",
			want:  " the U" + prd + "K" + prd + " economy  ",
		},
		{
			name:  "suffix then starter consumes period",
			input: " King Jr. This is it  ",
			want:  " King Jr" + stop + " This is it  ",
		},
		{
			name:  "suffix without starter",
			input: " Acme Inc. announced  ",
			want:  " Acme Inc" + prd + " announced  ",
		},
		{
			name:  "single letter fallback without trailing space",
			input: " x.y  ",
			want:  " x" + prd + "y  ",
		},
		{
			name:  "no rule matches",
			input: " plain text.  ",
			want:  " plain text.  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplySubstitutions(tt.input); got != tt.want {
				t.Errorf("ApplySubstitutions(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// The spacing rule consumes the space after each match, so in a run of
// spaced initials only every other one matches it; the fallback rule picks
// up the rest. The combined result still protects every period.
func TestApplySubstitutions_AlternatingInitials(t *testing.T) {
	input := " a. b. c.  "
	want := " a" + prd + " b" + prd + " c" + prd + "  "
	if got := ApplySubstitutions(input); got != want {
		t.Errorf("ApplySubstitutions(%q) = %q, want %q", input, got, want)
	}
}

// Starter alternatives for pronouns carry a trailing whitespace requirement:
// "However," does not count as a starter, so the acronym boundary rule does
// not fire and the text stays one sentence.
func TestApplySubstitutions_StarterNeedsWhitespace(t *testing.T) {
	input := " The U.K. However, times change.  "
	want := " The U" + prd + "K" + prd + " However, times change.  "
	if got := ApplySubstitutions(input); got != want {
		t.Errorf("ApplySubstitutions(%q) = %q, want %q", input, got, want)
	}
}

// Rule order matters: the starter rule sees the acronym's periods intact and
// places the boundary, then the acronym-pair rule protects those periods.
// Reversing the order would leave "U.S." splittable.
func TestApplySubstitutions_OrderInteraction(t *testing.T) {
	input := " U.S. She agreed.  "
	want := " U" + prd + "S" + prd + stop + " She agreed.  "
	if got := ApplySubstitutions(input); got != want {
		t.Errorf("ApplySubstitutions(%q) = %q, want %q", input, got, want)
	}
}
