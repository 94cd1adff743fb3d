package quizgen

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func TestShuffle_TracksCorrectIndex(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 50 {
		q := &Quiz{
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: 2,
		}
		q.Shuffle(r)

		if q.Choices[q.CorrectIndex] != "c" {
			t.Fatalf("correct index drifted: points at %q", q.Choices[q.CorrectIndex])
		}

		sorted := append([]string(nil), q.Choices...)
		sort.Strings(sorted)
		for i, want := range []string{"a", "b", "c", "d"} {
			if sorted[i] != want {
				t.Fatalf("shuffle lost or duplicated a choice: %v", q.Choices)
			}
		}
	}
}
