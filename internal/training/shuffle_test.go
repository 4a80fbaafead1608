package training

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rmfarias/capacita/internal/catalog"
)

func TestShuffleOptions_PreservesCorrectAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Every question in every catalog module must keep its answer identity
	// under permutation.
	for _, m := range catalog.All() {
		for i, q := range m.Questions {
			want := q.Options[q.Correct]
			shuffled := ShuffleOptions(q, rng)
			got := shuffled.Options[shuffled.Correct]
			if got != want {
				t.Errorf("%s question %d: correct option %q became %q after shuffle",
					m.Key, i, want, got)
			}
		}
	}
}

func TestShuffleOptions_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := catalog.Question{
		Prompt:  "p",
		Options: []string{"a", "b", "c", "d"},
		Correct: 2,
	}

	for i := 0; i < 50; i++ {
		shuffled := ShuffleOptions(q, rng)
		if len(shuffled.Options) != len(q.Options) {
			t.Fatalf("option count changed: %d -> %d", len(q.Options), len(shuffled.Options))
		}
		got := append([]string(nil), shuffled.Options...)
		want := append([]string(nil), q.Options...)
		sort.Strings(got)
		sort.Strings(want)
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("shuffle changed option contents: %v vs %v", shuffled.Options, q.Options)
			}
		}
	}
}

func TestShuffleOptions_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := catalog.Question{
		Prompt:  "p",
		Options: []string{"a", "b", "c", "d"},
		Correct: 0,
	}
	for i := 0; i < 20; i++ {
		ShuffleOptions(q, rng)
	}
	if q.Correct != 0 || q.Options[0] != "a" || q.Options[3] != "d" {
		t.Errorf("input question was mutated: %+v", q)
	}
}

func TestShuffleAll_PreservesQuestionOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := catalog.Get("limpeza_basica")
	if m == nil {
		t.Fatal("limpeza_basica missing from catalog")
	}
	shuffled := shuffleAll(m.Questions, rng)
	if len(shuffled) != len(m.Questions) {
		t.Fatalf("question count changed: %d -> %d", len(m.Questions), len(shuffled))
	}
	for i := range shuffled {
		if shuffled[i].Prompt != m.Questions[i].Prompt {
			t.Errorf("question %d reordered: %q vs %q", i, shuffled[i].Prompt, m.Questions[i].Prompt)
		}
	}
}
