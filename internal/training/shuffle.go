package training

import (
	"math/rand"

	"github.com/rmfarias/capacita/internal/catalog"
)

// ShuffleOptions returns a copy of q with its options uniformly permuted and
// the correct index remapped to the new position of the original answer.
// The input question is not modified.
func ShuffleOptions(q catalog.Question, rng *rand.Rand) catalog.Question {
	type pair struct {
		orig int
		text string
	}
	pairs := make([]pair, len(q.Options))
	for i, opt := range q.Options {
		pairs[i] = pair{orig: i, text: opt}
	}
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	options := make([]string, len(pairs))
	correct := q.Correct
	for i, p := range pairs {
		options[i] = p.text
		if p.orig == q.Correct {
			correct = i
		}
	}
	return catalog.Question{Prompt: q.Prompt, Options: options, Correct: correct}
}

// shuffleAll shuffles the options of every question independently.
// Question order is preserved; only intra-question option order changes.
func shuffleAll(questions []catalog.Question, rng *rand.Rand) []catalog.Question {
	out := make([]catalog.Question, len(questions))
	for i, q := range questions {
		out[i] = ShuffleOptions(q, rng)
	}
	return out
}
