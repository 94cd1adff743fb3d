package quizgen

import "math/rand/v2"

// Shuffle permutes the quiz's choices in place and keeps CorrectIndex
// pointing at the correct option. Called once before a quiz is shown so
// the correct answer does not sit at a predictable position.
func (q *Quiz) Shuffle(r *rand.Rand) {
	perm := r.Perm(len(q.Choices))
	shuffled := make([]string, len(q.Choices))
	correct := q.CorrectIndex
	for from, to := range perm {
		shuffled[to] = q.Choices[from]
		if from == correct {
			q.CorrectIndex = to
		}
	}
	q.Choices = shuffled
}
