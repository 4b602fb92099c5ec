package ga

import "math/rand"

// randomAssignment назначает каждую работу на равновероятную машину из [0, machines).
func randomAssignment(genes []int, machines int, rng *rand.Rand) {
	for i := range genes {
		genes[i] = rng.Intn(machines)
	}
}

// tournamentSelect — бинарный турнир с возвращением.
// Первый кандидат побеждает только при строго меньшем makespan.
func tournamentSelect(fitness []int64, rng *rand.Rand) int {
	a := rng.Intn(len(fitness))
	b := rng.Intn(len(fitness))
	if fitness[a] < fitness[b] {
		return a
	}
	return b
}

// uniformCrossover — равномерный кроссовер по работам:
// машина каждой работы берётся от первого или второго родителя с вероятностью 0.5.
func uniformCrossover(p1, p2, child []int, rng *rand.Rand) {
	for i := range child {
		if rng.Float64() < 0.5 {
			child[i] = p1[i]
		} else {
			child[i] = p2[i]
		}
	}
}

// mutateReassign с вероятностью rate переносит работу на другую машину.
// Новая машина равновероятна среди machines-1 остальных, поэтому мутация никогда не пустая.
func mutateReassign(genes []int, machines int, rate float64, rng *rand.Rand) {
	if machines < 2 {
		return
	}
	for i, cur := range genes {
		if rng.Float64() < rate {
			m := rng.Intn(machines - 1)
			if m >= cur {
				m++
			}
			genes[i] = m
		}
	}
}

// argmin возвращает индекс первой особи с минимальным makespan.
func argmin(fitness []int64) int {
	best := 0
	for i := 1; i < len(fitness); i++ {
		if fitness[i] < fitness[best] {
			best = i
		}
	}
	return best
}
