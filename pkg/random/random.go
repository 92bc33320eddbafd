// Package random fornece a fonte de aleatoriedade injetada nos serviços de pontuação e agendamento
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source é a capacidade de sorteio usada pelos serviços. Implementações de teste
// podem devolver valores fixos para tornar as saídas exatas.
type Source interface {
	// IntRange sorteia um inteiro em [min, max). Retorna min quando max <= min.
	IntRange(min, max int) int
	// Uniform sorteia um float em [min, max).
	Uniform(min, max float64) float64
}

type mathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New cria uma fonte baseada em math/rand/v2. Seed 0 usa o relógio.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &mathSource{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)^0x9e3779b97f4a7c15)),
	}
}

func (s *mathSource) IntRange(min, max int) int {
	if max <= min {
		return min
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.IntN(max-min)
}

func (s *mathSource) Uniform(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return min + s.rng.Float64()*(max-min)
}
