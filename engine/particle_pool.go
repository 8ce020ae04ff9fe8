package engine

import "github.com/lixenwraith/hexfall/core"

// ParticleColor is a palette slot resolved by the renderer
type ParticleColor uint8

const (
	ColorWater ParticleColor = iota
	ColorRed
	ColorGreen
	ColorCyan
	ColorYellow
)

// confettiColors is the palette confetti particles draw from every frame
var confettiColors = [...]ParticleColor{ColorRed, ColorGreen, ColorCyan, ColorYellow}

// Particle is a pooled body with its age in seconds
type Particle struct {
	core.Body
	Age   float64
	Color ParticleColor
}

// ParticlePool is a fixed-capacity ring buffer ordered oldest to newest
// Once full, a spawn overwrites the oldest slot
type ParticlePool struct {
	slots []Particle
	head  int // next write slot
	count int
}

func NewParticlePool(capacity int) *ParticlePool {
	if capacity < 1 {
		capacity = 1
	}
	return &ParticlePool{slots: make([]Particle, capacity)}
}

// Spawn inserts a particle, recycling the oldest slot when full
// Returns true if a live particle was overwritten
func (p *ParticlePool) Spawn(b core.Body) bool {
	recycled := p.count == len(p.slots)
	p.slots[p.head] = Particle{Body: b}
	p.head = (p.head + 1) % len(p.slots)
	if !recycled {
		p.count++
	}
	return recycled
}

// Len returns the live particle count
func (p *ParticlePool) Len() int {
	return p.count
}

// Cap returns the slot capacity
func (p *ParticlePool) Cap() int {
	return len(p.slots)
}

// At returns the i-th oldest particle, i in [0, Len())
func (p *ParticlePool) At(i int) *Particle {
	start := p.head - p.count
	if start < 0 {
		start += len(p.slots)
	}
	return &p.slots[(start+i)%len(p.slots)]
}

// Expire drops particles whose age reached ttl; ttl <= 0 never expires
// Ages grow uniformly so expired particles are always the oldest prefix
func (p *ParticlePool) Expire(ttl float64) int {
	if ttl <= 0 {
		return 0
	}
	dropped := 0
	for p.count > 0 && p.At(0).Age >= ttl {
		p.count--
		dropped++
	}
	return dropped
}

// Clear removes every particle
func (p *ParticlePool) Clear() {
	p.head = 0
	p.count = 0
}
