package chainmap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64
	Collisions int
}
