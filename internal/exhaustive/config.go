package exhaustive

type Config struct {
	// Bound отсекает ветви, у которых частичный makespan уже не лучше текущего рекорда.
	// На результат не влияет.
	Bound bool
}

func DefaultConfig() Config {
	return Config{Bound: true}
}
