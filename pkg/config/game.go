package config

// Settings of an interactive game
type Game struct {
	Width      int  `env:"WIDTH" envDefault:"3"`
	Dimensions int  `env:"DIMENSIONS" envDefault:"2"`
	Color      bool `env:"COLOR" envDefault:"true"`
}

// Settings of a random playout run
type Arena struct {
	Width      int   `env:"ARENA_WIDTH" envDefault:"3"`
	Dimensions int   `env:"ARENA_DIMENSIONS" envDefault:"2"`
	Games      int   `env:"ARENA_GAMES" envDefault:"1000"`
	Workers    int   `env:"ARENA_WORKERS" envDefault:"2"`
	Seed       int64 `env:"ARENA_SEED" envDefault:"0"`
	JSON       bool  `env:"ARENA_JSON" envDefault:"false"`
}
