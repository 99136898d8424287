package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	PricingPolicy string `env:"PRICING_POLICY" default:"legacy"`
	Env           string `env:"APP_ENV" default:"dev"`
}
