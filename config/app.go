package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	ClientID    string `env:"CLIENT_ID,required"`
	Env         string `env:"APP_ENV" default:"dev"`
}
