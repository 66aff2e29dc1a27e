package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Shift ShiftConfig
	Geo   GeoConfig
	Seed  SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// ShiftConfig parámetros del turno de la estación.
// CheckInDeadline: hora límite de entrada (HH:MM, 24h); un check-in posterior
// se registra con estado "late".
type ShiftConfig struct {
	CheckInDeadline string
}

// GeoConfig configuración del geocodificador inverso usado para etiquetar
// los check-in de asistencia con una dirección legible.
// Si BaseURL está vacío, el flujo de asistencia cae a la dirección manual.
type GeoConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SeedConfig controla la carga de datos al arrancar. El directorio de usuarios
// SIEMPRE se siembra (no existe backend de credenciales real); los registros de
// ejemplo solo cuando Demo es true.
type SeedConfig struct {
	Demo           bool
	SharedPassword string // contraseña compartida del directorio fijo de usuarios
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Env:  env,
			Name: getString(v, "APP_NAME", "estacion-ops"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 720),
			Issuer:     getString(v, "JWT_ISSUER", "estacion-ops"),
		},
		Shift: ShiftConfig{
			CheckInDeadline: getString(v, "SHIFT_CHECKIN_DEADLINE", "09:00"),
		},
		Geo: GeoConfig{
			BaseURL:        getString(v, "GEO_REVERSE_URL", ""),
			TimeoutSeconds: getInt(v, "GEO_TIMEOUT_SECONDS", 5),
		},
		Seed: SeedConfig{
			Demo:           getBool(v, "SEED_DEMO", env == "development"),
			SharedPassword: getString(v, "SEED_SHARED_PASSWORD", "password"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
