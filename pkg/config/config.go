package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Proveedores de IA soportados por el asistente.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// ErrMissingAPIKey se devuelve cuando no hay credencial para el asistente de IA.
// El proceso no debe arrancar sin ella.
var ErrMissingAPIKey = errors.New("config: API_KEY no configurado (o GEMINI_API_KEY / ANTHROPIC_API_KEY según AI_PROVIDER)")

// ErrMissingJWTSecret se devuelve cuando JWT_SECRET está vacío.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET no configurado")

// Config agrupa la configuración de la intranet (lectura vía Viper desde env y .env).
type Config struct {
	App     AppConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	AI      AIConfig
	Company CompanyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	// SwaggerFile ruta del swagger.json servido en /docs.
	SwaggerFile string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
	// CORSOrigins orígenes permitidos, separados por coma.
	CORSOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIConfig credenciales y modelos del asistente.
type AIConfig struct {
	Provider       string // gemini | anthropic
	APIKey         string
	GeminiModel    string
	AnthropicModel string
	// BaseURL vacío = endpoint público del proveedor.
	BaseURL string
}

// CompanyConfig datos de la cabecera de los documentos impresos y del preámbulo del asistente.
type CompanyConfig struct {
	Name     string
	Tagline  string
	LogoPath string // opcional: PNG/JPG para la cabecera WZ/ZW
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env).
// Las env vars tienen prioridad. Falla si falta la credencial del asistente o el secreto JWT.
func Load() (*Config, error) {
	// .env en el directorio de trabajo; si no existe seguimos con el entorno.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	provider := strings.ToLower(getString(v, "AI_PROVIDER", ProviderGemini))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "oka-intranet"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "oka-intranet"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		AI: AIConfig{
			Provider:       provider,
			APIKey:         apiKeyFor(v, provider),
			GeminiModel:    getString(v, "GEMINI_MODEL", "gemini-2.5-flash"),
			AnthropicModel: getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			BaseURL:        getString(v, "AI_BASE_URL", ""),
		},
		Company: CompanyConfig{
			Name:     getString(v, "COMPANY_NAME", "OKA S.C."),
			Tagline:  getString(v, "COMPANY_TAGLINE", "Hurtownia Budowlana"),
			LogoPath: getString(v, "COMPANY_LOGO_PATH", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("config: AI_PROVIDER desconocido %q (gemini | anthropic)", c.AI.Provider)
	}
	if strings.TrimSpace(c.AI.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// apiKeyFor: API_KEY tiene prioridad; si no, la variable propia del proveedor.
func apiKeyFor(v *viper.Viper, provider string) string {
	if key := getString(v, "API_KEY", ""); key != "" {
		return key
	}
	if provider == ProviderAnthropic {
		return getString(v, "ANTHROPIC_API_KEY", "")
	}
	return getString(v, "GEMINI_API_KEY", "")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}
