package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/levamidia/dimarzio-crm/internal/entity"
)

// MatchMode define como um lead é considerado elegível para o tenant:
// slug exato ou prefixo de namespace (ex: "dimarzio-").
const (
	MatchExact  = "exact"
	MatchPrefix = "prefix"
)

type Config struct {
	Port string

	// Backend metropole
	APIBaseURL string
	TenantID   int

	CompanyName      string
	DefaultProduct   string
	ProductMatchMode string
	ProductNamespace string

	CacheTTL     time.Duration
	PageSize     int
	RecentWindow time.Duration
	DayBuckets   int

	DatabaseURL string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailFrom   string
	SalesInbox string

	WhatsAppToken    string
	WhatsAppPhoneID  string
	WhatsAppTemplate string

	AllowedOrigins []string

	LogLevel  string
	LogPretty bool
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),

		APIBaseURL: getEnv("CRM_API_BASE_URL", "https://backend-ingressar.onrender.com/metropole/v1"),
		TenantID:   getEnvInt("CRM_TENANT_ID", 6),

		CompanyName:      getEnv("CRM_COMPANY_NAME", "Dimarzio Seguros"),
		DefaultProduct:   getEnv("CRM_DEFAULT_PRODUCT", "dimarzio-auto"),
		ProductMatchMode: getEnv("CRM_PRODUCT_MATCH_MODE", MatchPrefix),
		ProductNamespace: getEnv("CRM_PRODUCT_NAMESPACE", "dimarzio-"),

		CacheTTL:     getEnvDuration("CRM_CACHE_TTL", 5*time.Minute),
		PageSize:     getEnvInt("CRM_PAGE_SIZE", 10),
		RecentWindow: getEnvDuration("CRM_RECENT_WINDOW", 24*time.Hour),
		DayBuckets:   getEnvInt("CRM_DAY_BUCKETS", 15),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RabbitUser: getEnv("RABBITMQ_USER", "user"),
		RabbitPass: getEnv("RABBITMQ_PASS", "password"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost:   getEnv("MAIL_HOST", ""),
		MailPort:   getEnvInt("MAIL_PORT", 587),
		MailUser:   getEnv("MAIL_USER", ""),
		MailPass:   getEnv("MAIL_PASS", ""),
		MailFrom:   getEnv("MAIL_FROM", "nao-responda@dimarzioseguros.com.br"),
		SalesInbox: getEnv("CRM_SALES_INBOX", ""),

		WhatsAppToken:    getEnv("WHATSAPP_ACCESS_TOKEN", ""),
		WhatsAppPhoneID:  getEnv("WHATSAPP_PHONE_ID", ""),
		WhatsAppTemplate: getEnv("CRM_WHATSAPP_TEMPLATE", "Olá {nome}, estamos entrando em contato sobre seu interesse em nossos produtos de seguros."),

		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "*"}),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvBool("LOG_PRETTY", false),
	}
}

// DefaultCatalog é o catálogo de fábrica, usado como seed quando a tabela de
// produtos ainda está vazia.
func DefaultCatalog() entity.Catalog {
	names := []struct{ slug, name string }{
		{"dimarzio-consorcio", "Consórcio"},
		{"dimarzio-residencial", "Residencial"},
		{"dimarzio-fianca-locaticia", "Fiança Locatícia"},
		{"dimarzio-auto", "Auto"},
		{"dimarzio-fiduciario", "Fiduciário"},
		{"dimarzio-contato", "Contato"},
		{"dimarzio-vida", "Vida"},
		{"dimarzio-portateis", "Portáteis"},
		{"dimarzio-saude", "Saúde"},
		{"dimarzio-viagem", "Viagem"},
		{"dimarzio-rural", "Rural"},
		{"dimarzio-empresarial", "Empresarial"},
		{"dimarzio-rc-profissional", "RC Profissional"},
	}

	catalog := make(entity.Catalog, 0, len(names))
	for _, n := range names {
		catalog = append(catalog, *entity.NewProduct(n.name, n.slug))
	}
	return catalog
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
