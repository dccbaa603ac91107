package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	GatewayURL        string
	GatewayAPIKey     string
	GatewayMerchantID string

	// CommissionRate is the platform's cut of the gross gig budget.
	// Injected into the payment service at construction; never read
	// from a hard-coded literal at call sites.
	CommissionRate = decimal.NewFromFloat(0.02)

	// Currencies accepted for gig budgets.
	AllowedCurrencies = []string{"INR", "USD", "EUR"}
)

// platformFile mirrors the optional platform.yaml overrides.
type platformFile struct {
	CommissionRate string   `yaml:"commission_rate"`
	Currencies     []string `yaml:"currencies"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "campusgig")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("Issuer", "campusgig")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "gig-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	GatewayURL = getEnv("PAYMENT_GATEWAY_URL", "https://api.payments.example.com/v1")
	GatewayAPIKey = getEnv("PAYMENT_GATEWAY_API_KEY", "")
	GatewayMerchantID = getEnv("PAYMENT_GATEWAY_MERCHANT_ID", "")

	loadPlatformFile(getEnv("PLATFORM_CONFIG", "platform.yaml"))
}

func loadPlatformFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var pf platformFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		log.Printf("Failed to parse %s: %v", path, err)
		return
	}

	if pf.CommissionRate != "" {
		rate, err := decimal.NewFromString(pf.CommissionRate)
		if err != nil || rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			log.Printf("Ignoring invalid commission_rate %q in %s", pf.CommissionRate, path)
		} else {
			CommissionRate = rate
		}
	}
	if len(pf.Currencies) > 0 {
		AllowedCurrencies = pf.Currencies
	}
}

func CurrencyAllowed(code string) bool {
	for _, c := range AllowedCurrencies {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
