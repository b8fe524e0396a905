package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"shelter-cost/models"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataSource string

	HotelDataPath       string
	HomelessDataPath    string
	MinimumWageDataPath string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SQLitePath string

	OutputDir         string
	RenderImages      bool
	RenderConcurrency int
	ChromeBin         string

	LookupState string
	HTTPAddr    string
	LogLevel    string

	Params models.CostParams
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	defaults := models.DefaultCostParams()

	return &Config{
		DataSource: strings.ToLower(getEnv("DATA_SOURCE", "csv")),

		HotelDataPath:       getEnv("HOTEL_DATA_PATH", "./data/hotel_data.csv"),
		HomelessDataPath:    getEnv("HOMELESS_DATA_PATH", "./data/homeless_data.csv"),
		MinimumWageDataPath: getEnv("MINIMUM_WAGE_DATA_PATH", "./data/minimum_wage.csv"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "shelter"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "shelter123"),
		PostgresDB:       getEnv("POSTGRES_DB", "shelter_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SQLitePath: getEnv("SQLITE_PATH", "./data/shelter.db"),

		OutputDir:         getEnv("OUTPUT_DIR", "./img"),
		RenderImages:      getEnvBool("RENDER_IMAGES", false),
		RenderConcurrency: getEnvInt("RENDER_CONCURRENCY", 3),
		ChromeBin:         getEnv("CHROME_BIN", ""),

		LookupState: getEnv("LOOKUP_STATE", ""),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Params: models.CostParams{
			AvgHotelRate:               getEnvFloat("AVG_HOTEL_RATE", defaults.AvgHotelRate),
			PercentOfAvgNightlyFee:     getEnvFloat("PERCENT_OF_AVG_NIGHTLY_FEE", defaults.PercentOfAvgNightlyFee),
			PeoplePerRoom:              getEnvInt("PEOPLE_PER_ROOM", defaults.PeoplePerRoom),
			NumEmployeesPer10Rooms:     getEnvInt("NUM_EMPLOYEES_PER_10_ROOMS", defaults.NumEmployeesPer10Rooms),
			MinWageInflationPercentage: getEnvFloat("MIN_WAGE_INFLATION_PERCENTAGE", defaults.MinWageInflationPercentage),
			WorkDayHrs:                 getEnvInt("WORK_DAY_HRS", defaults.WorkDayHrs),
		},
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
