package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	JWTSecret     string
	ContractOwner string
	SingleSale    bool
	RateLimit     int
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	singleSale, _ := strconv.ParseBool(getenv("SINGLE_SALE", "false"))
	rateLimit, _ := strconv.Atoi(getenv("RATE_LIMIT", "60"))
	return Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     getenv("JWT_SECRET", "4f8a2cc1d9be03571a6b2f4fd0e97c55aa1840f3bd62c9e8417d5a90c3b6fe12"),
		ContractOwner: getenv("CONTRACT_OWNER", "CONTRACT_OWNER"),
		SingleSale:    singleSale,
		RateLimit:     rateLimit,
	}
}
