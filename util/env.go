package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func OptionalEnv(name string, defaultValue string) string {
	value, specified := os.LookupEnv(name)
	if !specified || value == "" {
		return defaultValue
	}

	return value
}
func OptionalStrArrEnv(name string, defaultValue []string) []string {
	rawValue := OptionalEnv(name, "")
	if rawValue == "" {
		return defaultValue
	}

	values := []string{}
	for _, value := range strings.Split(rawValue, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
func OptionalIntEnv(name string, defaultValue int) int {
	rawValue := OptionalEnv(name, "")
	if rawValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(rawValue)
	if err != nil {
		panic(fmt.Sprintf("couldn't parse environment variable \"%v\" into an interger", name))
	}

	return value
}
func OptionalBoolEnv(name string) bool {
	return os.Getenv(name) == "true"
}
