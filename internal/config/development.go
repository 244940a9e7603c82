package config

import (
	"os"
	"strconv"
)

// Development is on when DEVELOPMENT is set to anything other than a false
// value such as "0" or "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	on, err := strconv.ParseBool(development)
	return err != nil || on
}
