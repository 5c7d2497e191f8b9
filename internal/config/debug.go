package config

import "os"

func IsDebug() bool {
	return os.Getenv("VERACT_DEBUG") == "1"
}
