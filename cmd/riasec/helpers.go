package main

import (
	"strconv"

	"github.com/careermap/riasec/internal/classify"
	"github.com/careermap/riasec/internal/config"
	"github.com/careermap/riasec/internal/framework"
	"github.com/spf13/viper"
)

// loadFramework resolves the framework path from configuration and
// loads it, falling back to the embedded table when unset or missing.
func loadFramework() *framework.Framework {
	path := viper.GetString("framework.path")
	if path == "" {
		path = config.DefaultFrameworkPath()
	}
	return framework.Load(config.ExpandPath(path))
}

// loadClassifier builds the shared read-only classifier.
func loadClassifier() *classify.Classifier {
	return classify.New(loadFramework())
}

// humanInt formats an integer with thousands separators for display.
func humanInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
