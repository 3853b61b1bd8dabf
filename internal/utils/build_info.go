// Package utils - вспомогательные функции экспортера.
package utils

import "github.com/sirupsen/logrus"

// LogBuildInfo пишет в лог версию, дату и коммит сборки (задаются через -ldflags).
func LogBuildInfo(logger *logrus.Logger, buildVersion, buildDate, buildCommit string) {
	logger.WithFields(logrus.Fields{
		"version": orNA(buildVersion),
		"date":    orNA(buildDate),
		"commit":  orNA(buildCommit),
	}).Info("climacell_exporter build info")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
