// Package utils provides the logrus based named loggers and small
// environment helpers used across the module.
package utils
