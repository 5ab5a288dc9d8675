// Package config loads peakfind settings from the environment and an
// optional .env file.
package config
