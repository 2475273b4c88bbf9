// Package config provides Viper-backed configuration helpers for the
// ownermatch CLI: the same-owner threshold and the locality definition used
// by the island-local address mode.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/openrolls/ownermatch/pkg/registry"
	"github.com/openrolls/ownermatch/pkg/score"
)

// Viper keys.
const (
	KeySameOwnerThreshold = "same_owner_threshold"
	KeyLocalityFile       = "locality_file"
	KeyLocalPostalCode    = "locality.postal_code"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// SameOwnerThreshold returns the configured merge threshold, or the
// resolver's default when unset.
func SameOwnerThreshold() float64 {
	if !viper.IsSet(KeySameOwnerThreshold) {
		return registry.DefaultSameOwnerThreshold
	}
	return viper.GetFloat64(KeySameOwnerThreshold)
}

// Locality resolves the island-local configuration: a locality file when one
// is configured, otherwise inline viper keys, otherwise an empty locality
// (which disables the island-local address mode).
func Locality() (score.Locality, error) {
	if path := GetString(KeyLocalityFile); path != "" {
		loc, err := score.LoadLocality(path)
		if err != nil {
			return score.Locality{}, err
		}
		return *loc, nil
	}

	return score.Locality{
		PostalCode:  viper.GetString(KeyLocalPostalCode),
		Streets:     viper.GetStringSlice("locality.streets"),
		CityAliases: viper.GetStringSlice("locality.city_aliases"),
	}, nil
}
