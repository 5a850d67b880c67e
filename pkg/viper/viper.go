package viper

import (
	"github.com/spf13/viper"
)

// ReadFile reads a yaml file into conf. A fresh viper instance is used per
// call so reading several config files does not merge their keys.
func ReadFile(conf any, filePath string) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(conf, withJSONTags); err != nil {
		return err
	}
	return nil
}

func ReadFileWithProfile(profile string, conf any, filePath string) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	c := v.Sub(profile)
	if c == nil {
		return &ProfileNotFoundError{Profile: profile, FilePath: filePath}
	}
	if err := c.Unmarshal(conf, withJSONTags); err != nil {
		return err
	}
	return nil
}

type ProfileNotFoundError struct {
	Profile  string
	FilePath string
}

func (e *ProfileNotFoundError) Error() string {
	return "profile " + e.Profile + " not found in " + e.FilePath
}
