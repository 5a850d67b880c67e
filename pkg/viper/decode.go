package viper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// withJSONTags makes viper honour the json struct tags used across config
// types, with string to duration decoding for timeouts.
func withJSONTags(c *mapstructure.DecoderConfig) {
	c.TagName = "json"
	c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

var _ viper.DecoderConfigOption = withJSONTags
