package app

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfig = `# CCMM dataset metadata toolkit

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "INFO"

################################## SCHEMA #####################################

[schema]

#
# Path to the XSD schema bundle used by the structural validation phase.
# Leave empty to use the schema set bundled with this build.
#
path = ""

################################## OUTPUT #####################################

[output]

#
# Whether exported XML documents are indented. This only affects
# whitespace, never the element tree.
#
pretty = true
`

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Schema struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"schema"`

	Output struct {
		Pretty bool `mapstructure:"pretty"`
	} `mapstructure:"output"`
}

func (c Config) Validate() error {
	return nil
}

func (c Config) String() string {
	tmpfile, err := os.CreateTemp("", "config.*.toml")
	if err != nil {
		return err.Error()
	}
	defer os.Remove(tmpfile.Name())
	err = c.v.WriteConfigAs(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	blob, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	return string(blob)
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("CCMM")
	v.AutomaticEnv()

	v.SetConfigName("ccmm-go")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/ccmm/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
