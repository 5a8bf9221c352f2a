package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Setup  SetupConfig  `mapstructure:"setup"`
	Test   TestConfig   `mapstructure:"test"`
	Format FormatConfig `mapstructure:"format"`
	Clean  CleanConfig  `mapstructure:"clean"`
}

type SetupConfig struct {
	Installer    []string `mapstructure:"installer"`
	Requirements string   `mapstructure:"requirements"`
	HookScript   string   `mapstructure:"hook_script"`
	HooksDir     string   `mapstructure:"hooks_dir"`
	HookName     string   `mapstructure:"hook_name"`
}

type TestConfig struct {
	Script string `mapstructure:"script"`
}

type FormatConfig struct {
	Command []string `mapstructure:"command"`
	Exclude string   `mapstructure:"exclude"`
	Root    string   `mapstructure:"root"`
}

type CleanConfig struct {
	Paths        []string `mapstructure:"paths"`
	DirPatterns  []string `mapstructure:"dir_patterns"`
	FilePatterns []string `mapstructure:"file_patterns"`
}

// LoadConfig reads the optional devtask.yaml. An empty path looks for
// devtask.yaml in the working directory; a missing file yields the
// defaults, any other read error is fatal.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("devtask")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("devtask")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("setup.installer", []string{"pip", "install", "-r"})
	v.SetDefault("setup.requirements", "requirements-test.txt")
	v.SetDefault("setup.hook_script", "pre-commit.sh")
	v.SetDefault("setup.hooks_dir", ".git/hooks")
	v.SetDefault("setup.hook_name", "pre-commit")

	v.SetDefault("test.script", "./run-unit-tests.sh")

	v.SetDefault("format.command", []string{"yapf", "--in-place", "--recursive"})
	v.SetDefault("format.exclude", "*/vendor/*")
	v.SetDefault("format.root", ".")

	v.SetDefault("clean.paths", []string{"build", "TAGS"})
	v.SetDefault("clean.dir_patterns", []string{"*.egg-info", "__pycache__"})
	v.SetDefault("clean.file_patterns", []string{"*.pyc", "*~"})
}
