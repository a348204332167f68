package config

import (
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	DatabasePath          string `yaml:"database_path" validate:"required"`
	MaxUploadSize         int64  `yaml:"max_upload_size" validate:"gt=0"`
	MaxDownloadSize       int64  `yaml:"max_download_size" validate:"gt=0"`
	TelegramFileSizeLimit int64  `yaml:"telegram_file_size_limit" validate:"gt=0"` // Telegram's own per-file transfer ceiling
	MaxFilesPerUser       int    `yaml:"max_files_per_user" validate:"gt=0"`
	HttpPort              int    `yaml:"http_port" validate:"gt=0,lte=65535"`
	LogLevel              string `yaml:"log_level"`
	LogJSON               bool   `yaml:"log_json"`
}

type Private struct {
	BotToken string `yaml:"bot_token"`
}

// BotToken returns the Telegram bot token. The TELEGRAM_BOT_TOKEN
// environment variable wins over private.yaml.
func (c *Config) BotToken() string {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		return token
	}
	return c.private.BotToken
}

// DefaultPublic mirrors the limits the bot has always run with: 2 GiB
// platform transfer ceiling, 10 GiB local download ceiling, 100 records
// per user.
func DefaultPublic() Public {
	return Public{
		DatabasePath:          "file_storage.db",
		MaxUploadSize:         4 << 30,
		MaxDownloadSize:       10 << 30,
		TelegramFileSizeLimit: 2 << 30,
		MaxFilesPerUser:       100,
		HttpPort:              5000,
		LogLevel:              "info",
	}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml (required) and private.yaml (optional, the
// token can come from the environment instead) from configFolder.
// Fields missing from public.yaml keep their defaults.
func MustLoad(configFolder string) *Config {
	public := DefaultPublic()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(public); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &Config{public, private}
}
