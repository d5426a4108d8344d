package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Uploads UploadsConfig `yaml:"uploads"`

	// Mongo connection values come from the environment (.env in dev),
	// not from config.yaml, so credentials stay out of the repo.
	MongoURI    string `yaml:"-"`
	MongoDBName string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// UploadsConfig controls where uploaded blog images land on disk and how
// large a single file may be.
type UploadsConfig struct {
	Dir string `yaml:"dir"`

	// MaxSizeMB is the per-file upload limit. 0 or negative means the
	// default of 5MB.
	MaxSizeMB int64 `yaml:"max_size_mb"`
}

// MaxSizeBytes returns the upload limit in bytes.
func (u UploadsConfig) MaxSizeBytes() int64 {
	mb := u.MaxSizeMB
	if mb <= 0 {
		mb = 5
	}
	return mb << 20
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.MongoURI = os.Getenv("MONGO_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = filepath.Join("public", "images")
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
