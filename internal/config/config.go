package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
init與read分開
init: 設置viper watch與onConfigChange
read: 一般讀取，需要讀寫鎖
*/
var configSingleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	DbName         string `mapstructure:"POSTGRES_DB"`
	DbHost         string `mapstructure:"POSTGRES_HOST"`
	DbPort         string `mapstructure:"POSTGRES_PORT"`
	DbUser         string `mapstructure:"POSTGRES_USER"`
	DbPas          string `mapstructure:"POSTGRES_PASSWORD"`
	KafkaBrokers   string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic     string `mapstructure:"KAFKA_ORDER_TOPIC"`
}

// Origins 逗號分隔轉slice
func (c *Config) Origins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if o := strings.TrimSpace(origin); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Brokers 逗號分隔轉slice，沒設定回傳nil表示不啟用kafka
func (c *Config) Brokers() []string {
	if strings.TrimSpace(c.KafkaBrokers) == "" {
		return nil
	}
	brokers := []string{}
	for _, broker := range strings.Split(c.KafkaBrokers, ",") {
		if b := strings.TrimSpace(broker); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	if configSingleton == nil {
		muonce.Do(func() {
			configSingleton = &ConfigSingleTon{}
			if err := reloadConfig(); err != nil {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if err := reloadConfig(); err != nil {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

// reloadConfig 重新讀取後以寫鎖替換，與GetConfig的讀鎖互斥
func reloadConfig() error {
	cf, err := loadConfig()
	if err != nil {
		return err
	}

	configSingleton.mu.Lock()
	configSingleton.Config = cf
	configSingleton.mu.Unlock()
	return nil
}

/*
單純回傳錯誤，由外部決定要不要Fatal
.env不存在時以預設值+環境變數起動
*/
func loadConfig() (cf *Config, err error) {
	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3001")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)

	// .env不存在不視為錯誤
	if readErr := viper.ReadInConfig(); readErr != nil && !isNotExist(readErr) {
		return nil, readErr
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

func isNotExist(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	_, ok := err.(viper.ConfigFileNotFoundError)
	return ok
}
