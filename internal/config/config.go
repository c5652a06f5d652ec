package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIMaxTokens int
	AssetsOrigin    string
	AssetsDir       string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Load .env if present; real deployments bind the key as a secret.
	_ = godotenv.Load()

	env := Config{
		Port:            "8788",
		OpenAIModel:     "gpt-3.5-turbo",
		OpenAIMaxTokens: 256,
		AssetsDir:       "./public",
	}

	envPort := os.Getenv("PORT")
	envOpenAIAPIKey := os.Getenv("OPENAI_API_KEY")
	envOpenAIModel := os.Getenv("OPENAI_MODEL")
	envOpenAIMaxTokens := os.Getenv("OPENAI_MAX_TOKENS")
	envAssetsOrigin := os.Getenv("ASSETS_ORIGIN")
	envAssetsDir := os.Getenv("ASSETS_DIR")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envOpenAIAPIKey) != 0 {
		env.OpenAIAPIKey = envOpenAIAPIKey
	}

	if len(envOpenAIModel) != 0 {
		env.OpenAIModel = envOpenAIModel
	}

	if len(envOpenAIMaxTokens) != 0 {
		maxTokens, err := strconv.Atoi(envOpenAIMaxTokens)
		if err != nil {
			return nil, err
		}
		env.OpenAIMaxTokens = maxTokens
	}

	if len(envAssetsOrigin) != 0 {
		env.AssetsOrigin = envAssetsOrigin
	}

	if len(envAssetsDir) != 0 {
		env.AssetsDir = envAssetsDir
	}

	return &env, nil
}
