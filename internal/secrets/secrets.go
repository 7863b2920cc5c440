package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/config"
)

// apiKeyField — имя поля с ключом внутри JSON секрета
const apiKeyField = "API_KEY"

// ResolveAPIKey получает API ключ Gemini: сначала из AWS Secrets Manager,
// затем из переменной GOOGLE_API_KEY. Пустой результат не фатален:
// вызовы модели будут деградировать штатно, отдельного пути аварийного
// завершения у процесса нет.
func ResolveAPIKey(ctx context.Context, cfg config.SecretsConfig) string {
	key, err := fromSecretsManager(ctx, cfg)
	if err != nil {
		log.Printf("Secrets Manager недоступен (%v), пробую переменную окружения", err)
	}
	if key != "" {
		return key
	}

	return os.Getenv("GOOGLE_API_KEY")
}

// fromSecretsManager читает секрет и достает из его JSON поле API_KEY
func fromSecretsManager(ctx context.Context, cfg config.SecretsConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return "", fmt.Errorf("ошибка конфигурации AWS: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.SecretName),
	})
	if err != nil {
		return "", fmt.Errorf("ошибка чтения секрета %s: %w", cfg.SecretName, err)
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("секрет %s не содержит строкового значения", cfg.SecretName)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(*out.SecretString), &payload); err != nil {
		return "", fmt.Errorf("ошибка парсинга JSON секрета: %w", err)
	}

	key := payload[apiKeyField]
	if key == "" {
		return "", fmt.Errorf("секрет %s не содержит поля %s", cfg.SecretName, apiKeyField)
	}

	return key, nil
}
