package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/config"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/interviewer"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/llm"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/metrics"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/secrets"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/storage"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/telegram"
)

func main() {
	fmt.Println("🚀 Запуск TalentScout Hiring Assistant...")

	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, использую переменные окружения")
	}

	appConfig := config.LoadAppConfig()

	if appConfig.Telegram.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN не установлен")
	}

	// Загружаем справочники анкеты
	catalog, err := config.Load("config/talentscout.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки справочников анкеты: %v", err)
	}

	ctx := context.Background()

	// Получаем API ключ: Secrets Manager -> переменная окружения
	apiKey := secrets.ResolveAPIKey(ctx, appConfig.Secrets)
	if apiKey == "" {
		log.Println("⚠️ API ключ Gemini не получен: генерация вопросов будет недоступна")
	}

	// Инициализируем сервисы
	fmt.Println("🔧 Инициализация сервисов...")

	m := metrics.NewMetrics()

	var geminiClient llm.Client
	geminiClient, err = llm.NewGeminiClient(ctx, apiKey, appConfig.Gemini.Model, appConfig.Gemini.Temperature)
	if err != nil {
		log.Printf("⚠️ Клиент Gemini не создан: %v", err)
		geminiClient = llm.NewUnavailable(err)
	}
	defer geminiClient.Close()
	interviewerService := interviewer.New(geminiClient, m)
	fmt.Println("✅ Интервьюер инициализирован")

	recorder := storage.New(appConfig.Storage.Dir)
	fmt.Println("✅ Хранилище анкет инициализировано")

	// Telegram бот
	bot := telegram.New(appConfig.Telegram.Token, appConfig.Telegram.Debug)
	handler := telegram.NewHandler(bot, catalog, interviewerService, recorder, m, appConfig.Telegram.AdminChatID)
	fmt.Println("✅ Telegram бот инициализирован")

	// Выводим информацию о конфигурации
	fmt.Println("\n📋 Конфигурация:")
	fmt.Printf("• Модель: %s\n", appConfig.Gemini.Model)
	fmt.Printf("• Кодов стран: %d\n", len(catalog.CountryCodes))
	fmt.Printf("• Позиций: %d\n", len(catalog.Positions))
	fmt.Printf("• Категорий тех-стека: %d\n", len(catalog.TechStack))
	fmt.Printf("• Каталог анкет: %s\n", appConfig.Storage.Dir)

	fmt.Println("\n🤖 Telegram бот запущен!")
	fmt.Println("⏳ Ожидание сообщений...")
	fmt.Println("📱 Найдите бота в Telegram и отправьте /start")

	// Запускаем polling
	if err := bot.StartPolling(handler.HandleUpdate); err != nil {
		log.Fatalf("Ошибка запуска бота: %v", err)
	}
}
