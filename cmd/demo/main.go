package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"page-helper/internal/di"
	"page-helper/internal/domain/entity"
	"page-helper/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	targetURL := envService.MustGet("TARGET_URL")
	clickSelector := envService.Get("CLICK_SELECTOR")
	screenshotPath := envService.Get("SCREENSHOT_PATH")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := di.NewContainer(ctx, envService)
	if err != nil {
		log.Fatalf("Ошибка инициализации: %v", err)
	}
	defer container.Close()

	ui := container.Interactor

	container.Logger.Info("Demo started", "url", targetURL)
	fmt.Println("\nОткрываем страницу...")

	if err := ui.Navigate(ctx, targetURL); err != nil {
		container.Logger.Error("Navigation failed", "error", err)
		fmt.Printf("\nОшибка навигации: %v\n", err)
		os.Exit(1)
	}

	if err := ui.WaitForDocumentReady(ctx, 15*time.Second); err != nil {
		container.Logger.Warn("Document never reached complete", "error", err)
	}

	ui.AcceptCookieConsentIfPresent(ctx)

	if clickSelector != "" {
		fmt.Printf("\nКликаем по %s...\n", clickSelector)
		if ok := ui.SafeClick(ctx, entity.Auto(clickSelector)); !ok {
			fmt.Println("Клик не удался, продолжаем без него")
		}
	}

	snapshot, err := ui.PageSnapshot(ctx)
	if err != nil {
		container.Logger.Error("Snapshot failed", "error", err)
		fmt.Printf("\nОшибка снимка страницы: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nЗаголовок: %s\n", snapshot.Title)
	fmt.Printf("URL: %s\n", snapshot.URL)
	fmt.Printf("Интерактивных элементов: %d\n", len(snapshot.UIElements))
	for i, el := range snapshot.UIElements {
		if i >= 10 {
			fmt.Println("...")
			break
		}
		fmt.Printf("  [%s] %s %q\n", el.ID, el.Type, el.Text)
	}

	if screenshotPath != "" {
		shot, err := ui.Screenshot(ctx)
		if err != nil {
			container.Logger.Error("Screenshot failed", "error", err)
		} else if err := os.WriteFile(screenshotPath, shot.Data, 0o644); err != nil {
			container.Logger.Error("Screenshot write failed", "path", screenshotPath, "error", err)
		} else {
			fmt.Printf("\nСкриншот сохранён: %s (%dx%d)\n", screenshotPath, shot.Width, shot.Height)
		}
	}

	container.Logger.Info("Demo completed", "elements", len(snapshot.UIElements))
}
