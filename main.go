package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"churchms_backend/internals/configs"
	database "churchms_backend/internals/databases"
	helper "churchms_backend/internals/helpers"
	"churchms_backend/internals/middlewares"
	routes "churchms_backend/internals/route"
	"churchms_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           60 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(requestid.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	cronRunner := scheduler.Start(database.DB)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[FATAL] server stopped: %v", err)
		}
	}()
	log.Printf("[INFO] listening on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] shutting down")
	cronRunner.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
