package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/najib3112/tifpoint/config"
	"github.com/najib3112/tifpoint/db"
	"github.com/najib3112/tifpoint/route"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()

	app := config.NewApp()

	route.SetupRoutes(app, db.GetDB())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TIFPoint API is running")
	})

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
