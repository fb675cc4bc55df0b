/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/tomoncle/crudbase/api"
	"github.com/tomoncle/crudbase/database"
	"github.com/tomoncle/crudbase/produto"
	"github.com/tomoncle/crudbase/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		utils.NewLogger("MAIN").WithError(err).Fatal("load config")
	}
	utils.ConfigureConsoleLogFormat(cfg.Log.Format)
	utils.ConfigureLogLevel(utils.EnvDefaultString("LOG_LEVEL", cfg.Log.Level))

	log := utils.NewLogger("MAIN")
	if envErr != nil {
		log.Debug("no .env file found, using process environment")
	}
	database.InitLogger(database.NewDefaultLogger("DATABASE"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.InitDB(ctx, cfg.ConfigLoader())
	if err != nil {
		log.WithError(err).Fatal("init database")
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()

	app := api.NewApp(utils.NewLogger("HTTP"), fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: true,
	})
	api.RegisterHealthRoutes(app, database.GetHealthStatus)
	api.RegisterProdutoRoutes(app, produto.NewService(db, database.NewDefaultLogger("PRODUTO")))

	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("server listening")
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
