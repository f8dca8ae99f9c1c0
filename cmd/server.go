/*
Copyright 2025 Truna Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	fraudcheck "github.com/truna-id/fraudcheck"
	"github.com/truna-id/fraudcheck/api"
	"github.com/truna-id/fraudcheck/config"
	redis_db "github.com/truna-id/fraudcheck/internal/redis-db"
)

// serverCommands defines the `start` command that serves the verification
// API.
func serverCommands(app *appInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the fraudcheck server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Fetch()
			if err != nil {
				log.Fatal(err)
			}

			router := api.NewAPI(app.service).Router()
			addr := fmt.Sprintf(":%s", cfg.Server.Port)
			log.Printf("fraudcheck server listening on %s", addr)
			if err := router.Run(addr); err != nil {
				log.Fatal(err)
			}
		},
	}
	return cmd
}

// workerCommands defines the `workers` command that delivers queued audit
// events.
func workerCommands(app *appInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "start fraudcheck workers",
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := config.Fetch()
			if err != nil {
				log.Fatal("Error fetching config:", err)
			}

			redisOption, err := redis_db.ParseRedisURL(conf.Redis.Dns, conf.Redis.SkipTLSVerify)
			if err != nil {
				log.Fatalf("Error parsing Redis URL: %v", err)
			}

			srv := asynq.NewServer(
				asynq.RedisClientOpt{
					Addr:      redisOption.Addr,
					Password:  redisOption.Password,
					DB:        redisOption.DB,
					TLSConfig: redisOption.TLSConfig,
				},
				asynq.Config{
					Concurrency: 1,
					Queues:      map[string]int{fraudcheck.AUDIT_QUEUE: 1},
				},
			)

			mux := asynq.NewServeMux()
			mux.HandleFunc(fraudcheck.AUDIT_QUEUE, fraudcheck.ProcessAudit)

			if err := srv.Run(mux); err != nil {
				log.Fatalf("Error running worker server: %v", err)
			}
		},
	}
	return cmd
}
