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
package fraudcheck

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/truna-id/fraudcheck/config"
	"github.com/truna-id/fraudcheck/internal/request"
	"github.com/truna-id/fraudcheck/model"

	"github.com/hibiken/asynq"
)

// AUDIT_QUEUE is the asynq queue audit events travel on.
const AUDIT_QUEUE = "fraudcheck_audit"

// AuditEvent is the envelope handed to the downstream audit emitter. It
// carries the verification outcome and the transaction id so audit trails
// stay correlated with the provider.
type AuditEvent struct {
	Event      string                    `json:"event"`
	OccurredAt time.Time                 `json:"occurred_at"`
	Payload    *model.VerificationResult `json:"data"`
}

// NewAuditEvent classifies a verification result into its audit event name.
func NewAuditEvent(result *model.VerificationResult) AuditEvent {
	event := "identity.verification_failed"
	if result.Success {
		event = "identity.verified"
	}
	return AuditEvent{Event: event, OccurredAt: time.Now().UTC(), Payload: result}
}

// processHTTP delivers an audit event to the configured webhook.
func processHTTP(event AuditEvent) error {
	conf, err := config.Fetch()
	if err != nil {
		log.Println("Error fetching config:", err)
		return err
	}

	payload, err := request.ToJsonReq(&event)
	if err != nil {
		log.Println("Error marshaling audit event:", err)
		return err
	}

	req, err := http.NewRequest("POST", conf.Notification.Audit.Url, payload)
	if err != nil {
		log.Println("Error creating request:", err)
		return err
	}
	for key, value := range conf.Notification.Audit.Headers {
		req.Header.Set(key, value)
	}

	var response map[string]interface{}
	resp, err := request.Call(req, &response)
	if err != nil {
		log.Println("Error sending request:", err)
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Audit delivery failed with status code: %d\n", resp.StatusCode)
		return nil
	}

	log.Println("Audit event delivered:", event.Event)
	return nil
}

// SendAudit enqueues an audit event for asynchronous delivery. Fire and
// forget: a verification result never depends on whether its audit event
// made it out.
func SendAudit(event AuditEvent) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}

	if conf.Notification.Audit.Url == "" {
		return nil
	}

	client := asynq.NewClient(asynq.RedisClientOpt{Addr: conf.Redis.Dns})
	defer client.Close()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println(err)
		return err
	}
	taskOptions := []asynq.Option{asynq.Queue(AUDIT_QUEUE)}
	task := asynq.NewTask(AUDIT_QUEUE, payload, taskOptions...)
	info, err := client.Enqueue(task)
	if err != nil {
		log.Println(err, info)
		return err
	}
	return nil
}

// ProcessAudit handles an audit delivery task from the queue.
func ProcessAudit(_ context.Context, task *asynq.Task) error {
	conf, err := config.Fetch()
	if err != nil {
		return err
	}

	if conf.Notification.Audit.Url == "" {
		return nil
	}
	var event AuditEvent
	if err := json.Unmarshal(task.Payload(), &event); err != nil {
		log.Printf("Error unmarshaling task payload: %v", err)
		return err
	}
	log.Printf("Processing audit event: %s\n", event.Event)
	return processHTTP(event)
}
