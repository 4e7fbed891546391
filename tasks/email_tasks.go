package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"jobcard-backend/config"
	"jobcard-backend/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCompletionEmail = "email:jobcard_completed"

// CompletionEmailPayload carries what the completion notice needs; the job
// card itself is not re-read, archiving already snapshotted these fields.
type CompletionEmailPayload struct {
	JobNumber     string `json:"job_number"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	GrandTotal    string `json:"grand_total"`
}

// NewCompletionEmailTask enqueues-ready task telling a customer their vehicle
// is ready for collection.
func NewCompletionEmailTask(payload CompletionEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion email payload: %w", err)
	}
	return asynq.NewTask(TypeCompletionEmail, data, asynq.MaxRetry(3)), nil
}

// HandleCompletionEmailTask sends the completion notice. Retries are left to
// asynq; a send failure just returns the error.
func HandleCompletionEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload CompletionEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal completion email payload: %w", err)
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<p>Dear %s,</p>
				<p>Work on your vehicle under job card <strong>%s</strong> is complete
				and the vehicle is ready for collection.</p>
				<p>Total due: <strong>%s</strong></p>
				<p>Thank you for your business.</p>
			</body>
		</html>
	`, payload.CustomerName, payload.JobNumber, payload.GrandTotal)

	return utils.SendEmail(payload.CustomerEmail, "Your vehicle is ready - "+payload.JobNumber, body, "")
}

// StartWorker runs the asynq server in-process. Only one queue and one task
// type exist today, so concurrency stays low.
func StartWorker(redisAddr string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCompletionEmail, HandleCompletionEmailTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			config.Logger.Error("Asynq worker stopped", zap.Error(err))
		}
	}()
}
