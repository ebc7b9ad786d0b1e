package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for the email worker.
// Currently the only template is "welcome", rendered by the worker.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Data keys shared by the producer and the worker's template rendering.
const (
	TemplateWelcome = "welcome"

	DataKeyUsername = "username"
	DataKeyFullName = "fullName"
)

// WelcomeJob builds the welcome-email job for a freshly registered user.
// Producer and worker agree on the payload through this constructor alone.
func WelcomeJob(to, username, fullName string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data:     map[string]any{DataKeyUsername: username, DataKeyFullName: fullName},
	}
}
