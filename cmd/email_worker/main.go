package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/joho/godotenv"

	"github.com/playtube/playtube-api/config"
	"github.com/playtube/playtube-api/pkg/mailer"
)

var welcomeTpl = template.Must(template.New("welcome").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Welcome to PlayTube, {{.FullName}}!</h2>
  <p>Your channel <strong>@{{.Username}}</strong> is live. Upload your first video whenever you are ready.</p>
  <p>— The PlayTube team</p>
</body>
</html>`))

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject, text, html, err := render(job)
			if err != nil {
				log.Printf("render %q failed: %v", job.Template, err)
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, job.To, subject, text, html); err != nil {
				cancel()
				log.Printf("send to %s failed (redelivered=%v): %v", job.To, msg.Redelivered, err)
				// One redelivery per job; a second failure drops it so an
				// undeliverable address cannot wedge the queue.
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("email worker listening on queue=%s", cfg.RabbitMQEmailQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func render(job mailer.EmailJob) (subject, text, html string, err error) {
	subject, text = job.Subject, job.Text
	switch job.Template {
	case "":
		return subject, text, "", nil
	case mailer.TemplateWelcome:
		name := str(job.Data, mailer.DataKeyFullName)
		handle := str(job.Data, mailer.DataKeyUsername)
		if subject == "" {
			subject = "Welcome to PlayTube"
		}
		if text == "" {
			text = fmt.Sprintf("Welcome to PlayTube, %s! Your channel @%s is live.", name, handle)
		}
		var buf bytes.Buffer
		if err := welcomeTpl.Execute(&buf, map[string]string{
			"FullName": name,
			"Username": handle,
		}); err != nil {
			return "", "", "", err
		}
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", job.Template)
	}
}

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
