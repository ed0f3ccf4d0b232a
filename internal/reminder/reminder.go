package reminder

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/dvergara/finanzas-service/internal/config"
	"github.com/dvergara/finanzas-service/internal/repository"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Days ahead an upcoming obligation triggers a reminder.
const reminderHorizonDays = 3

// Job sends payment reminder emails for upcoming and overdue obligations.
// It runs from the nightly cron entry.
type Job struct {
	repo *repository.Repository
	cfg  *config.Config
	log  *logrus.Logger
}

// NewJob creates a new reminder job
func NewJob(repo *repository.Repository, cfg *config.Config, log *logrus.Logger) *Job {
	return &Job{repo: repo, cfg: cfg, log: log}
}

// Run queries the open obligations due within the horizon (or already
// overdue) and emails one reminder per obligation per user. Send failures
// are logged and never stop the batch.
func (j *Job) Run() {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	horizon := today.AddDate(0, 0, reminderHorizonDays)

	reminders, err := j.repo.ListPaymentReminders(today, horizon)
	if err != nil {
		j.log.Errorf("Failed to list payment reminders: %v", err)
		return
	}

	sent := 0
	for _, rem := range reminders {
		if err := j.send(rem); err != nil {
			j.log.Errorf("Failed to send reminder to %s: %v", rem.Email, err)
			continue
		}
		sent++
	}
	j.log.Infof("Reminder run finished: %d of %d sent", sent, len(reminders))
}

func (j *Job) send(rem repository.PaymentReminder) error {
	e := email.NewEmail()
	e.From = j.cfg.SenderEmail
	e.To = []string{rem.Email}
	if rem.Overdue {
		e.Subject = fmt.Sprintf("Obligación vencida: %s", rem.Title)
	} else {
		e.Subject = fmt.Sprintf("Próximo vencimiento: %s", rem.Title)
	}

	body := fmt.Sprintf("Hola %s,\n\n", rem.Username)
	if rem.Overdue {
		body += fmt.Sprintf(
			"Tu obligación %q de %s venció el %s y sigue pendiente.\n"+
				"Confirmá el pago desde la aplicación para mantener tu flujo al día.\n",
			rem.Title, rem.Amount.StringFixed(2), rem.DueDate.Format("2006-01-02"),
		)
	} else {
		body += fmt.Sprintf(
			"Tu obligación %q de %s vence el %s.\n"+
				"Asegurate de tener fondos disponibles.\n",
			rem.Title, rem.Amount.StringFixed(2), rem.DueDate.Format("2006-01-02"),
		)
	}
	body += "\nSaludos,\nFinanzas"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", j.cfg.SMTPHost, j.cfg.SMTPPort)
	var auth smtp.Auth
	if j.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", j.cfg.SMTPUsername, j.cfg.SMTPPassword, j.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	j.log.Infof("Email sent to %s: %s", rem.Email, e.Subject)
	return nil
}
