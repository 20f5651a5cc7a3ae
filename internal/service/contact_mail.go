package service

import (
	"fmt"
	"strings"

	"github.com/tempdev/site/internal/mailer"
	"github.com/tempdev/site/internal/model"
)

func ownerNotification(rec *model.ContactSubmission, cfg ContactConfig) mailer.Message {
	body := strings.Join([]string{
		"Ticket: " + rec.Ticket,
		"Name: " + rec.Name,
		"Email: " + rec.Email,
		"Budget: " + rec.Budget,
		"Project type: " + rec.ProjectType,
		"",
		"Details:",
		rec.Details,
	}, "\n")

	return mailer.Message{
		From:    cfg.FromAddress,
		To:      cfg.OwnerAddress,
		ReplyTo: rec.Email,
		Subject: "New inquiry · Ticket " + rec.Ticket,
		Text:    body,
	}
}

func submitterAcknowledgment(rec *model.ContactSubmission, cfg ContactConfig) mailer.Message {
	body := strings.Join([]string{
		fmt.Sprintf("Hi %s,", rec.Name),
		"",
		fmt.Sprintf("Thanks for reaching out. We received your message and will reply within %d hours.", cfg.ReplyHours),
		"Your ticket number is: " + rec.Ticket,
		"",
		"If you need to add anything, reply to this email.",
		"",
		"— " + cfg.SiteName,
	}, "\n")

	return mailer.Message{
		From:    cfg.FromAddress,
		To:      rec.Email,
		Subject: "We received your request · Ticket " + rec.Ticket,
		Text:    body,
	}
}
