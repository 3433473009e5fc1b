package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"bathroom-report-api/config"
	"bathroom-report-api/models"
	"bathroom-report-api/utils"
)

// NotificationService emails the facilities staff when a new report comes
// in. Delivery is best-effort: failures are logged and never surface to the
// submitter.
type NotificationService struct {
	recipients []string
}

func NewNotificationService() *NotificationService {
	var recipients []string
	for _, addr := range strings.Split(os.Getenv("NOTIFY_EMAILS"), ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if !utils.ValidateEmail(addr) {
			log.Printf("Warning: ignoring malformed notification address %q", addr)
			continue
		}
		recipients = append(recipients, addr)
	}
	return &NotificationService{recipients: recipients}
}

// NotifyNewReport sends the notification in the background.
func (n *NotificationService) NotifyNewReport(report *models.Report) {
	if len(n.recipients) == 0 {
		return
	}

	subject := fmt.Sprintf("New bathroom report #%d - %s", report.ID, report.Building)
	body := fmt.Sprintf(
		"<p>A new report was submitted.</p>"+
			"<ul><li>Building: %s</li><li>Floor: %s</li><li>Bathroom: %s</li><li>Problems: %s</li></ul>",
		report.Building, report.Floor, report.BathroomType, strings.Join(report.Problems, ", "),
	)

	go func() {
		if err := config.SendMail(n.recipients, subject, body); err != nil {
			log.Printf("Warning: failed to send report notification: %v", err)
		}
	}()
}
