package messaging

import (
	"fmt"
	"strings"
)

// ReminderInfo carries the fields interpolated into a reminder message.
type ReminderInfo struct {
	Name       string
	Phone      string
	Medication string
}

// ReminderText builds the WhatsApp reminder text for a customer whose
// medication is about to run out. Link construction and dispatch are the
// caller's concern; this package only produces the message body.
func ReminderText(info ReminderInfo) string {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = "cliente"
	}
	return fmt.Sprintf(
		"Olá, %s! Aqui é da TotalPharma. Seu medicamento %s está acabando. Podemos agendar uma nova entrega?",
		name, strings.TrimSpace(info.Medication),
	)
}
