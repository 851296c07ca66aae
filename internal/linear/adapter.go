package linear

import (
	"time"

	"github.com/papercut-dev/papercut/internal/ticket"
)

// ToTicket converts an Issue webhook into the platform-agnostic ticket.
// The webhook actor becomes the creator; the issue's own creator id is a
// bare uuid and useless on a receipt.
func ToTicket(w *Webhook) *ticket.Ticket {
	d := w.Data

	t := &ticket.Ticket{
		ID:          d.ID,
		Identifier:  d.Identifier,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.State.Name,
		Priority:    d.PriorityLabel,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   w.Actor.Name,
		Team:        d.Team.Name,
		URL:         d.URL,
	}

	if d.Assignee != nil {
		t.Assignee = d.Assignee.Name
	}
	for _, l := range d.Labels {
		t.Labels = append(t.Labels, l.Name)
	}
	if d.DueDate != "" {
		if due, err := time.Parse("2006-01-02", d.DueDate); err == nil {
			t.DueDate = &due
		}
	}

	return t
}
