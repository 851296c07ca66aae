// Package linear receives Linear webhooks, verifies them, and adapts
// Issue payloads into tickets.
package linear

import "time"

// Actor is the user or integration that triggered the webhook.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"` // "user", "integration", "oauth_client"
}

// User is a Linear user, used for the assignee.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	URL   string `json:"url"`
}

// IssueState is the workflow state of an issue.
type IssueState struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Name  string `json:"name"`
	Type  string `json:"type"` // "backlog", "unstarted", "started", "completed", "canceled"
}

// Team is the team an issue belongs to.
type Team struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Label is one issue label.
type Label struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

// IssueData is the issue body of an Issue webhook. Only the fields the
// receipt needs are modelled; unknown fields are ignored on decode.
type IssueData struct {
	ID            string     `json:"id"`
	CreatedAt     time.Time  `json:"createdAt"`
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	Priority      int        `json:"priority"` // 0=None, 1=Urgent, 2=High, 3=Normal, 4=Low
	PriorityLabel string     `json:"priorityLabel"`
	Identifier    string     `json:"identifier"` // e.g. "WEB-4"
	URL           string     `json:"url"`
	State         IssueState `json:"state"`
	Team          Team       `json:"team"`
	Labels        []Label    `json:"labels"`
	Description   string     `json:"description,omitempty"`
	Assignee      *User      `json:"assignee,omitempty"`
	DueDate       string     `json:"dueDate,omitempty"` // ISO date, "2025-10-26"
}

// Webhook is the envelope of a Linear webhook delivery.
type Webhook struct {
	Action           string    `json:"action"` // "create", "update", "remove"
	Actor            Actor     `json:"actor"`
	CreatedAt        time.Time `json:"createdAt"`
	Data             IssueData `json:"data"`
	URL              string    `json:"url"`
	Type             string    `json:"type"` // "Issue", "Comment", "Project", ...
	OrganizationID   string    `json:"organizationId"`
	WebhookTimestamp int64     `json:"webhookTimestamp"` // unix milliseconds
	WebhookID        string    `json:"webhookId"`
}
