package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-api/pkg/mailer"
)

func TestRender_WelcomeJobCarriesNameAndHandle(t *testing.T) {
	// Built exactly the way registration enqueues it.
	job := mailer.WelcomeJob("alice@example.com", "alice", "Alice A")

	subject, text, html, err := render(job)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to PlayTube", subject)
	assert.Contains(t, text, "Alice A")
	assert.Contains(t, text, "@alice")
	assert.Contains(t, html, "Alice A")
	assert.Contains(t, html, "@alice")
}

func TestRender_PlainJobPassesThrough(t *testing.T) {
	job := mailer.EmailJob{To: "x@example.com", Subject: "hi", Text: "body"}

	subject, text, html, err := render(job)
	require.NoError(t, err)
	assert.Equal(t, "hi", subject)
	assert.Equal(t, "body", text)
	assert.Empty(t, html)
}

func TestRender_UnknownTemplateFails(t *testing.T) {
	job := mailer.EmailJob{To: "x@example.com", Template: "password-reset"}

	_, _, _, err := render(job)
	assert.Error(t, err)
}
