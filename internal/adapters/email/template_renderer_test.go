package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/domain"
)

func TestTemplateRenderer_SignupConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("signup_confirmation", &domain.ConfirmationEmailData{
		Email:        "alice@mergington.edu",
		ActivityName: "Chess Club",
		Schedule:     "Fridays, 3:30 PM - 5:00 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "You're signed up for Chess Club", subject)
	assert.Contains(t, html, "Chess Club")
	assert.Contains(t, text, "Fridays, 3:30 PM - 5:00 PM")
}

func TestTemplateRenderer_SignupConfirmation_NoSchedule(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, text, err := r.Render("signup_confirmation", &domain.ConfirmationEmailData{
		Email:        "alice@mergington.edu",
		ActivityName: "Chess Club",
	})
	require.NoError(t, err)
	assert.NotContains(t, text, "Schedule:")
}

func TestTemplateRenderer_UnregisterConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("unregister_confirmation", &domain.ConfirmationEmailData{
		Email:        "michael@mergington.edu",
		ActivityName: "Chess Club",
	})
	require.NoError(t, err)
	assert.Equal(t, "You've been unregistered from Chess Club", subject)
	assert.Contains(t, html, "Chess Club")
	assert.True(t, strings.Contains(text, "unregistered"))
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no_such_template", nil)
	assert.Error(t, err)
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r := NewTemplateRenderer()

	_, html, _, err := r.Render("signup_confirmation", &domain.ConfirmationEmailData{
		ActivityName: "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
