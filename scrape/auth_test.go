package scrape_test

import (
	"testing"

	"github.com/ladle-app/ladle/scrape"
	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://www.example.com/recipe/1", "example.com"},
		{"https://kitchen.example.co.uk/r", "kitchen.example.co.uk"},
		{"http://example.com", "example.com"},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scrape.Host(tt.in), tt.in)
	}
}

func TestDetectAuthRequired(t *testing.T) {
	t.Parallel()

	t.Run("login path patterns", func(t *testing.T) {
		t.Parallel()

		for _, u := range []string{
			"https://example.com/login",
			"https://example.com/signin?next=%2Frecipe",
			"https://example.com/sign-in",
			"https://example.com/auth/step1",
			"https://example.com/connexion",
			"https://example.com/account/login",
			"https://example.com/user/login",
		} {
			assert.True(t, scrape.DetectAuthRequired(u, "<title>Anything</title>"), u)
		}
	})

	t.Run("login title keywords", func(t *testing.T) {
		t.Parallel()

		for _, title := range []string{
			"Login",
			"Please Sign In",
			"Connexion à votre compte",
			"Se connecter",
			"Log in to continue",
			"Anmelden",
			"Iniciar sesión",
		} {
			html := "<html><head><title>" + title + "</title></head></html>"
			assert.True(t, scrape.DetectAuthRequired("https://example.com/recipe/1", html), title)
		}
	})

	t.Run("regular pages pass", func(t *testing.T) {
		t.Parallel()

		assert.False(t, scrape.DetectAuthRequired(
			"https://example.com/recipes/42",
			"<html><head><title>Chocolate Cake</title></head></html>",
		))
	})

	t.Run("missing title is not a wall", func(t *testing.T) {
		t.Parallel()

		assert.False(t, scrape.DetectAuthRequired("https://example.com/recipes/42", "<html></html>"))
	})
}
