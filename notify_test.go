package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationTemplates(t *testing.T) {
	assert.Equal(t,
		"Congratulations! You're Shortlisted for Junior Data Scientist!",
		shortlistedSubject("Junior Data Scientist"))
	assert.Equal(t,
		"Update on Your Application for Junior Data Scientist",
		rejectedSubject("Junior Data Scientist"))

	body := shortlistedBody("Priya", "Junior Data Scientist", "HR Manager", 78.5)
	assert.Contains(t, body, "Dear Priya,")
	assert.Contains(t, body, "shortlisted for the Junior Data Scientist position at HR Manager's company")
	// the score is always rendered with two decimals
	assert.Contains(t, body, "Your match score was 78.50%.")
	assert.Contains(t, body, "next steps in the hiring process")

	body = rejectedBody("Priya", "Junior Data Scientist", "HR Manager")
	assert.Contains(t, body, "Dear Priya,")
	assert.Contains(t, body, "interest in the Junior Data Scientist position at HR Manager's company")
	assert.Contains(t, body, "we will not be moving forward with your application")
	assert.NotContains(t, body, "match score")
}
