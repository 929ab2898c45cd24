package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user.name@domain.co.uk",
		"test123@test-domain.com",
	}
	for _, e := range valid {
		assert.True(t, CheckEmail(e), e)
	}

	invalid := []string{
		"",
		"test",
		"test@",
		"@domain.com",
		"test..test@domain.com",
		".test@domain.com",
		"test@domain.",
		"test@.domain.com",
		"test@domain..com",
		"te(st@domain.com",
		"te,st@domain.com",
		"te:st@domain.com",
		"te;st@domain.com",
		"te<st@domain.com",
		"te>st@domain.com",
		"te[st@domain.com",
		"te]st@domain.com",
		"te st@domain.com",
		"test@-domain.com",
		"a@b@domain.com",
	}
	for _, e := range invalid {
		assert.False(t, CheckEmail(e), e)
	}
}

func TestCheckEmail_Length(t *testing.T) {
	assert.False(t, CheckEmail("a@b.c"))
	assert.False(t, CheckEmail(strings.Repeat("a", 320)+"@domain.com"))
}

func TestCheckPassword(t *testing.T) {
	for _, p := range []string{"Password123!", "MySecure@Pass1", "Test#123ABC", "Strong$Pass9"} {
		assert.True(t, CheckPassword(p), p)
	}

	for _, p := range []string{"password123!", "Password!", "Password123", "Pass1!", ""} {
		assert.False(t, CheckPassword(p), p)
	}
}

func TestCheckPassword_CountsCharactersNotBytes(t *testing.T) {
	// Seven characters, nine bytes.
	assert.False(t, CheckPassword("Ää1!aaa"))
	assert.True(t, CheckPassword("Ää1!aaaa"))
}

func TestCheckEmail_LengthCountsCharacters(t *testing.T) {
	// Five characters, six bytes.
	assert.False(t, CheckEmail("é@b.c"))
}
