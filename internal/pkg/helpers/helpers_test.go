package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringOrNil(t *testing.T) {
	assert.Nil(t, StringOrNil(""))

	got := StringOrNil("hello")
	if assert.NotNil(t, got) {
		assert.Equal(t, "hello", *got)
	}
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref(nil))

	s := "hello"
	assert.Equal(t, "hello", Deref(&s))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
