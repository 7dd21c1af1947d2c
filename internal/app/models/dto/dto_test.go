package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeList(t *testing.T) {
	assert.Nil(t, NormalizeList(nil))
	assert.Equal(t, []string{"a", "b"}, NormalizeList([]string{" a ", "", "b"}))
	assert.Equal(t, []string{"Charts", "Alerts"}, NormalizeList([]string{`["Charts", "Alerts", ""]`}))
	assert.Equal(t, []string{"[not json"}, NormalizeList([]string{"[not json"}))
	assert.Equal(t, []string{}, NormalizeList([]string{}))
}

func TestUpdateRequestFieldsOnlyCarryPresentColumns(t *testing.T) {
	title, capacity := "Webinar", 0
	got := (&UpdateEventRequest{Title: &title, Capacity: &capacity}).Fields()
	assert.Equal(t, map[string]interface{}{"title": "Webinar", "capacity": 0}, got)

	published := false
	got = (&UpdateNewsRequest{IsPublished: &published, Tags: []string{}}).Fields()
	assert.Equal(t, map[string]interface{}{"is_published": false, "tags": []string{}}, got)
}
