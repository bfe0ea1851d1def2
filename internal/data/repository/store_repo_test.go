package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildCityFilter(t *testing.T) {
	filter := buildCityFilter("Kathmandu")

	regex, ok := filter["location.city"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "Kathmandu", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestBuildCityFilter_EscapesMetacharacters(t *testing.T) {
	// User input is matched literally, never interpreted as a pattern
	filter := buildCityFilter("a.b*")

	regex := filter["location.city"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, regex.Pattern)
}

func TestBuildSearchFilter(t *testing.T) {
	filter := buildSearchFilter("thamel")

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)

	nameClause := or[0].(bson.M)
	regex := nameClause["name"].(primitive.Regex)
	assert.Equal(t, "thamel", regex.Pattern)
	assert.Equal(t, "i", regex.Options)

	addressClause := or[1].(bson.M)
	_, hasAddress := addressClause["location.address"]
	assert.True(t, hasAddress)
}
