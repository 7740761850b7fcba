package airbnb

import (
	"testing"

	"airbnb-rooms-scraper/utils"

	"github.com/stretchr/testify/assert"
)

func testLogger() *utils.Logger {
	return utils.NewLogger(false)
}

func TestExtractRatings_OverallAndReviews(t *testing.T) {
	doc := mustDoc(t, `
		<html><body>
		<span>4.97 · 36 reviews</span>
		</body></html>`)

	rating := extractRatings(doc, testLogger())

	assert.Equal(t, 4.97, rating["guestSatisfaction"])
	assert.Equal(t, 36, rating["reviewsCount"])
	assert.Nil(t, rating["cleanliness"])
}

func TestExtractRatings_Subratings(t *testing.T) {
	doc := mustDoc(t, `
		<html><body>
		<ul>
			<li>Accuracy 4.94</li>
			<li>Checking 5.0</li>
			<li>Cleanliness 4.9</li>
			<li>Communication 5.0</li>
			<li>Location 4.97</li>
			<li>Value 4.94</li>
		</ul>
		</body></html>`)

	rating := extractRatings(doc, testLogger())

	assert.Equal(t, 4.94, rating["accuracy"])
	assert.Equal(t, 5.0, rating["checking"])
	assert.Equal(t, 4.9, rating["cleanliness"])
	assert.Equal(t, 5.0, rating["communication"])
	assert.Equal(t, 4.97, rating["location"])
	assert.Equal(t, 4.94, rating["value"])
}

func TestExtractRatings_FirstMatchPerFieldWins(t *testing.T) {
	doc := mustDoc(t, `
		<html><body>
		<ul>
			<li>Location 4.8</li>
			<li>Location 3.2</li>
		</ul>
		</body></html>`)

	rating := extractRatings(doc, testLogger())
	assert.Equal(t, 4.8, rating["location"])
}

func TestExtractRatings_ElementFeedsOneField(t *testing.T) {
	// An element mentioning two fields only feeds the first in canonical
	// order; the second field stays open for later elements.
	doc := mustDoc(t, `
		<html><body>
		<ul>
			<li>Accuracy and communication 4.5</li>
			<li>Communication 4.9</li>
		</ul>
		</body></html>`)

	rating := extractRatings(doc, testLogger())
	assert.Equal(t, 4.5, rating["accuracy"])
	assert.Equal(t, 4.9, rating["communication"])
}

func TestExtractRatings_NothingFound(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>No numbers here</p></body></html>`)

	rating := extractRatings(doc, testLogger())

	assert.Nil(t, rating["guestSatisfaction"])
	assert.Nil(t, rating["reviewsCount"])
	for _, field := range ratingFields {
		assert.Nil(t, rating[field])
	}
}
