package handlers

import (
	"testing"

	"blogapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestBuildPostUpdate_OnlyPresentFields(t *testing.T) {
	req := UpdatePostRequest{Title: strPtr("New Title")}

	update := buildPostUpdate(req, 1700000000)
	require.NotNil(t, update)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)

	assert.Equal(t, "New Title", set["title"])
	assert.Equal(t, int64(1700000000), set["updatedAt"])
	assert.NotContains(t, set, "content")
	assert.NotContains(t, set, "category")
	assert.NotContains(t, set, "tags")
}

func TestBuildPostUpdate_AllFields(t *testing.T) {
	tags := []string{"go", "mongo"}
	req := UpdatePostRequest{
		Title:    strPtr("Fresh Title"),
		Content:  strPtr("fresh content"),
		Category: strPtr("tech"),
		Tags:     &tags,
	}

	update := buildPostUpdate(req, 42)
	require.NotNil(t, update)

	set := update["$set"].(bson.M)
	assert.Equal(t, "Fresh Title", set["title"])
	assert.Equal(t, "fresh content", set["content"])
	assert.Equal(t, "tech", set["category"])
	assert.Equal(t, tags, set["tags"])
}

func TestBuildPostUpdate_EmptyRequest(t *testing.T) {
	update := buildPostUpdate(UpdatePostRequest{}, 42)
	assert.Nil(t, update)
}

func TestTagFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, tagFilter(""))
}

func TestTagFilter_CaseInsensitiveExactMatch(t *testing.T) {
	filter := tagFilter("Tech")

	tagExpr, ok := filter["tags"].(bson.M)
	require.True(t, ok)

	re, ok := tagExpr["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^Tech$", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestTagFilter_EscapesRegexMetacharacters(t *testing.T) {
	filter := tagFilter("c++")

	re := filter["tags"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, `^c\+\+$`, re.Pattern)
}

func TestOwnsPost(t *testing.T) {
	owner := primitive.NewObjectID()
	post := models.Post{ID: primitive.NewObjectID(), UserID: owner}

	assert.True(t, ownsPost(post, owner.Hex()))
	assert.False(t, ownsPost(post, primitive.NewObjectID().Hex()))
	assert.False(t, ownsPost(post, ""))
}
