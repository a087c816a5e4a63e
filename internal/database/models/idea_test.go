package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdea_StatusName(t *testing.T) {
	assert.Equal(t, NoStatusName, (&Idea{}).StatusName())
	assert.Equal(t, NoStatusName, (&Idea{Status: &Status{}}).StatusName())
	assert.Equal(t, "In review", (&Idea{Status: &Status{Name: "In review"}}).StatusName())
}

func TestIdea_LinkProjections(t *testing.T) {
	idea := &Idea{
		CategoryLinks: []IdeaCategory{
			{IdeaID: 1, CategoryID: 3, Category: Category{BaseModel: BaseModel{ID: 3}, Name: "Safety"}},
			{IdeaID: 1, CategoryID: 5, Category: Category{BaseModel: BaseModel{ID: 5}, Name: "Quality"}},
		},
		ChampionLinks: []IdeaChampion{
			{IdeaID: 1, ChampionID: 2, Champion: Champion{BaseModel: BaseModel{ID: 2}, Name: "Ana Ruiz"}},
		},
	}

	assert.Equal(t, []uint{3, 5}, idea.CategoryIDs())
	assert.Equal(t, []string{"Safety", "Quality"}, idea.CategoryNames())
	assert.Equal(t, []uint{2}, idea.ChampionIDs())
	assert.Equal(t, []string{"Ana Ruiz"}, idea.ChampionNames())
}

func TestIdea_EmptyLinks(t *testing.T) {
	idea := &Idea{}

	assert.NotNil(t, idea.CategoryNames())
	assert.Empty(t, idea.CategoryNames())
	assert.NotNil(t, idea.ChampionNames())
	assert.Empty(t, idea.ChampionIDs())
}
